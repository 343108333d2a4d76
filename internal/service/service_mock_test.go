package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-chain-keeper/internal/bus"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/mock"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/models"
)

var mockNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

// ─────────────────────────────────────────────
// approval service on mocked storage
// ─────────────────────────────────────────────

func newMockedApprovals(t *testing.T) (*approvalService, *mock.MockApprovalRepository, *mock.MockPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockApprovalRepository(ctrl)
	pub := mock.NewMockPublisher(ctrl)

	a := NewApprovalService(repo, pub, time.Minute, logger.Nop()).(*approvalService)
	a.now = func() time.Time { return mockNow }
	a.newID = func() string { return "p1" }
	return a, repo, pub
}

func TestApprovalService_EnqueuePublishesCountAndFocus(t *testing.T) {
	a, repo, pub := newMockedApprovals(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().InsertPending(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p models.PendingApproval) error {
			assert.Equal(t, "p1", p.ID)
			assert.Equal(t, testOrigin, p.Origin)
			assert.JSONEq(t, `{}`, string(p.Payload))
			assert.Equal(t, mockNow, p.CreatedAt)
			return nil
		}),
		repo.EXPECT().CountPending(ctx).Return(2, nil),
		pub.EXPECT().Publish(bus.TopicApprovalsPending, 2).Return(1),
		pub.EXPECT().Publish(bus.TopicUIFocus, "p1").Return(1),
	)

	p, err := a.Enqueue(ctx, models.ApprovalConnection, "  "+testOrigin+" ", nil)

	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestApprovalService_EnqueueStoreFailure(t *testing.T) {
	a, repo, _ := newMockedApprovals(t)
	repo.EXPECT().InsertPending(gomock.Any(), gomock.Any()).Return(store.ErrExecutingQuery)

	_, err := a.Enqueue(context.Background(), models.ApprovalSigning, testOrigin, json.RawMessage(`{"a":1}`))

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	a.mu.Lock()
	assert.Empty(t, a.waiters)
	a.mu.Unlock()
}

func TestApprovalService_EnqueueRejectsBadInput(t *testing.T) {
	a, _, _ := newMockedApprovals(t)
	ctx := context.Background()

	_, err := a.Enqueue(ctx, "payment", testOrigin, nil)
	assert.ErrorIs(t, err, ErrInvalidApproval)

	_, err = a.Enqueue(ctx, models.ApprovalSigning, testOrigin, json.RawMessage(`{not json`))
	assert.ErrorIs(t, err, ErrInvalidApproval)
}

func TestApprovalService_ExpireStaleRejectsAndPublishes(t *testing.T) {
	a, repo, pub := newMockedApprovals(t)
	ctx := context.Background()
	stale := models.PendingApproval{ID: "old", Origin: testOrigin, CreatedAt: mockNow.Add(-2 * time.Minute)}

	repo.EXPECT().ListCreatedBefore(ctx, mockNow.Add(-time.Minute)).Return([]models.PendingApproval{stale, {ID: "gone"}}, nil)
	repo.EXPECT().Resolve(ctx, "old", false, mockNow).Return(models.ApprovalOutcome{ID: "old"}, nil)
	repo.EXPECT().Resolve(ctx, "gone", false, mockNow).Return(models.ApprovalOutcome{}, store.ErrApprovalNotFound)
	repo.EXPECT().CountPending(ctx).Return(0, nil)
	pub.EXPECT().Publish(bus.TopicApprovalsPending, 0).Return(0)
	repo.EXPECT().DeleteOutcomesBefore(ctx, mockNow.Add(-outcomeRetention)).Return(int64(3), nil)

	n, err := a.ExpireStale(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestApprovalService_CheckPropagatesStoreErrors(t *testing.T) {
	a, repo, _ := newMockedApprovals(t)
	repo.EXPECT().GetOutcome(gomock.Any(), "p1").Return(models.ApprovalOutcome{}, store.ErrScanningRow)

	_, err := a.Check(context.Background(), "p1")

	assert.ErrorIs(t, err, store.ErrScanningRow)
}

func TestApprovalService_CountSurvivesFailedOutcomeCleanup(t *testing.T) {
	a, repo, _ := newMockedApprovals(t)
	repo.EXPECT().ListCreatedBefore(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().DeleteOutcomesBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("locked table"))
	repo.EXPECT().CountPending(gomock.Any()).Return(4, nil)

	n, err := a.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

// ─────────────────────────────────────────────
// signing service on mocked permissions and approvals
// ─────────────────────────────────────────────

func newMockedSigning(t *testing.T) (*signingService, *mock.MockPermissionRepository, *mock.MockApprovalService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	perms := mock.NewMockPermissionRepository(ctrl)
	approvals := mock.NewMockApprovalService(ctrl)
	wallet := mock.NewMockWalletService(ctrl)

	s := NewSigningService(wallet, approvals, perms, validators.NewRelayRequestValidator(), logger.Nop()).(*signingService)
	s.now = func() time.Time { return mockNow }
	return s, perms, approvals
}

func TestSigningService_EnableReusesGrant(t *testing.T) {
	s, perms, _ := newMockedSigning(t)
	perms.EXPECT().Has(gomock.Any(), testOrigin, "osmosis-1").Return(true, nil)

	ok, err := s.Enable(context.Background(), testOrigin, "osmosis-1")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSigningService_EnableGrantsAfterApproval(t *testing.T) {
	s, perms, approvals := newMockedSigning(t)
	ctx := context.Background()

	perms.EXPECT().Has(ctx, testOrigin, "osmosis-1").Return(false, nil)
	approvals.EXPECT().RequestApproval(ctx, models.ApprovalConnection, testOrigin, gomock.Any()).Return(true, nil)
	perms.EXPECT().Grant(ctx, models.OriginPermission{Origin: testOrigin, ChainID: "osmosis-1", GrantedAt: mockNow}).Return(nil)

	ok, err := s.Enable(ctx, testOrigin, "osmosis-1")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSigningService_EnableDeclinedLeavesNoGrant(t *testing.T) {
	s, perms, approvals := newMockedSigning(t)

	perms.EXPECT().Has(gomock.Any(), testOrigin, "osmosis-1").Return(false, nil)
	approvals.EXPECT().RequestApproval(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	ok, err := s.Enable(context.Background(), testOrigin, "osmosis-1")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSigningService_EnableInvalidNeverTouchesStorage(t *testing.T) {
	s, _, _ := newMockedSigning(t)

	_, err := s.Enable(context.Background(), testOrigin, " ")

	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, validators.ErrEmptyChainID)
}

func TestSigningService_DisableAndPermissions(t *testing.T) {
	s, perms, _ := newMockedSigning(t)
	ctx := context.Background()

	perms.EXPECT().Revoke(ctx, testOrigin).Return(int64(2), nil)
	perms.EXPECT().List(ctx).Return([]models.OriginPermission{{Origin: "https://other.example", ChainID: "juno-1"}}, nil)

	require.NoError(t, s.Disable(ctx, testOrigin))

	list, err := s.Permissions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "juno-1", list[0].ChainID)
}

// ─────────────────────────────────────────────
// wallet service on mocked vault and session store
// ─────────────────────────────────────────────

type walletMocks struct {
	vault    *mock.MockWalletVault
	sessions *mock.MockSessionStore
	pub      *mock.MockPublisher
}

func newMockedWallet(t *testing.T) (*walletService, *walletMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &walletMocks{
		vault:    mock.NewMockWalletVault(ctrl),
		sessions: mock.NewMockSessionStore(ctrl),
		pub:      mock.NewMockPublisher(ctrl),
	}

	params := derivation.Params{Bech32Prefix: "cosmos", BitcoinNetwork: derivation.Mainnet}
	w := NewWalletService(m.vault, m.sessions, m.pub, params, []derivation.Scheme{derivation.Cosmos}, logger.Nop()).(*walletService)
	w.now = func() time.Time { return mockNow }
	return w, m
}

func TestWalletService_StatusNotInitialized(t *testing.T) {
	w, m := newMockedWallet(t)
	m.vault.EXPECT().Exists(gomock.Any()).Return(false, nil)

	status, err := w.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.StateNotInitialized, status.State)
}

func TestWalletService_StatusSessionStoreFailure(t *testing.T) {
	w, m := newMockedWallet(t)
	m.vault.EXPECT().Exists(gomock.Any()).Return(true, nil)
	m.sessions.EXPECT().Load(gomock.Any()).Return(models.SessionSnapshot{}, store.ErrSessionStore)

	_, err := w.Status(context.Background())

	assert.ErrorIs(t, err, store.ErrSessionStore)
}

func TestWalletService_StatusLockedWithoutSession(t *testing.T) {
	w, m := newMockedWallet(t)
	m.vault.EXPECT().Exists(gomock.Any()).Return(true, nil)
	m.sessions.EXPECT().Load(gomock.Any()).Return(models.SessionSnapshot{}, store.ErrSessionNotFound)

	status, err := w.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.StateLocked, status.State)
	assert.Zero(t, status.AccountCount)
}

func TestWalletService_LockNotifiesEvenIfClearFails(t *testing.T) {
	w, m := newMockedWallet(t)
	m.sessions.EXPECT().Clear(gomock.Any()).Return(store.ErrSessionStore)
	m.pub.EXPECT().Publish(bus.TopicLocked, nil).Return(2)

	err := w.Lock(context.Background())

	assert.ErrorIs(t, err, store.ErrSessionStore)
	assert.Equal(t, models.StateLocked, w.state)
}

func TestWalletService_UnlockWrongPasswordRestoresState(t *testing.T) {
	w, m := newMockedWallet(t)
	rec := models.WalletRecord{Salt: "s", EncryptedMnemonic: "c"}
	m.vault.EXPECT().LoadWallet(gomock.Any()).Return(rec, nil)
	m.vault.EXPECT().DecryptMain(rec, "nope").Return("", crypto.ErrAuthentication)

	err := w.Unlock(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Equal(t, models.StateLocked, w.state)
	assert.Nil(t, w.ring)
}

func TestWalletService_AddAccountSurvivesSnapshotFailure(t *testing.T) {
	w, m := newMockedWallet(t)
	ctx := context.Background()

	ring := keyring.New(w.params, w.schemes)
	require.NoError(t, ring.LoadPrimary(abandonPhrase, []keyring.AccountSpec{{ID: "a0", Name: "main", Index: 0}}))
	w.ring = ring
	w.state = models.StateUnlocked
	w.sessionID = "s1"
	w.newID = func() string { return "a1" }

	m.sessions.EXPECT().Load(ctx).Return(models.SessionSnapshot{SessionID: "s1", LastActivityTimestamp: mockNow.UnixMilli()}, nil)
	m.vault.EXPECT().LoadPreferences(ctx).Return(models.Preferences{AutoLockMinutes: 10}, nil)
	m.vault.EXPECT().LoadWallet(ctx).Return(models.WalletRecord{Accounts: []models.StoredAccount{{ID: "a0", Name: "main"}}}, nil)
	m.vault.EXPECT().SaveWallet(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rec models.WalletRecord) error {
		require.Len(t, rec.Accounts, 2)
		assert.Equal(t, "a1", rec.Accounts[1].ID)
		return nil
	})
	m.sessions.EXPECT().Save(ctx, gomock.Any()).Return(store.ErrSessionStore)

	acc, err := w.AddAccount(ctx, "second")

	require.NoError(t, err)
	assert.Equal(t, "a1", acc.ID)
	assert.Equal(t, 1, acc.Index)
	assert.Equal(t, 2, ring.Len())
	assert.Equal(t, models.StateUnlocked, w.state)
}
