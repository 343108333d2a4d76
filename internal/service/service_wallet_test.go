package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chain-keeper/internal/bus"
	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestWalletService_StatusBeforeCreate(t *testing.T) {
	h := newHarness(t)

	status, err := h.wallet.Status(testContext())

	require.NoError(t, err)
	assert.Equal(t, models.StateNotInitialized, status.State)
}

func TestWalletService_Create(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	unlocked, cancel := h.bus.Subscribe(bus.TopicUnlocked)
	defer cancel()

	mnemonic, err := h.wallet.Create(ctx, testPassword, 24)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(mnemonic), 24)

	status, err := h.wallet.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateUnlocked, status.State)
	assert.Equal(t, 1, status.AccountCount)

	accounts, err := h.wallet.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Account 1", accounts[0].Name)
	assert.Equal(t, 0, accounts[0].Index)

	prefs, err := h.wallet.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, accounts[0].ID, prefs.SelectedAccountID)
	assert.Equal(t, 10, prefs.AutoLockMinutes)

	select {
	case ev := <-unlocked:
		assert.Equal(t, bus.TopicUnlocked, ev.Topic)
	default:
		t.Fatal("unlocked event not published")
	}
}

func TestWalletService_CreateTwice(t *testing.T) {
	h := newHarness(t)
	h.createWallet(t)

	_, err := h.wallet.Create(testContext(), testPassword, 12)

	assert.ErrorIs(t, err, ErrWalletExists)
}

func TestWalletService_CreateValidation(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()

	_, err := h.wallet.Create(ctx, "", 12)
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = h.wallet.Create(ctx, testPassword, 13)
	assert.ErrorIs(t, err, ErrInvalidMnemonic)

	err = h.wallet.Import(ctx, "abandon abandon abandon", testPassword)
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestWalletService_LockUnlockRederivesSameAccounts(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	_, err := h.wallet.AddAccount(ctx, "Second")
	require.NoError(t, err)
	before, err := h.wallet.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, before, 2)

	oldRing, err := h.wallet.Keyring(ctx)
	require.NoError(t, err)

	require.NoError(t, h.wallet.Lock(ctx))
	assert.True(t, oldRing.Wiped())

	_, err = h.wallet.Accounts(ctx)
	assert.ErrorIs(t, err, ErrLocked)
	_, err = h.storages.SessionStore.Load(ctx)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	require.NoError(t, h.wallet.Unlock(ctx, testPassword))
	after, err := h.wallet.Accounts(ctx)
	require.NoError(t, err)

	assert.Equal(t, before, after)
	assert.Equal(t, 1, after[1].Index)
	assert.Equal(t, "Second", after[1].Name)
}

func TestWalletService_UnlockWrongPassword(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)
	require.NoError(t, h.wallet.Lock(ctx))

	err := h.wallet.Unlock(ctx, "not the password")

	assert.ErrorIs(t, err, ErrWrongPassword)
	status, err := h.wallet.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateLocked, status.State)
}

func TestWalletService_UnlockWithoutWallet(t *testing.T) {
	h := newHarness(t)

	err := h.wallet.Unlock(testContext(), testPassword)

	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestWalletService_UnlockInProgress(t *testing.T) {
	h := newHarness(t)
	h.createWallet(t)

	h.wallet.mu.Lock()
	h.wallet.state = models.StateUnlocking
	h.wallet.mu.Unlock()

	err := h.wallet.Unlock(testContext(), testPassword)

	assert.ErrorIs(t, err, ErrUnlockInProgress)
}

func TestWalletService_VerifyPassword(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	ok, err := h.wallet.VerifyPassword(ctx, testPassword)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.wallet.VerifyPassword(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWalletService_LockPublishes(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)
	locked, cancel := h.bus.Subscribe(bus.TopicLocked)
	defer cancel()

	require.NoError(t, h.wallet.Lock(ctx))
	require.NoError(t, h.wallet.Lock(ctx))

	assert.Len(t, locked, 2)
}

// ── accounts ────────────────────────────────────────────────────────────────

func TestWalletService_AddAccountValidation(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	_, err := h.wallet.AddAccount(ctx, "   ")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = h.wallet.AddAccount(ctx, strings.Repeat("ä", 65))
	assert.ErrorIs(t, err, ErrInvalidName)

	require.NoError(t, h.wallet.Lock(ctx))
	_, err = h.wallet.AddAccount(ctx, "Locked")
	assert.ErrorIs(t, err, ErrLocked)
}

func TestWalletService_ImportedAccountIsolation(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	imported, err := h.wallet.ImportAccount(ctx, "Cold", legalPhrase, testPassword)
	require.NoError(t, err)
	assert.True(t, imported.Imported)
	assert.Equal(t, 0, imported.Index)
	assert.False(t, imported.Addresses.IsEmpty())

	// the primary index space ignores imported accounts
	second, err := h.wallet.AddAccount(ctx, "Second")
	require.NoError(t, err)
	assert.Equal(t, 1, second.Index)
	assert.NotEqual(t, imported.Address, second.Address)

	child, err := h.wallet.DeriveImportedAccount(ctx, imported.ID, "Cold 2", testPassword)
	require.NoError(t, err)
	assert.True(t, child.Imported)
	assert.Equal(t, imported.ID, child.DerivedFrom)
	assert.NotEqual(t, imported.Address, child.Address)

	before, err := h.wallet.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, before, 4)

	require.NoError(t, h.wallet.Lock(ctx))
	require.NoError(t, h.wallet.Unlock(ctx, testPassword))

	after, err := h.wallet.Accounts(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, before, after)

	rec, err := h.vault.LoadWallet(ctx)
	require.NoError(t, err)
	require.Len(t, rec.ImportedAccounts, 2)
	assert.NotEqual(t, rec.ImportedAccounts[0].Salt, rec.ImportedAccounts[1].Salt)
	assert.Equal(t, imported.ID, rec.ImportedAccounts[1].DerivedFrom)
	assert.Equal(t, 1, rec.ImportedAccounts[1].DerivationIndex)
}

func TestWalletService_ImportAccountWrongPassword(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	_, err := h.wallet.ImportAccount(ctx, "Cold", legalPhrase, "wrong")

	assert.ErrorIs(t, err, ErrWrongPassword)
	accounts, err := h.wallet.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestWalletService_ImportSameSeedTwice(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	_, err := h.wallet.ImportAccount(ctx, "Dup", abandonPhrase, testPassword)

	assert.ErrorIs(t, err, keyring.ErrDuplicateAccount)
	rec, err := h.vault.LoadWallet(ctx)
	require.NoError(t, err)
	assert.Empty(t, rec.ImportedAccounts)
}

func TestWalletService_DeriveFromUnknownParent(t *testing.T) {
	h := newHarness(t)
	h.createWallet(t)

	_, err := h.wallet.DeriveImportedAccount(testContext(), "missing", "Child", testPassword)

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

// ── preferences ──────────────────────────────────────────────────────────────

func TestWalletService_Preferences(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	assert.ErrorIs(t, h.wallet.SetAutoLockMinutes(ctx, -1), ErrInvalidAutoLock)
	require.NoError(t, h.wallet.SetAutoLockMinutes(ctx, 0))
	require.NoError(t, h.wallet.SelectChain(ctx, "osmosis-1"))
	assert.ErrorIs(t, h.wallet.SelectChain(ctx, " "), ErrInvalidRequest)

	second, err := h.wallet.AddAccount(ctx, "Second")
	require.NoError(t, err)
	require.NoError(t, h.wallet.SelectAccount(ctx, second.ID))
	assert.ErrorIs(t, h.wallet.SelectAccount(ctx, "missing"), ErrAccountNotFound)

	prefs, err := h.wallet.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, prefs.AutoLockMinutes)
	assert.Equal(t, "osmosis-1", prefs.SelectedChainID)
	assert.Equal(t, second.ID, prefs.SelectedAccountID)
}

// ── session and auto-lock ────────────────────────────────────────────────────

func TestShouldAutoLock(t *testing.T) {
	last := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		minutes int
		elapsed time.Duration
		want    bool
	}{
		{"disabled", 0, 24 * time.Hour, false},
		{"negative disables", -5, 24 * time.Hour, false},
		{"before deadline", 10, 10*time.Minute - time.Millisecond, false},
		{"at deadline", 10, 10 * time.Minute, false},
		{"after deadline", 10, 10*time.Minute + time.Millisecond, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldAutoLock(last, tt.minutes, last.Add(tt.elapsed)))
		})
	}
}

func TestWalletService_CheckAutoLock(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	h.clock.Advance(10*time.Minute - time.Millisecond)
	locked, err := h.wallet.CheckAutoLock(ctx)
	require.NoError(t, err)
	assert.False(t, locked)

	h.clock.Advance(2 * time.Millisecond)
	locked, err = h.wallet.CheckAutoLock(ctx)
	require.NoError(t, err)
	assert.True(t, locked)

	_, err = h.wallet.Keyring(ctx)
	assert.ErrorIs(t, err, ErrLocked)

	locked, err = h.wallet.CheckAutoLock(ctx)
	require.NoError(t, err)
	assert.False(t, locked, "already locked")
}

func TestWalletService_TouchPushesDeadline(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	h.clock.Advance(9 * time.Minute)
	require.NoError(t, h.wallet.Touch(ctx))
	h.clock.Advance(9 * time.Minute)

	locked, err := h.wallet.CheckAutoLock(ctx)
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestWalletService_AutoLockDisabled(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)
	require.NoError(t, h.wallet.SetAutoLockMinutes(ctx, 0))

	h.clock.Advance(30 * 24 * time.Hour)

	locked, err := h.wallet.CheckAutoLock(ctx)
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestWalletService_RehydratesFromSession(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)
	want, err := h.wallet.Accounts(ctx)
	require.NoError(t, err)

	// a second coordinator sharing the session store, e.g. after a restart
	peer := h.newWallet()

	status, err := peer.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateUnlocked, status.State)

	got, err := peer.Accounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, h.wallet.Lock(ctx))
	_, err = peer.Accounts(ctx)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestWalletService_UnlockElsewhereReplacesKeyring(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	peer := h.newWallet()
	ring, err := peer.Keyring(ctx)
	require.NoError(t, err)

	require.NoError(t, h.wallet.Lock(ctx))
	require.NoError(t, h.wallet.Unlock(ctx, testPassword))

	fresh, err := peer.Keyring(ctx)
	require.NoError(t, err)
	assert.NotSame(t, ring, fresh)
	assert.True(t, ring.Wiped())
}

func TestWalletService_CorruptSnapshotLocks(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	snap, err := h.storages.SessionStore.Load(ctx)
	require.NoError(t, err)
	snap.SessionID = "other"
	snap.SerializedKeyring = []byte("garbage")
	require.NoError(t, h.storages.SessionStore.Save(ctx, snap))

	_, err = h.wallet.Keyring(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, keyring.ErrInvalidSnapshot) || errors.Is(err, ErrLocked))

	_, err = h.storages.SessionStore.Load(ctx)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}
