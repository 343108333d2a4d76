package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chain-keeper/internal/bus"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/internal/vault"
)

const (
	testPassword  = "correct horse battery staple"
	abandonPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	legalPhrase   = "legal winner thank year wave sausage worth useful legal winner thank yellow"
	testOrigin    = "https://app.example"
	testChainID   = "cosmoshub-4"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type harness struct {
	storages *store.Storages
	vault    *vault.Vault
	bus      *bus.Bus
	clock    *fakeClock

	wallet    *walletService
	approvals *approvalService
	signing   *signingService
}

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	storages, err := store.NewStorages(testContext(), config.Storage{
		DB: config.DB{DSN: filepath.Join(t.TempDir(), "wallet.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	h := &harness{
		storages: storages,
		vault:    vault.New(storages.RecordRepository, crypto.NewSecretCipher(crypto.WithIterations(1000)), 10),
		bus:      bus.New(),
		clock:    newFakeClock(),
	}
	h.wallet = h.newWallet()
	h.approvals = h.newApprovals()
	h.signing = NewSigningService(h.wallet, h.approvals, storages.PermissionRepository, validators.NewRelayRequestValidator(), logger.Nop()).(*signingService)
	h.signing.now = h.clock.Now
	return h
}

// newWallet returns another coordinator over the same vault and session
// store.
func (h *harness) newWallet() *walletService {
	w := NewWalletService(h.vault, h.storages.SessionStore, h.bus, derivation.DefaultParams(), derivation.AllSchemes, logger.Nop()).(*walletService)
	w.now = h.clock.Now
	return w
}

func (h *harness) newApprovals() *approvalService {
	a := NewApprovalService(h.storages.ApprovalRepository, h.bus, 0, logger.Nop()).(*approvalService)
	a.now = h.clock.Now
	a.pollInterval = 5 * time.Millisecond
	return a
}

// createWallet imports the abandon phrase and returns its first account.
func (h *harness) createWallet(t *testing.T) {
	t.Helper()
	require.NoError(t, h.wallet.Import(testContext(), abandonPhrase, testPassword))
}

// resolveNext waits for a pending approval and resolves it.
func (h *harness) resolveNext(t *testing.T, approved bool) {
	t.Helper()
	ctx := testContext()

	require.Eventually(t, func() bool {
		n, err := h.approvals.Count(ctx)
		return err == nil && n > 0
	}, 2*time.Second, 5*time.Millisecond)

	p, err := h.approvals.Get(ctx, "")
	require.NoError(t, err)
	require.NoError(t, h.approvals.Resolve(ctx, p.ID, approved))
}
