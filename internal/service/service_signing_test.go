package service

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// enabledHarness has an unlocked wallet and testOrigin granted on testChainID.
func enabledHarness(t *testing.T) (*harness, models.Account) {
	t.Helper()
	h := newHarness(t)
	h.createWallet(t)
	require.NoError(t, h.storages.PermissionRepository.Grant(testContext(), models.OriginPermission{
		Origin: testOrigin, ChainID: testChainID, GrantedAt: h.clock.Now(),
	}))

	accounts, err := h.wallet.Accounts(testContext())
	require.NoError(t, err)
	return h, accounts[0]
}

func TestSigningService_EnableAsksOnce(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	h.createWallet(t)

	done := make(chan awaitResult, 1)
	go func() {
		ok, err := h.signing.Enable(ctx, testOrigin, testChainID)
		done <- awaitResult{ok, err}
	}()
	h.resolveNext(t, true)

	r := receive(t, done)
	require.NoError(t, r.err)
	assert.True(t, r.approved)

	perms, err := h.signing.Permissions(ctx)
	require.NoError(t, err)
	require.Len(t, perms, 1)
	assert.Equal(t, testOrigin, perms[0].Origin)

	// granted: no second approval
	ok, err := h.signing.Enable(ctx, testOrigin, testChainID)
	require.NoError(t, err)
	assert.True(t, ok)
	n, err := h.approvals.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSigningService_EnableRejected(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()

	done := make(chan awaitResult, 1)
	go func() {
		ok, err := h.signing.Enable(ctx, testOrigin, testChainID)
		done <- awaitResult{ok, err}
	}()
	h.resolveNext(t, false)

	r := receive(t, done)
	require.NoError(t, r.err)
	assert.False(t, r.approved)

	_, err := h.signing.GetKey(ctx, testOrigin, testChainID)
	assert.ErrorIs(t, err, ErrOriginNotPermitted)
}

func TestSigningService_EnableValidation(t *testing.T) {
	h := newHarness(t)

	_, err := h.signing.Enable(testContext(), "", testChainID)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = h.signing.Enable(testContext(), testOrigin, " ")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestSigningService_GetKey(t *testing.T) {
	h, acc := enabledHarness(t)
	ctx := testContext()

	key, err := h.signing.GetKey(ctx, testOrigin, testChainID)
	require.NoError(t, err)
	assert.Equal(t, acc.Address, key.Bech32Address)
	assert.Equal(t, acc.PubKey, key.PubKey)

	_, err = h.signing.GetKey(ctx, testOrigin, "osmosis-1")
	assert.ErrorIs(t, err, ErrOriginNotPermitted)

	require.NoError(t, h.storages.PermissionRepository.Grant(ctx, models.OriginPermission{
		Origin: testOrigin, ChainID: "osmosis-1", GrantedAt: h.clock.Now(),
	}))
	osmo, err := h.signing.GetKey(ctx, testOrigin, "osmosis-1")
	require.NoError(t, err)
	assert.Contains(t, osmo.Bech32Address, "osmo1")
	assert.Equal(t, key.Address, osmo.Address)
}

func TestSigningService_GetKeyFollowsSelection(t *testing.T) {
	h, _ := enabledHarness(t)
	ctx := testContext()

	second, err := h.wallet.AddAccount(ctx, "Second")
	require.NoError(t, err)
	require.NoError(t, h.wallet.SelectAccount(ctx, second.ID))

	key, err := h.signing.GetKey(ctx, testOrigin, testChainID)
	require.NoError(t, err)
	assert.Equal(t, second.Address, key.Bech32Address)
	assert.Equal(t, "Second", key.Name)
}

func TestSigningService_GetKeyLocked(t *testing.T) {
	h, _ := enabledHarness(t)
	ctx := testContext()
	require.NoError(t, h.wallet.Lock(ctx))

	_, err := h.signing.GetKey(ctx, testOrigin, testChainID)

	assert.ErrorIs(t, err, ErrLocked)
}

func TestSigningService_SignArbitraryAndVerify(t *testing.T) {
	h, acc := enabledHarness(t)
	ctx := testContext()
	data := []byte("login nonce 42")

	type signResult struct {
		sig models.StdSignature
		err error
	}
	done := make(chan signResult, 1)
	go func() {
		sig, err := h.signing.SignArbitrary(ctx, testOrigin, testChainID, acc.Address, data)
		done <- signResult{sig, err}
	}()
	h.resolveNext(t, true)

	var r signResult
	select {
	case r = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sign did not return")
	}
	require.NoError(t, r.err)
	assert.NotEmpty(t, r.sig.Signature)

	ok, err := h.signing.VerifyArbitrary(ctx, testOrigin, testChainID, acc.Address, data, r.sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.signing.VerifyArbitrary(ctx, testOrigin, testChainID, acc.Address, []byte("other"), r.sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSigningService_SignRejected(t *testing.T) {
	h, acc := enabledHarness(t)
	ctx := testContext()

	done := make(chan error, 1)
	go func() {
		_, err := h.signing.SignAmino(ctx, testOrigin, testChainID, acc.Address, aminoDoc(testChainID))
		done <- err
	}()
	h.resolveNext(t, false)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrRequestRejected)
	case <-time.After(2 * time.Second):
		t.Fatal("sign did not return")
	}
}

func TestSigningService_PrecheckSkipsApproval(t *testing.T) {
	h, acc := enabledHarness(t)
	ctx := testContext()

	stranger, err := derivation.CosmosAddress(bytes.Repeat([]byte{0x02}, 33), "cosmos")
	require.NoError(t, err)
	_, err = h.signing.SignArbitrary(ctx, testOrigin, testChainID, stranger, []byte("x"))
	assert.ErrorIs(t, err, keyring.ErrSignerNotFound)

	_, err = h.signing.SignAmino(ctx, testOrigin, testChainID, acc.Address, aminoDoc("osmosis-1"))
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, keyring.ErrChainMismatch)

	_, err = h.signing.SignDirect(ctx, "https://other.example", testChainID, acc.Address, models.DirectSignDoc{ChainID: testChainID})
	assert.ErrorIs(t, err, ErrOriginNotPermitted)

	n, err := h.approvals.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSigningService_Disable(t *testing.T) {
	h, _ := enabledHarness(t)
	ctx := testContext()

	require.NoError(t, h.signing.Disable(ctx, testOrigin))

	_, err := h.signing.GetKey(ctx, testOrigin, testChainID)
	assert.ErrorIs(t, err, ErrOriginNotPermitted)
}

// ── relay ────────────────────────────────────────────────────────────────────

func TestSigningService_SubmitAndResult(t *testing.T) {
	h, acc := enabledHarness(t)
	ctx := testContext()

	submitted, err := h.signing.Submit(ctx, models.RelayRequest{
		Type:      models.RelaySignDirect,
		Origin:    testOrigin,
		ChainID:   testChainID,
		Signer:    acc.Address,
		DirectDoc: &models.DirectSignDoc{BodyBytes: []byte{0x0a}, AuthInfoBytes: []byte{0x12}, ChainID: testChainID, AccountNumber: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RelayPending, submitted.Status)
	require.NotEmpty(t, submitted.ID)

	res, err := h.signing.Result(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelayPending, res.Status)

	require.NoError(t, h.approvals.Resolve(ctx, submitted.ID, true))

	res, err = h.signing.Result(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelayApproved, res.Status)
	assert.Equal(t, submitted.ID, res.ID)
	require.NotNil(t, res.Direct)
	assert.Equal(t, uint64(7), res.Direct.Signed.AccountNumber)

	_, err = h.signing.Result(ctx, submitted.ID)
	assert.ErrorIs(t, err, ErrApprovalNotFound)
}

func TestSigningService_ResultRejected(t *testing.T) {
	h, acc := enabledHarness(t)
	ctx := testContext()

	submitted, err := h.signing.Submit(ctx, models.RelayRequest{
		Type: models.RelaySignArbitrary, Origin: testOrigin, ChainID: testChainID, Signer: acc.Address, Data: []byte("x"),
	})
	require.NoError(t, err)

	h.clock.Advance(DefaultApprovalTimeout)

	res, err := h.signing.Result(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelayRejected, res.Status)
}

func TestSigningService_LateApprovalStaysRejected(t *testing.T) {
	h, acc := enabledHarness(t)
	ctx := testContext()

	submitted, err := h.signing.Submit(ctx, models.RelayRequest{
		Type: models.RelaySignArbitrary, Origin: testOrigin, ChainID: testChainID, Signer: acc.Address, Data: []byte("x"),
	})
	require.NoError(t, err)

	h.clock.Advance(DefaultApprovalTimeout + time.Minute)
	assert.ErrorIs(t, h.approvals.Resolve(ctx, submitted.ID, true), ErrApprovalExpired)

	res, err := h.signing.Result(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelayRejected, res.Status)
	assert.Nil(t, res.Signature)
}

func TestSigningService_ResultRetriesAfterUnlock(t *testing.T) {
	h, acc := enabledHarness(t)
	ctx := testContext()

	submitted, err := h.signing.Submit(ctx, models.RelayRequest{
		Type: models.RelaySignAmino, Origin: testOrigin, ChainID: testChainID, Signer: acc.Address, AminoDoc: ptr(aminoDoc(testChainID)),
	})
	require.NoError(t, err)
	require.NoError(t, h.approvals.Resolve(ctx, submitted.ID, true))
	require.NoError(t, h.wallet.Lock(ctx))

	_, err = h.signing.Result(ctx, submitted.ID)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, h.wallet.Unlock(ctx, testPassword))
	res, err := h.signing.Result(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelayApproved, res.Status)
	require.NotNil(t, res.Amino)
	assert.Equal(t, testChainID, res.Amino.Signed.ChainID)
}

func TestSigningService_ResultOfOtherOrigin(t *testing.T) {
	h, acc := enabledHarness(t)
	ctx := testContext()

	submitted, err := h.signing.Submit(ctx, models.RelayRequest{
		Type: models.RelaySignArbitrary, Origin: testOrigin, ChainID: testChainID, Signer: acc.Address, Data: []byte("x"),
	})
	require.NoError(t, err)
	require.NoError(t, h.approvals.Resolve(ctx, submitted.ID, true))

	_, err = h.signing.Result(utils.WithOrigin(ctx, "https://other.example"), submitted.ID)
	assert.ErrorIs(t, err, ErrApprovalNotFound)

	res, err := h.signing.Result(utils.WithOrigin(ctx, testOrigin), submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelayApproved, res.Status)
	require.NotNil(t, res.Signature)
}

func TestSigningService_SubmitEnable(t *testing.T) {
	h := newHarness(t)
	ctx := testContext()
	req := models.RelayRequest{Type: models.RelayEnable, Origin: testOrigin, ChainID: testChainID}

	submitted, err := h.signing.Submit(ctx, req)
	require.NoError(t, err)
	require.Equal(t, models.RelayPending, submitted.Status)
	require.NoError(t, h.approvals.Resolve(ctx, submitted.ID, true))

	res, err := h.signing.Result(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelayApproved, res.Status)

	again, err := h.signing.Submit(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.RelayApproved, again.Status)
	assert.Empty(t, again.ID)
}

func aminoDoc(chainID string) models.StdSignDoc {
	return models.StdSignDoc{
		AccountNumber: "1",
		ChainID:       chainID,
		Fee:           models.StdFee{Amount: []models.Coin{{Amount: "500", Denom: "uatom"}}, Gas: "200000"},
		Msgs:          []json.RawMessage{json.RawMessage(`{"type":"cosmos-sdk/MsgSend","value":{}}`)},
		Sequence:      "0",
	}
}

func ptr[T any](v T) *T { return &v }
