package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// chainPrefixes maps well-known chain ids to their bech32 prefix. Unknown
// chains use the keyring's configured prefix.
var chainPrefixes = map[string]string{
	"cosmoshub-4":       "cosmos",
	"theta-testnet-001": "cosmos",
	"osmosis-1":         "osmo",
	"juno-1":            "juno",
	"stargaze-1":        "stars",
	"akashnet-2":        "akash",
	"axelar-dojo-1":     "axelar",
	"secret-4":          "secret",
}

// signingService exposes keys to external origins. Nothing reaches the
// keyring before the origin is enabled for the chain, and every signature
// needs an approval.
type signingService struct {
	wallet      WalletService
	approvals   ApprovalService
	permissions store.PermissionRepository
	validator   validators.Validator

	now    Clock
	logger *logger.Logger
}

// NewSigningService constructs a SigningService.
func NewSigningService(wallet WalletService, approvals ApprovalService, permissions store.PermissionRepository, validator validators.Validator, logger *logger.Logger) SigningService {
	logger.Debug().Msg("creating signing service")
	return &signingService{
		wallet:      wallet,
		approvals:   approvals,
		permissions: permissions,
		validator:   validator,
		now:         time.Now,
		logger:      logger,
	}
}

// Enable asks the user to connect origin to chainID. An existing grant is
// reused without asking.
func (s *signingService) Enable(ctx context.Context, origin, chainID string) (bool, error) {
	req := models.RelayRequest{Type: models.RelayEnable, Origin: origin, ChainID: chainID}
	if err := s.validate(ctx, req); err != nil {
		return false, err
	}

	ok, err := s.permissions.Has(ctx, origin, chainID)
	if err != nil || ok {
		return ok, err
	}

	approved, err := s.approvals.RequestApproval(ctx, models.ApprovalConnection, origin, mustJSON(req))
	if err != nil || !approved {
		return false, err
	}
	return true, s.grant(ctx, origin, chainID)
}

// Disable revokes every grant of origin.
func (s *signingService) Disable(ctx context.Context, origin string) error {
	n, err := s.permissions.Revoke(ctx, origin)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Str("origin", origin).Int64("revoked", n).Msg("origin disabled")
	return nil
}

// Permissions lists every grant.
func (s *signingService) Permissions(ctx context.Context) ([]models.OriginPermission, error) {
	return s.permissions.List(ctx)
}

// GetKey returns the selected account's key as seen on chainID.
func (s *signingService) GetKey(ctx context.Context, origin, chainID string) (models.Key, error) {
	if err := s.requirePermission(ctx, origin, chainID); err != nil {
		return models.Key{}, err
	}

	ring, err := s.wallet.Keyring(ctx)
	if err != nil {
		return models.Key{}, err
	}
	accountID, err := s.selectedAccount(ctx, ring)
	if err != nil {
		return models.Key{}, err
	}

	key, err := ring.Key(accountID, prefixFor(chainID, ring))
	return key, mapKeyringError(err)
}

// SignAmino signs an amino sign doc after the user approved it.
func (s *signingService) SignAmino(ctx context.Context, origin, chainID, signer string, doc models.StdSignDoc) (models.AminoSignResponse, error) {
	req := models.RelayRequest{Type: models.RelaySignAmino, Origin: origin, ChainID: chainID, Signer: signer, AminoDoc: &doc}
	if err := s.gate(ctx, req); err != nil {
		return models.AminoSignResponse{}, err
	}
	res, err := s.execute(ctx, req)
	if err != nil {
		return models.AminoSignResponse{}, err
	}
	return *res.Amino, nil
}

// SignDirect signs a protobuf sign doc after the user approved it.
func (s *signingService) SignDirect(ctx context.Context, origin, chainID, signer string, doc models.DirectSignDoc) (models.DirectSignResponse, error) {
	req := models.RelayRequest{Type: models.RelaySignDirect, Origin: origin, ChainID: chainID, Signer: signer, DirectDoc: &doc}
	if err := s.gate(ctx, req); err != nil {
		return models.DirectSignResponse{}, err
	}
	res, err := s.execute(ctx, req)
	if err != nil {
		return models.DirectSignResponse{}, err
	}
	return *res.Direct, nil
}

// SignArbitrary signs data under the ADR-036 convention after approval.
func (s *signingService) SignArbitrary(ctx context.Context, origin, chainID, signer string, data []byte) (models.StdSignature, error) {
	req := models.RelayRequest{Type: models.RelaySignArbitrary, Origin: origin, ChainID: chainID, Signer: signer, Data: data}
	if err := s.gate(ctx, req); err != nil {
		return models.StdSignature{}, err
	}
	res, err := s.execute(ctx, req)
	if err != nil {
		return models.StdSignature{}, err
	}
	return *res.Signature, nil
}

// VerifyArbitrary checks an ADR-036 signature. It needs no approval.
func (s *signingService) VerifyArbitrary(ctx context.Context, origin, chainID, signer string, data []byte, sig models.StdSignature) (bool, error) {
	if err := s.requirePermission(ctx, origin, chainID); err != nil {
		return false, err
	}
	ring, err := s.wallet.Keyring(ctx)
	if err != nil {
		return false, err
	}
	ok, err := ring.VerifyArbitrary(signer, data, sig)
	return ok, mapKeyringError(err)
}

// gate runs the synchronous approval of a signing request.
func (s *signingService) gate(ctx context.Context, req models.RelayRequest) error {
	if err := s.precheck(ctx, req); err != nil {
		return err
	}
	approved, err := s.approvals.RequestApproval(ctx, approvalKind(req.Type), req.Origin, mustJSON(req))
	if err != nil {
		return err
	}
	if !approved {
		return ErrRequestRejected
	}
	return nil
}

// precheck rejects a request before bothering the user: it must be well
// formed, come from an enabled origin and name a signer this wallet owns.
func (s *signingService) precheck(ctx context.Context, req models.RelayRequest) error {
	if err := s.validate(ctx, req); err != nil {
		return err
	}
	if req.Type == models.RelayEnable {
		return nil
	}
	if err := s.requirePermission(ctx, req.Origin, req.ChainID); err != nil {
		return err
	}
	ring, err := s.wallet.Keyring(ctx)
	if err != nil {
		return err
	}
	_, err = ring.KeyByAddress(req.Signer)
	return mapKeyringError(err)
}

// execute performs an approved request against the current keyring, which
// may have been locked while the user was deciding.
func (s *signingService) execute(ctx context.Context, req models.RelayRequest) (models.RelayResult, error) {
	log := logger.FromContext(ctx)

	if req.Type == models.RelayEnable {
		if err := s.grant(ctx, req.Origin, req.ChainID); err != nil {
			return models.RelayResult{}, err
		}
		return models.RelayResult{Status: models.RelayApproved}, nil
	}

	ring, err := s.wallet.Keyring(ctx)
	if err != nil {
		return models.RelayResult{}, err
	}

	res := models.RelayResult{Status: models.RelayApproved}
	switch req.Type {
	case models.RelaySignAmino:
		signed, err := ring.SignAmino(req.ChainID, req.Signer, *req.AminoDoc)
		if err != nil {
			return models.RelayResult{}, mapKeyringError(err)
		}
		res.Amino = &signed
	case models.RelaySignDirect:
		signed, err := ring.SignDirect(req.ChainID, req.Signer, *req.DirectDoc)
		if err != nil {
			return models.RelayResult{}, mapKeyringError(err)
		}
		res.Direct = &signed
	case models.RelaySignArbitrary:
		sig, err := ring.SignArbitrary(req.Signer, req.Data)
		if err != nil {
			return models.RelayResult{}, mapKeyringError(err)
		}
		res.Signature = &sig
	default:
		return models.RelayResult{}, fmt.Errorf("%w: type %q", ErrInvalidRequest, req.Type)
	}

	log.Info().
		Str("origin", req.Origin).
		Str("chain_id", req.ChainID).
		Str("type", string(req.Type)).
		Msg("request signed")
	return res, nil
}

func (s *signingService) grant(ctx context.Context, origin, chainID string) error {
	perm := models.OriginPermission{Origin: origin, ChainID: chainID, GrantedAt: s.now()}
	if err := s.validate(ctx, perm); err != nil {
		return err
	}
	if err := s.permissions.Grant(ctx, perm); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Str("origin", origin).Str("chain_id", chainID).Msg("origin enabled")
	return nil
}

func (s *signingService) requirePermission(ctx context.Context, origin, chainID string) error {
	ok, err := s.permissions.Has(ctx, origin, chainID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrOriginNotPermitted, origin, chainID)
	}
	return nil
}

func (s *signingService) selectedAccount(ctx context.Context, ring *keyring.Keyring) (string, error) {
	prefs, err := s.wallet.Preferences(ctx)
	if err != nil {
		return "", err
	}
	if prefs.SelectedAccountID != "" {
		if _, err := ring.Account(prefs.SelectedAccountID); err == nil {
			return prefs.SelectedAccountID, nil
		}
	}
	accounts := ring.Accounts()
	if len(accounts) == 0 {
		return "", ErrAccountNotFound
	}
	return accounts[0].ID, nil
}

// validate runs the request validator and reports its findings as
// ErrInvalidRequest.
func (s *signingService) validate(ctx context.Context, v any, fields ...string) error {
	if err := s.validator.Validate(ctx, v, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func approvalKind(t models.RelayRequestType) models.ApprovalKind {
	switch t {
	case models.RelayEnable:
		return models.ApprovalConnection
	case models.RelaySignArbitrary:
		return models.ApprovalSigning
	}
	return models.ApprovalTransaction
}

func prefixFor(chainID string, ring *keyring.Keyring) string {
	if p, ok := chainPrefixes[chainID]; ok {
		return p
	}
	return ring.Params().Bech32Prefix
}

// mapKeyringError reports a keyring wiped under our feet as a locked wallet.
func mapKeyringError(err error) error {
	if errors.Is(err, keyring.ErrWiped) {
		return fmt.Errorf("%w: %w", ErrLocked, err)
	}
	return err
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("marshal %T: %v", v, err))
	}
	return b
}
