package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// Field names accepted by RelayRequestValidator.
const (
	FieldOrigin    = "origin"
	FieldChainID   = "chain_id"
	FieldType      = "type"
	FieldSigner    = "signer"
	FieldGrantedAt = "granted_at"
)

// grantClockSkew tolerates small clock differences between the coordinator
// and whatever stamped a permission.
const grantClockSkew = time.Minute

// RelayRequestValidator validates relay requests and origin permissions.
type RelayRequestValidator struct {
	now func() time.Time
}

func NewRelayRequestValidator() Validator {
	return &RelayRequestValidator{now: time.Now}
}

func (v *RelayRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RelayRequest:
		return v.validateRelayRequest(value, fields...)
	case *models.RelayRequest:
		return v.validateRelayRequest(*value, fields...)

	case models.OriginPermission:
		return v.validatePermission(value, fields...)
	case *models.OriginPermission:
		return v.validatePermission(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RelayRequestValidator) validateRelayRequest(req models.RelayRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrigin, FieldChainID, FieldType, FieldSigner}
	}

	for _, f := range fields {
		switch f {
		case FieldOrigin:
			if strings.TrimSpace(req.Origin) == "" {
				return ErrEmptyOrigin
			}
		case FieldChainID:
			if strings.TrimSpace(req.ChainID) == "" {
				return ErrEmptyChainID
			}
		case FieldType:
			if err := validatePayload(req); err != nil {
				return err
			}
		case FieldSigner:
			// enable is the only request not bound to an account
			if req.Type != models.RelayEnable && req.Signer == "" {
				return ErrEmptySigner
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePayload checks that the payload matches the request type and that
// a sign doc is for the chain the request names.
func validatePayload(req models.RelayRequest) error {
	switch req.Type {
	case models.RelayEnable:
		return nil
	case models.RelaySignAmino:
		if req.AminoDoc == nil {
			return fmt.Errorf("%w: amino", ErrMissingSignDoc)
		}
		if req.AminoDoc.ChainID != req.ChainID {
			return keyring.ErrChainMismatch
		}
	case models.RelaySignDirect:
		if req.DirectDoc == nil {
			return fmt.Errorf("%w: direct", ErrMissingSignDoc)
		}
		if req.DirectDoc.ChainID != req.ChainID {
			return keyring.ErrChainMismatch
		}
	case models.RelaySignArbitrary:
		if len(req.Data) == 0 {
			return ErrEmptyData
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}
	return nil
}

func (v *RelayRequestValidator) validatePermission(p models.OriginPermission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrigin, FieldChainID, FieldGrantedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldOrigin:
			if strings.TrimSpace(p.Origin) == "" {
				return ErrEmptyOrigin
			}
		case FieldChainID:
			if strings.TrimSpace(p.ChainID) == "" {
				return ErrEmptyChainID
			}
		case FieldGrantedAt:
			if p.GrantedAt.After(v.now().Add(grantClockSkew)) {
				return ErrInvalidGrantAge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
