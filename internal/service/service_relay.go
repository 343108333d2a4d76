package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// Submit enqueues req and returns its id without waiting. An enable request
// for an already granted origin settles immediately.
func (s *signingService) Submit(ctx context.Context, req models.RelayRequest) (models.RelayResult, error) {
	if err := s.precheck(ctx, req); err != nil {
		return models.RelayResult{}, err
	}

	if req.Type == models.RelayEnable {
		ok, err := s.permissions.Has(ctx, req.Origin, req.ChainID)
		if err != nil {
			return models.RelayResult{}, err
		}
		if ok {
			return models.RelayResult{Status: models.RelayApproved}, nil
		}
	}

	p, err := s.approvals.Enqueue(ctx, approvalKind(req.Type), req.Origin, mustJSON(req))
	if err != nil {
		return models.RelayResult{}, err
	}
	return models.RelayResult{ID: p.ID, Status: models.RelayPending}, nil
}

// Result reports the state of a submitted request. Once approved, the
// operation runs against the current keyring and the outcome is consumed;
// if it fails (e.g. the wallet got locked) the outcome is kept so the relay
// can retry after an unlock.
func (s *signingService) Result(ctx context.Context, id string) (models.RelayResult, error) {
	log := logger.FromContext(ctx)

	outcome, err := s.approvals.Check(ctx, id)
	if errors.Is(err, ErrApprovalPending) {
		return models.RelayResult{ID: id, Status: models.RelayPending}, nil
	}
	if err != nil {
		return models.RelayResult{}, err
	}
	// a relay may only collect results of its own origin
	if origin, ok := utils.GetOriginFromContext(ctx); ok && origin != outcome.Origin {
		return models.RelayResult{}, ErrApprovalNotFound
	}

	if !outcome.Approved {
		if err := s.consume(ctx, id); err != nil {
			return models.RelayResult{}, err
		}
		return models.RelayResult{ID: id, Status: models.RelayRejected}, nil
	}

	var req models.RelayRequest
	if err := json.Unmarshal(outcome.Payload, &req); err != nil {
		return models.RelayResult{}, fmt.Errorf("%w: decode approved payload: %w", ErrInvalidRequest, err)
	}

	res, err := s.execute(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("approval_id", id).Msg("approved request could not be executed")
		return models.RelayResult{}, err
	}
	if err := s.consume(ctx, id); err != nil {
		return models.RelayResult{}, err
	}

	res.ID = id
	return res, nil
}

// consume tolerates an outcome already collected by a concurrent poll.
func (s *signingService) consume(ctx context.Context, id string) error {
	if err := s.approvals.Consume(ctx, id); err != nil && !errors.Is(err, store.ErrOutcomeNotFound) {
		return err
	}
	return nil
}
