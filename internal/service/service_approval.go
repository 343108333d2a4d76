// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/bus"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
	"github.com/MKhiriev/go-chain-keeper/models"
)

const (
	// DefaultApprovalTimeout is the hard lifetime of a pending approval.
	DefaultApprovalTimeout = 5 * time.Minute

	defaultApprovalPollInterval = 500 * time.Millisecond

	// outcomeRetention bounds how long an uncollected outcome is kept for a
	// caller resuming by id.
	outcomeRetention = time.Hour
)

// approvalService is the approval queue. Storage is the source of truth;
// the in-memory waiters only shorten the wait of callers in this process.
// A caller that lost its waiter (e.g. after a coordinator restart) resumes
// by id through Await, which falls back to polling.
type approvalService struct {
	repo store.ApprovalRepository
	bus  Publisher

	timeout      time.Duration
	pollInterval time.Duration

	mu      sync.Mutex
	waiters map[string]chan struct{}

	now    Clock
	newID  func() string
	logger *logger.Logger
}

// NewApprovalService constructs an ApprovalService. A zero timeout means
// [DefaultApprovalTimeout].
func NewApprovalService(repo store.ApprovalRepository, publisher Publisher, timeout time.Duration, logger *logger.Logger) ApprovalService {
	logger.Debug().Msg("creating approval service")
	if timeout <= 0 {
		timeout = DefaultApprovalTimeout
	}
	return &approvalService{
		repo:         repo,
		bus:          publisher,
		timeout:      timeout,
		pollInterval: defaultApprovalPollInterval,
		waiters:      make(map[string]chan struct{}),
		now:          time.Now,
		newID:        utils.NewTimeOrderedID,
		logger:       logger,
	}
}

// RequestApproval enqueues a request and waits for the user's decision.
func (a *approvalService) RequestApproval(ctx context.Context, kind models.ApprovalKind, origin string, payload json.RawMessage) (bool, error) {
	p, err := a.Enqueue(ctx, kind, origin, payload)
	if err != nil {
		return false, err
	}
	return a.Await(ctx, p.ID)
}

// Enqueue stores a new pending approval, updates the pending count and asks
// the UI to focus it.
func (a *approvalService) Enqueue(ctx context.Context, kind models.ApprovalKind, origin string, payload json.RawMessage) (models.PendingApproval, error) {
	if !kind.Valid() {
		return models.PendingApproval{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidApproval, kind)
	}
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return models.PendingApproval{}, fmt.Errorf("%w: empty origin", ErrInvalidApproval)
	}
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}
	if !json.Valid(payload) {
		return models.PendingApproval{}, fmt.Errorf("%w: payload is not JSON", ErrInvalidApproval)
	}

	p := models.PendingApproval{
		ID:        a.newID(),
		Kind:      kind,
		Origin:    origin,
		Payload:   payload,
		CreatedAt: time.UnixMilli(a.now().UnixMilli()).UTC(),
	}

	// register before storing so a fast resolver cannot be missed
	a.waiter(p.ID)
	if err := a.repo.InsertPending(ctx, p); err != nil {
		a.dropWaiter(p.ID)
		return models.PendingApproval{}, err
	}

	logger.FromContext(ctx).Info().
		Str("approval_id", p.ID).
		Str("kind", string(kind)).
		Str("origin", origin).
		Msg("approval requested")

	a.publishCount(ctx)
	a.bus.Publish(bus.TopicUIFocus, p.ID)
	return p, nil
}

// Await blocks until approval id is resolved or times out and returns the
// decision, consuming the stored outcome. It works for any id still known
// to storage, including ones enqueued before a restart. Cancelling ctx
// abandons the wait but leaves the approval pending.
func (a *approvalService) Await(ctx context.Context, id string) (bool, error) {
	defer a.dropWaiter(id)

	for {
		resolved := a.waiter(id)

		outcome, err := a.Check(ctx, id)
		switch {
		case err == nil:
			if err := a.Consume(ctx, id); err != nil && !errors.Is(err, store.ErrOutcomeNotFound) {
				return false, err
			}
			return outcome.Approved, nil
		case !errors.Is(err, ErrApprovalPending):
			return false, err
		}

		p, err := a.repo.GetPending(ctx, id)
		if errors.Is(err, store.ErrApprovalNotFound) {
			// resolved between the two reads
			continue
		}
		if err != nil {
			return false, err
		}

		wait := min(a.pollInterval, p.ExpiresAt(a.timeout).Sub(a.now()))
		if wait < 0 {
			wait = 0
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		case <-resolved:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// Check returns the outcome of id without consuming it. A request still
// waiting yields [ErrApprovalPending]; one that outlived its timeout is
// rejected first.
func (a *approvalService) Check(ctx context.Context, id string) (models.ApprovalOutcome, error) {
	outcome, err := a.repo.GetOutcome(ctx, id)
	if err == nil {
		return outcome, nil
	}
	if !errors.Is(err, store.ErrOutcomeNotFound) {
		return models.ApprovalOutcome{}, err
	}

	p, err := a.repo.GetPending(ctx, id)
	if errors.Is(err, store.ErrApprovalNotFound) {
		// a resolve may have landed after the first read
		if outcome, err := a.repo.GetOutcome(ctx, id); err == nil {
			return outcome, nil
		}
		return models.ApprovalOutcome{}, fmt.Errorf("%w: %s", ErrApprovalNotFound, id)
	}
	if err != nil {
		return models.ApprovalOutcome{}, err
	}

	if a.expired(p) {
		if err := a.expire(ctx, p); err != nil && !errors.Is(err, store.ErrApprovalNotFound) {
			return models.ApprovalOutcome{}, err
		}
		return a.repo.GetOutcome(ctx, id)
	}
	return models.ApprovalOutcome{}, ErrApprovalPending
}

// Consume removes the stored outcome of id once its caller acted on it.
func (a *approvalService) Consume(ctx context.Context, id string) error {
	return a.repo.DeleteOutcome(ctx, id)
}

// Resolve records the user's decision and wakes a waiter in this process.
// An approval that outlived its timeout is rejected instead and the call
// fails with [ErrApprovalExpired], whatever the user decided.
func (a *approvalService) Resolve(ctx context.Context, id string, approved bool) error {
	p, err := a.repo.GetPending(ctx, id)
	if err != nil {
		return err
	}
	if a.expired(p) {
		if err := a.expire(ctx, p); err != nil && !errors.Is(err, store.ErrApprovalNotFound) {
			return err
		}
		return fmt.Errorf("%w: %s", ErrApprovalExpired, id)
	}

	if _, err := a.repo.Resolve(ctx, id, approved, a.now()); err != nil {
		return err
	}
	a.wake(id)
	a.publishCount(ctx)

	logger.FromContext(ctx).Info().Str("approval_id", id).Bool("approved", approved).Msg("approval resolved")
	return nil
}

// Get returns approval id, or the oldest pending one when id is empty.
func (a *approvalService) Get(ctx context.Context, id string) (models.PendingApproval, error) {
	if _, err := a.ExpireStale(ctx); err != nil {
		return models.PendingApproval{}, err
	}
	if id == "" {
		return a.repo.OldestPending(ctx)
	}
	return a.repo.GetPending(ctx, id)
}

// List returns every live pending approval, oldest first.
func (a *approvalService) List(ctx context.Context) ([]models.PendingApproval, error) {
	if _, err := a.ExpireStale(ctx); err != nil {
		return nil, err
	}
	return a.repo.ListPending(ctx)
}

// Count returns the number of live pending approvals.
func (a *approvalService) Count(ctx context.Context) (int, error) {
	if _, err := a.ExpireStale(ctx); err != nil {
		return 0, err
	}
	return a.repo.CountPending(ctx)
}

// ExpireStale rejects every approval that outlived its timeout and drops
// outcomes nobody collected. It returns the number of rejected approvals.
func (a *approvalService) ExpireStale(ctx context.Context) (int, error) {
	now := a.now()

	stale, err := a.repo.ListCreatedBefore(ctx, now.Add(-a.timeout))
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, p := range stale {
		if err := a.expire(ctx, p); err != nil {
			if errors.Is(err, store.ErrApprovalNotFound) {
				continue
			}
			return expired, err
		}
		expired++
	}

	if _, err := a.repo.DeleteOutcomesBefore(ctx, now.Add(-outcomeRetention)); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to drop stale approval outcomes")
	}
	return expired, nil
}

func (a *approvalService) expired(p models.PendingApproval) bool {
	return !a.now().Before(p.ExpiresAt(a.timeout))
}

func (a *approvalService) expire(ctx context.Context, p models.PendingApproval) error {
	if _, err := a.repo.Resolve(ctx, p.ID, false, a.now()); err != nil {
		return err
	}
	a.wake(p.ID)
	a.publishCount(ctx)

	logger.FromContext(ctx).Warn().
		Str("approval_id", p.ID).
		Str("origin", p.Origin).
		Dur("timeout", a.timeout).
		Msg("approval timed out, rejected")
	return nil
}

func (a *approvalService) publishCount(ctx context.Context) {
	n, err := a.repo.CountPending(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to count pending approvals")
		return
	}
	a.bus.Publish(bus.TopicApprovalsPending, n)
}

func (a *approvalService) waiter(id string) <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	ch, ok := a.waiters[id]
	if !ok {
		ch = make(chan struct{})
		a.waiters[id] = ch
	}
	return ch
}

func (a *approvalService) wake(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if ch, ok := a.waiters[id]; ok {
		close(ch)
		delete(a.waiters, id)
	}
}

func (a *approvalService) dropWaiter(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.waiters, id)
}
