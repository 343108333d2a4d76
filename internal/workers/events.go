// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-chain-keeper/internal/bus"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

// eventLogger writes every event of its topics to the log, so lock and
// approval transitions show up in walletd's output.
type eventLogger struct {
	sub    Subscriber
	topics []bus.Topic
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEventLogWorker returns a worker logging the lock and approval topics.
func NewEventLogWorker(sub Subscriber, log *logger.Logger) Worker {
	return &eventLogger{
		sub:    sub,
		topics: []bus.Topic{bus.TopicLocked, bus.TopicUnlocked, bus.TopicApprovalsPending, bus.TopicUIFocus},
		logger: &logger.Logger{Logger: log.With().Str("worker", "events").Logger()},
	}
}

// Start subscribes before returning, so no event published after Start is
// missed.
func (e *eventLogger) Start(ctx context.Context) {
	e.Stop()

	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, e.cancel = context.WithCancel(ctx)

	for _, topic := range e.topics {
		events, unsubscribe := e.sub.Subscribe(topic)

		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			defer unsubscribe()

			for {
				select {
				case <-ctx.Done():
					return
				case ev, ok := <-events:
					if !ok {
						return
					}
					e.logger.Info().
						Str("topic", string(ev.Topic)).
						Interface("payload", ev.Payload).
						Time("at", ev.At).
						Msg("event")
				}
			}
		}()
	}
}

func (e *eventLogger) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.wg.Wait()
}
