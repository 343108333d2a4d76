package workers

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chain-keeper/internal/bus"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

// syncBuffer guards a bytes.Buffer written by worker goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestEventLogWorker_LogsPublishedEvents(t *testing.T) {
	b := bus.New()
	out := &syncBuffer{}
	w := NewEventLogWorker(b, logger.New(out, "test", zerolog.InfoLevel))

	w.Start(context.Background())
	defer w.Stop()

	assert.Equal(t, 1, b.Publish(bus.TopicLocked, nil))
	assert.Equal(t, 1, b.Publish(bus.TopicApprovalsPending, 3))

	require.Eventually(t, func() bool {
		s := out.String()
		return strings.Contains(s, `"topic":"locked"`) && strings.Contains(s, `"payload":3`)
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, out.String(), `"worker":"events"`)
}

func TestEventLogWorker_StopUnsubscribes(t *testing.T) {
	b := bus.New()
	w := NewEventLogWorker(b, logger.Nop())

	w.Start(context.Background())
	w.Stop()

	assert.Zero(t, b.Publish(bus.TopicLocked, nil))
	assert.Zero(t, b.Publish(bus.TopicUnlocked, nil))
}

func TestEventLogWorker_CancelledContext(t *testing.T) {
	b := bus.New()
	w := NewEventLogWorker(b, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after cancel")
	}
}

func TestWorkers_Add(t *testing.T) {
	ws := NewWorkers(&countingLocker{}, &countingSweeper{}, config.Workers{}, logger.Nop())

	ws.Add(NewEventLogWorker(bus.New(), logger.Nop()))

	assert.Len(t, ws.workers, 3)
}
