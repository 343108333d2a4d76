// Package workers runs the coordinator's periodic background jobs: the
// auto-lock check and the approval timeout sweep.
//
// The jobs only shorten reaction time. Every privileged operation evaluates
// auto-lock and approval timeouts itself, so a stopped worker never lets an
// expired session or approval through.
package workers

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/internal/bus"
)

// Worker is a background job that runs between Start and Stop.
//
// Start returns immediately; the work happens on a goroutine that exits
// when ctx is cancelled or Stop is called. Stop blocks until it has.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// AutoLocker evaluates auto-lock and reports whether it locked the wallet.
type AutoLocker interface {
	CheckAutoLock(ctx context.Context) (bool, error)
}

// ApprovalSweeper rejects approvals that outlived their timeout.
type ApprovalSweeper interface {
	ExpireStale(ctx context.Context) (int, error)
}

// Subscriber hands out event channels per topic. [bus.Bus] satisfies it.
type Subscriber interface {
	Subscribe(topic bus.Topic) (<-chan bus.Event, func())
}
