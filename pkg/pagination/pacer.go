package pagination

import (
	"context"
	"time"
)

// Pacer inserts a fixed delay between consecutive page requests. The
// delay is deliberately constant: the Search API tolerates roughly one
// request per second from a token, and a constant pause keeps the loop
// predictable and testable.
type Pacer struct {
	delay time.Duration

	// sleep is replaceable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewPacer creates a pacer with the given inter-page delay.
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{
		delay: delay,
		sleep: sleepContext,
	}
}

// Wait blocks for the configured delay or until the context is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.delay <= 0 {
		return nil
	}
	return p.sleep(ctx, p.delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
