package live

import (
	"context"
	"time"

	mdwlog "github.com/msto63/iadate/foundation/core/log"
	"github.com/msto63/iadate/pkg/iatime"
)

// Poller reads the current tick count on a fixed period and publishes it
// whenever it changes.
type Poller struct {
	period time.Duration
	pub    Publisher
	source func() int64
	logger *mdwlog.Logger
}

// PollerOption configures a Poller
type PollerOption func(*Poller)

// WithTickSource replaces iatime.NowTicks as the source of the current tick
func WithTickSource(source func() int64) PollerOption {
	return func(p *Poller) {
		if source != nil {
			p.source = source
		}
	}
}

// WithLogger sets the poller's logger
func WithLogger(logger *mdwlog.Logger) PollerOption {
	return func(p *Poller) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPoller creates a poller publishing to pub every period
func NewPoller(period time.Duration, pub Publisher, opts ...PollerOption) *Poller {
	if period <= 0 {
		period = time.Second
	}
	p := &Poller{
		period: period,
		pub:    pub,
		source: iatime.NowTicks,
		logger: mdwlog.GetDefault(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.WithName("live-poller")
	return p
}

// Run publishes the current value immediately and then on every change
// until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.period)
	defer ticker.Stop()

	last := p.source()
	p.pub.Publish(NewUpdate(last))
	p.logger.Debug("poller started", mdwlog.Fields{"period": p.period.String(), "ticks": last})

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("poller stopped")
			return ctx.Err()
		case <-ticker.C:
			current := p.source()
			if current == last {
				continue
			}
			last = current
			p.pub.Publish(NewUpdate(current))
		}
	}
}
