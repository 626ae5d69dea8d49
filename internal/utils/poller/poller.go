package poller

import (
	"context"
	"sync"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Poller struct {
	name       string
	interval   time.Duration
	clock      clock.Clock
	quit       chan struct{}
	stopOnce   sync.Once
	pollMethod func(ctx context.Context) error
}

func NewPoller(
	name string, interval time.Duration, clk clock.Clock, pollMethod func(ctx context.Context) error,
) *Poller {
	return &Poller{
		name:       name,
		interval:   interval,
		clock:      clk,
		quit:       make(chan struct{}),
		pollMethod: pollMethod,
	}
}

// Start polls once right away and then after every interval, until ctx is
// cancelled or Stop is called. Poll errors are logged and do not stop it.
func (p *Poller) Start(ctx context.Context) {
	logger := log.With().Str("poller", p.name).Logger()
	logger.Info().Msgf("Starting poller with interval %s", p.interval)

	for {
		p.poll(ctx, &logger)

		select {
		case <-p.clock.TickAfter(p.interval):
		case <-ctx.Done():
			logger.Info().Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			logger.Info().Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) poll(ctx context.Context, logger *zerolog.Logger) {
	logger.Debug().Msg("Executing poll method")
	if err := p.pollMethod(ctx); err != nil {
		logger.Error().Err(err).Msg("Error polling")
		return
	}
	logger.Debug().Msg("Poll method executed successfully")
}

// Stop is safe to call more than once.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
}
