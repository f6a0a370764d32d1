// Package sweeper periodically deactivates expired moments.
package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"bumpr/config"
	"bumpr/internal/delivery"
	"bumpr/internal/usecase"

	"go.uber.org/fx"
)

// Params holds dependencies for the expiry sweeper, injected by Fx.
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	MomentUC usecase.MomentUsecase
}

// sweeper flips is_active on expired moments every interval.
// Nearby queries check expiry themselves, so a late sweep only delays bookkeeping.
type sweeper struct {
	momentUC usecase.MomentUsecase
	interval time.Duration
	logger   *slog.Logger

	running  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates the sweeper delivery.
func New(params Params) (delivery.Delivery, error) {
	s := &sweeper{
		momentUC: params.MomentUC,
		interval: params.Cfg.Moment.SweepInterval,
		logger:   params.Logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.shutdown,
	})

	return s, nil
}

// Serve runs the sweep loop until ctx is cancelled or the application stops.
func (s *sweeper) Serve(ctx context.Context) error {
	s.running.Store(true)
	defer close(s.done)

	s.logger.Info("Starting moment expiry sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	count, err := s.momentUC.DeactivateExpired(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Moment expiry sweep failed", slog.Any("error", err))

		return
	}

	if count > 0 {
		s.logger.InfoContext(ctx, "Deactivated expired moments", slog.Int64("count", count))
	}
}

func (s *sweeper) shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })

	if !s.running.Load() {
		return nil
	}

	s.logger.Info("Stopping moment expiry sweeper")

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
