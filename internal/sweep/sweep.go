package sweep

import (
	"context"
	"time"

	"github.com/marinaclub/boatshare/internal/config"
	"go.uber.org/zap"
)

type Sweeper interface {
	RunArchivalSweep(ctx context.Context) (int, error)
}

// Service drives the archival sweep on a fixed interval. One eager run fires
// shortly after startup so a restart never leaves elapsed reservations
// unarchived for a full interval.
type Service struct {
	sweeper      Sweeper
	interval     time.Duration
	startupDelay time.Duration
}

func New(cfg *config.Config, sweeper Sweeper) *Service {
	return &Service{
		sweeper:      sweeper,
		interval:     cfg.SweepInterval,
		startupDelay: cfg.SweepStartupDelay,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Sweep service started",
		zap.Duration("interval", s.interval),
		zap.Duration("startupDelay", s.startupDelay),
	)
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	startup := time.NewTimer(s.startupDelay)
	defer startup.Stop()

	select {
	case <-ctx.Done():
		zap.L().Info("Context canceled, stopping sweep service")
		return
	case <-startup.C:
		s.sweepOnce(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweep service")
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Service) sweepOnce(ctx context.Context) {
	transitions, err := s.sweeper.RunArchivalSweep(ctx)
	if err != nil {
		zap.L().Error("Archival sweep failed", zap.Error(err))
		return
	}
	zap.L().Info("Archival sweep finished", zap.Int("transitions", transitions))
}
