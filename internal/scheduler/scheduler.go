package scheduler

import (
	"context"
	"time"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type listingExpirer interface {
	ExpireDue(ctx context.Context) ([]*domain.Listing, error)
}

type reservationCompleter interface {
	CompleteDue(ctx context.Context) ([]*domain.Reservation, error)
}

// Sweeper applies the two time-driven transitions: published listings past
// their end date become expired, approved reservations past their slot or
// event date become completed. Both underlying updates are idempotent, so a
// missed or doubled tick is harmless.
type Sweeper struct {
	listings     listingExpirer
	reservations reservationCompleter
	interval     time.Duration
	logger       logger.Logger
}

func New(
	listings listingExpirer,
	reservations reservationCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Sweeper {
	return &Sweeper{
		listings:     listings,
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	expired, err := s.listings.ExpireDue(ctx)
	if err != nil {
		s.logger.Error("failed to expire due listings",
			logger.String("error", err.Error()),
		)
	} else {
		for _, l := range expired {
			s.logger.Info("listing expired",
				logger.String("listing_id", l.ID),
				logger.String("provider_id", l.ProviderID),
			)
		}
	}

	completed, err := s.reservations.CompleteDue(ctx)
	if err != nil {
		s.logger.Error("failed to complete due reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range completed {
		s.logger.Info("reservation completed",
			logger.String("reservation_id", r.ID),
			logger.String("listing_id", r.ListingID),
		)
	}
}
