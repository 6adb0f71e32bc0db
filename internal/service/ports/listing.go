package ports

import (
	"context"
	"time"

	"github.com/Miki0195/delavnice-backend/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	// UpdateStatus is a compare-and-swap on the listing status. When the
	// listing is no longer in from, it resolves the actual state and
	// returns an InvalidTransitionError.
	UpdateStatus(ctx context.Context, id string, from, to domain.ListingStatus) error
	// Promote atomically archives the previous version (when the pending
	// listing is an edit or renewal fork) and publishes the pending one.
	// Partial application is never observable.
	Promote(ctx context.Context, pendingID string) (*domain.Listing, error)
	Deny(ctx context.Context, id, reason string) error
	// ExpireDue moves published listings past their end date to expired
	// and returns the affected rows. Idempotent.
	ExpireDue(ctx context.Context, now time.Time) ([]*domain.Listing, error)
	ListActive(ctx context.Context, now time.Time) ([]*domain.Listing, error)
	ListPendingReview(ctx context.Context) ([]*domain.Listing, error)
	ListByProvider(ctx context.Context, providerID string) ([]*domain.Listing, error)
}
