package ports

import (
	"context"
	"time"

	"github.com/Miki0195/delavnice-backend/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// Approve performs the authoritative capacity check and the
	// pending->approved write in one transaction keyed on the reservation's
	// resource. A failed check returns a CapacityExceededError and leaves
	// the reservation pending.
	Approve(ctx context.Context, id string, responseMessage *string) (*domain.Reservation, error)
	Reject(ctx context.Context, id string, responseMessage *string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string, reason *string) (*domain.Reservation, error)
	// CompleteDue moves approved reservations whose slot or event date has
	// passed to completed and returns the affected rows.
	CompleteDue(ctx context.Context, now time.Time) ([]*domain.Reservation, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Reservation, error)
	ListBySchool(ctx context.Context, schoolID string) ([]*domain.Reservation, error)
}
