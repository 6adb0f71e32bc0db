package ports

import (
	"context"

	"github.com/Miki0195/delavnice-backend/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation, l *domain.Listing)
	NotifyReservationApproved(ctx context.Context, r *domain.Reservation, l *domain.Listing)
	NotifyReservationRejected(ctx context.Context, r *domain.Reservation, l *domain.Listing)
	NotifyReservationCancelled(ctx context.Context, r *domain.Reservation, l *domain.Listing)
}
