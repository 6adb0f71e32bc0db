package ports

import (
	"context"

	"github.com/Miki0195/delavnice-backend/internal/domain"
)

// CapacityLedger answers whether delta more participants fit on a resource.
// TryReserve is the soft check used at reservation creation: it reads
// committed (approved) participants without locking and does not prevent
// races. The authoritative check lives inside ReservationRepo.Approve.
type CapacityLedger interface {
	TryReserve(ctx context.Context, key domain.ResourceKey, delta int) (domain.CapacityDecision, error)
}
