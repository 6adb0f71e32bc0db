package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// querier is the subset of sql.DB/sql.Tx the capacity helpers need, so the
// same SQL backs both the soft check and the in-transaction authoritative
// check.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type CapacityLedger struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCapacityLedger(db *dbpg.DB) *CapacityLedger {
	return &CapacityLedger{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// TryReserve is the soft check: it reads declared capacity and the committed
// (approved) participant sum without locking. It only refuses requests that
// could never fit; a request that merely does not fit right now queues as
// pending, since spots may free up before approval. The authoritative check
// runs inside the approval transaction.
func (l *CapacityLedger) TryReserve(ctx context.Context, key domain.ResourceKey, delta int) (domain.CapacityDecision, error) {
	capacity, err := resourceCapacity(ctx, l.db.Master, key, false)
	if err != nil {
		return domain.CapacityDecision{}, err
	}
	if capacity == nil {
		return domain.CapacityDecision{Accepted: true, Remaining: -1}, nil
	}

	committed, err := committedParticipants(ctx, l.db.Master, key)
	if err != nil {
		return domain.CapacityDecision{}, err
	}

	return softDecision(*capacity, committed, delta), nil
}

// softDecision admits delta whenever it fits the declared total, regardless
// of what is currently committed. Remaining still reports the live headroom
// for the caller's error message.
func softDecision(capacity, committed, delta int) domain.CapacityDecision {
	return domain.CapacityDecision{
		Accepted:  delta <= capacity,
		Remaining: capacity - committed,
	}
}

// resourceCapacity returns the declared capacity for the resource, nil for
// unbounded services. With forUpdate set the row is locked for the duration
// of the surrounding transaction.
func resourceCapacity(ctx context.Context, q querier, key domain.ResourceKey, forUpdate bool) (*int, error) {
	suffix := ""
	if forUpdate {
		suffix = " FOR UPDATE"
	}

	if key.SlotID != "" {
		var capacity int
		query := `SELECT capacity FROM slots WHERE id = $1` + suffix
		if err := q.QueryRowContext(ctx, query, key.SlotID).Scan(&capacity); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, domain.ErrSlotNotFound
			}
			return nil, fmt.Errorf("get slot capacity: %w", err)
		}
		return &capacity, nil
	}

	var capacity sql.NullInt64
	query := `SELECT capacity FROM services WHERE id = $1` + suffix
	if err := q.QueryRowContext(ctx, query, key.ServiceID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service capacity: %w", err)
	}
	if !capacity.Valid {
		return nil, nil
	}
	c := int(capacity.Int64)
	return &c, nil
}

// committedParticipants sums participants over approved reservations on the
// resource. Pending reservations never consume capacity.
func committedParticipants(ctx context.Context, q querier, key domain.ResourceKey) (int, error) {
	var query string
	var arg string
	if key.SlotID != "" {
		query = `SELECT COALESCE(SUM(participants_count), 0) FROM reservations
				 WHERE slot_id = $1 AND status = $2`
		arg = key.SlotID
	} else {
		query = `SELECT COALESCE(SUM(participants_count), 0) FROM reservations
				 WHERE service_id = $1 AND slot_id IS NULL AND status = $2`
		arg = key.ServiceID
	}

	var committed int
	if err := q.QueryRowContext(ctx, query, arg, domain.ReservationStatusApproved).Scan(&committed); err != nil {
		return 0, fmt.Errorf("sum committed participants: %w", err)
	}
	return committed, nil
}
