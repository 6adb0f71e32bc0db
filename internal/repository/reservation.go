package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, listing_id, service_id, slot_id, school_id,
	participants_count, status, contact_name, contact_email,
	message, response_message, cancel_reason, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.ListingID, res.ServiceID, res.SlotID, res.SchoolID,
		res.ParticipantsCount, res.Status, res.ContactName, res.ContactEmail,
		res.Message, res.ResponseMessage, res.CancelReason, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyReserved
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}

	return res, nil
}

// Approve runs the authoritative capacity check and the pending->approved
// write as one atomic unit. The resource row is locked first, so two
// approvals competing for the last spots serialize and only one can win.
func (r *ReservationRepository) Approve(ctx context.Context, id string, responseMessage *string) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	res, err := scanReservation(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}

	// Non-pending rows are settled before the ledger is consulted: a
	// replayed approval must read as already handled, not as a capacity
	// refusal.
	if err := guardTransition(res, domain.ReservationStatusApproved); err != nil {
		return nil, err
	}

	if key, bounded := domain.KeyForReservation(res); bounded {
		capacity, err := resourceCapacity(ctx, tx, key, true)
		if err != nil {
			return nil, err
		}
		if capacity != nil {
			committed, err := committedParticipants(ctx, tx, key)
			if err != nil {
				return nil, err
			}
			if committed+res.ParticipantsCount > *capacity {
				return nil, &domain.CapacityExceededError{
					Requested: res.ParticipantsCount,
					Remaining: *capacity - committed,
				}
			}
		}
	}

	updated, err := r.updateStatusTx(ctx, tx, id,
		[]domain.ReservationStatus{domain.ReservationStatusPending},
		domain.ReservationStatusApproved,
		`response_message = COALESCE($3, response_message)`, responseMessage,
	)
	if err != nil {
		return nil, err
	}

	return updated, tx.Commit()
}

func (r *ReservationRepository) Reject(ctx context.Context, id string, responseMessage *string) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	updated, err := r.updateStatusTx(ctx, tx, id,
		[]domain.ReservationStatus{domain.ReservationStatusPending},
		domain.ReservationStatusRejected,
		`response_message = COALESCE($3, response_message)`, responseMessage,
	)
	if err != nil {
		return nil, err
	}

	return updated, tx.Commit()
}

// Cancel flips a pending or approved reservation to cancelled. Held capacity
// is released by the same write: committed participants are computed over
// approved rows only, so the moment this commits the spots are free.
func (r *ReservationRepository) Cancel(ctx context.Context, id string, reason *string) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	updated, err := r.updateStatusTx(ctx, tx, id,
		[]domain.ReservationStatus{domain.ReservationStatusPending, domain.ReservationStatusApproved},
		domain.ReservationStatusCancelled,
		`cancel_reason = COALESCE($3, cancel_reason)`, reason,
	)
	if err != nil {
		return nil, err
	}

	return updated, tx.Commit()
}

// guardTransition reports InvalidTransitionError when the reservation's
// current status cannot reach to.
func guardTransition(res *domain.Reservation, to domain.ReservationStatus) error {
	if res.Status.CanTransitionTo(to) {
		return nil
	}
	return &domain.InvalidTransitionError{
		Resource:   domain.ResourceReservation,
		ResourceID: res.ID,
		Current:    string(res.Status),
		Attempted:  string(to),
	}
}

// updateStatusTx is the single compare-and-swap all reservation transitions
// go through. Zero rows affected means the reservation left the expected
// state first; the actual state is re-read and reported.
func (r *ReservationRepository) updateStatusTx(
	ctx context.Context,
	tx *sql.Tx,
	id string,
	from []domain.ReservationStatus,
	to domain.ReservationStatus,
	extraSet string,
	extraArg *string,
) (*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2, ` + extraSet + `, updated_at = NOW()
			  WHERE id = $1 AND status = ANY($4)
			  RETURNING ` + reservationColumns

	updated, err := scanReservation(tx.QueryRowContext(
		ctx, query, id, to, extraArg, pq.Array(from),
	))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}

	var current domain.ReservationStatus
	checkQuery := `SELECT status FROM reservations WHERE id = $1`
	if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&current); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("check reservation status: %w", scanErr)
	}

	return nil, &domain.InvalidTransitionError{
		Resource:   domain.ResourceReservation,
		ResourceID: id,
		Current:    string(current),
		Attempted:  string(to),
	}
}

func (r *ReservationRepository) CompleteDue(ctx context.Context, now time.Time) ([]*domain.Reservation, error) {
	query := `
		UPDATE reservations r
		SET status = $2, updated_at = NOW()
		FROM listings l
		WHERE r.listing_id = l.id
		  AND r.status = $1
		  AND COALESCE(
				(SELECT s.end_at FROM slots s WHERE s.id = r.slot_id),
				l.event_date_end
			  ) < $3
		RETURNING r.id, r.listing_id, r.service_id, r.slot_id, r.school_id,
				  r.participants_count, r.status, r.contact_name, r.contact_email,
				  r.message, r.response_message, r.cancel_reason, r.created_at, r.updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ReservationStatusApproved, domain.ReservationStatusCompleted, now,
	)
	if err != nil {
		return nil, fmt.Errorf("complete due reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
			  WHERE listing_id = $1
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by listing: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListBySchool(ctx context.Context, schoolID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
			  WHERE school_id = $1
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by school: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := row.Scan(
		&res.ID, &res.ListingID, &res.ServiceID, &res.SlotID, &res.SchoolID,
		&res.ParticipantsCount, &res.Status, &res.ContactName, &res.ContactEmail,
		&res.Message, &res.ResponseMessage, &res.CancelReason, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	return &res, nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		rec, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}
