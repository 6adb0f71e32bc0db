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

const listingColumns = `id, provider_id, kind, status, title, description,
	category, region, target_group, is_edited, is_renewal,
	previous_version_id, event_date_start, event_date_end, denial_reason,
	created_at, updated_at`

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the listing together with its services and slots. Forks
// produced by edit or renewal go through here too; they are full rows of
// their own, linked to the live version only via previous_version_id.
func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO listings (` + listingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = tx.ExecContext(
		ctx, query,
		l.ID, l.ProviderID, l.Kind, l.Status, l.Title, l.Description,
		l.Category, l.Region, l.TargetGroup, l.IsEdited, l.IsRenewal,
		l.PreviousVersionID, l.EventDateStart, l.EventDateEnd, l.DenialReason,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	for _, s := range l.Services {
		serviceQuery := `INSERT INTO services (id, listing_id, title, price_cents, duration_minutes, capacity)
						 VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err = tx.ExecContext(
			ctx, serviceQuery,
			s.ID, s.ListingID, s.Title, s.PriceCents, s.DurationMinutes, s.Capacity,
		); err != nil {
			return fmt.Errorf("insert service: %w", err)
		}
	}

	for _, s := range l.Slots {
		slotQuery := `INSERT INTO slots (id, listing_id, service_id, start_at, end_at, capacity)
					  VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err = tx.ExecContext(
			ctx, slotQuery,
			s.ID, s.ListingID, s.ServiceID, s.StartAt, s.EndAt, s.Capacity,
		); err != nil {
			return fmt.Errorf("insert slot: %w", err)
		}
	}

	return tx.Commit()
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}

	if err = r.loadChildren(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (r *ListingRepository) loadChildren(ctx context.Context, l *domain.Listing) error {
	serviceQuery := `SELECT id, listing_id, title, price_cents, duration_minutes, capacity
					 FROM services WHERE listing_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, serviceQuery, l.ID)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.Service
		if err = rows.Scan(&s.ID, &s.ListingID, &s.Title, &s.PriceCents, &s.DurationMinutes, &s.Capacity); err != nil {
			return fmt.Errorf("scan service: %w", err)
		}
		l.Services = append(l.Services, s)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	slotQuery := `SELECT id, listing_id, service_id, start_at, end_at, capacity
				  FROM slots WHERE listing_id = $1 ORDER BY start_at`
	slotRows, err := r.db.QueryWithRetry(ctx, r.strategy, slotQuery, l.ID)
	if err != nil {
		return fmt.Errorf("list slots: %w", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var s domain.Slot
		if err = slotRows.Scan(&s.ID, &s.ListingID, &s.ServiceID, &s.StartAt, &s.EndAt, &s.Capacity); err != nil {
			return fmt.Errorf("scan slot: %w", err)
		}
		l.Slots = append(l.Slots, s)
	}
	return slotRows.Err()
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ListingStatus) error {
	query := `UPDATE listings SET status = $3, updated_at = NOW()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.Master.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update listing status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if rows == 0 {
		return r.resolveStatusMiss(ctx, r.db.Master, id, to)
	}

	return nil
}

// Promote archives the previous version (when the pending listing is an
// edit or renewal fork) and publishes the fork in one transaction. The
// previous row is locked first so a concurrent sweep of the same listing
// serializes against the promotion instead of double-applying.
func (r *ListingRepository) Promote(ctx context.Context, pendingID string) (*domain.Listing, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var prevID *string
	var status domain.ListingStatus
	query := `SELECT previous_version_id, status FROM listings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, query, pendingID).Scan(&prevID, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("get pending listing: %w", err)
	}
	if status != domain.ListingStatusPendingReview {
		return nil, &domain.InvalidTransitionError{
			Resource:   domain.ResourceListing,
			ResourceID: pendingID,
			Current:    string(status),
			Attempted:  string(domain.ListingStatusPublished),
		}
	}

	if prevID != nil {
		archiveQuery := `UPDATE listings SET status = $2, updated_at = NOW()
						 WHERE id = $1 AND status = ANY($3)`
		res, err := tx.ExecContext(
			ctx, archiveQuery, *prevID, domain.ListingStatusArchived,
			pq.Array([]domain.ListingStatus{domain.ListingStatusPublished, domain.ListingStatusExpired}),
		)
		if err != nil {
			return nil, fmt.Errorf("archive previous version: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("archive rows affected: %w", err)
		}
		if rows == 0 {
			// Previous version already archived by an earlier promotion of
			// a sibling fork. The caller must retry against current state.
			return nil, fmt.Errorf("%w: previous version %s already superseded", domain.ErrConflict, *prevID)
		}
	}

	publishQuery := `UPDATE listings SET status = $2, updated_at = NOW()
					 WHERE id = $1 AND status = $3`
	if _, err = tx.ExecContext(
		ctx, publishQuery, pendingID,
		domain.ListingStatusPublished, domain.ListingStatusPendingReview,
	); err != nil {
		return nil, fmt.Errorf("publish listing: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit promote: %w", err)
	}

	return r.GetByID(ctx, pendingID)
}

func (r *ListingRepository) Deny(ctx context.Context, id, reason string) error {
	query := `UPDATE listings SET status = $3, denial_reason = NULLIF($4, ''), updated_at = NOW()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.Master.ExecContext(
		ctx, query, id,
		domain.ListingStatusPendingReview, domain.ListingStatusDenied, reason,
	)
	if err != nil {
		return fmt.Errorf("deny listing: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if rows == 0 {
		return r.resolveStatusMiss(ctx, r.db.Master, id, domain.ListingStatusDenied)
	}

	return nil
}

func (r *ListingRepository) resolveStatusMiss(ctx context.Context, q querier, id string, attempted domain.ListingStatus) error {
	var current domain.ListingStatus
	query := `SELECT status FROM listings WHERE id = $1`
	if err := q.QueryRowContext(ctx, query, id).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("check listing status: %w", err)
	}

	return &domain.InvalidTransitionError{
		Resource:   domain.ResourceListing,
		ResourceID: id,
		Current:    string(current),
		Attempted:  string(attempted),
	}
}

func (r *ListingRepository) ExpireDue(ctx context.Context, now time.Time) ([]*domain.Listing, error) {
	query := `UPDATE listings SET status = $2, updated_at = NOW()
			  WHERE status = $1 AND event_date_end IS NOT NULL AND event_date_end < $3
			  RETURNING ` + listingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ListingStatusPublished, domain.ListingStatusExpired, now,
	)
	if err != nil {
		return nil, fmt.Errorf("expire due listings: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *ListingRepository) ListActive(ctx context.Context, now time.Time) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings
			  WHERE status = $1 AND (event_date_end IS NULL OR event_date_end >= $2)
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.ListingStatusPublished, now)
	if err != nil {
		return nil, fmt.Errorf("list active listings: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *ListingRepository) ListPendingReview(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings
			  WHERE status = $1
			  ORDER BY created_at ASC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.ListingStatusPendingReview)
	if err != nil {
		return nil, fmt.Errorf("list pending listings: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *ListingRepository) ListByProvider(ctx context.Context, providerID string) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings
			  WHERE provider_id = $1
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("list provider listings: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	var l domain.Listing
	if err := row.Scan(
		&l.ID, &l.ProviderID, &l.Kind, &l.Status, &l.Title, &l.Description,
		&l.Category, &l.Region, &l.TargetGroup, &l.IsEdited, &l.IsRenewal,
		&l.PreviousVersionID, &l.EventDateStart, &l.EventDateEnd, &l.DenialReason,
		&l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}
	return &l, nil
}

func collectListings(rows *sql.Rows) ([]*domain.Listing, error) {
	var res []*domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	return res, rows.Err()
}
