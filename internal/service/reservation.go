package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	"github.com/Miki0195/delavnice-backend/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// ReservationService owns the reservation state machine. Capacity is checked
// twice: a soft check against the ledger at creation, and the authoritative
// check inside the repository's approval transaction. Pending reservations
// never hold capacity.
type ReservationService struct {
	reservationRepo ports.ReservationRepo
	listingRepo     ports.ListingRepo
	ledger          ports.CapacityLedger
	activity        ports.ActivityPublisher
	notifier        ports.ReservationNotifier
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	listingRepo ports.ListingRepo,
	ledger ports.CapacityLedger,
	activity ports.ActivityPublisher,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		listingRepo:     listingRepo,
		ledger:          ledger,
		activity:        activity,
		notifier:        notifier,
		logger:          logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, p domain.Principal, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if p.Role != domain.RoleSchool {
		return nil, &domain.AuthorizationError{ActorID: p.UserID, Action: "create reservations"}
	}
	if err := validateReservationInput(input); err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !listing.IsBookable(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: listing %s is %s", domain.ErrListingNotBookable,
			listing.ID, listing.DerivedStatus(time.Now().UTC()))
	}
	if input.SlotID != nil && listing.FindSlot(*input.SlotID) == nil {
		return nil, domain.ErrSlotNotFound
	}
	if input.ServiceID != nil && listing.FindService(*input.ServiceID) == nil {
		return nil, domain.ErrServiceNotFound
	}

	now := time.Now().UTC()
	res := &domain.Reservation{
		ID:                uuid.New().String(),
		ListingID:         input.ListingID,
		ServiceID:         input.ServiceID,
		SlotID:            input.SlotID,
		SchoolID:          p.UserID,
		ParticipantsCount: input.ParticipantsCount,
		Status:            domain.ReservationStatusPending,
		ContactName:       input.ContactName,
		ContactEmail:      input.ContactEmail,
		Message:           input.Message,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if key, bounded := domain.KeyForReservation(res); bounded {
		decision, err := s.ledger.TryReserve(ctx, key, res.ParticipantsCount)
		if err != nil {
			return nil, fmt.Errorf("soft capacity check: %w", err)
		}
		if !decision.Accepted {
			return nil, &domain.CapacityExceededError{
				Requested: res.ParticipantsCount,
				Remaining: decision.Remaining,
			}
		}
	}

	if err = s.reservationRepo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("listing_id", res.ListingID),
		logger.String("school_id", res.SchoolID),
		logger.Int("participants", res.ParticipantsCount),
	)

	s.publishTransition(ctx, res.ID, "", domain.ReservationStatusPending, p.UserID)
	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), res, listing)

	return res, nil
}

// Approve commits capacity. The authoritative check and the status write
// happen in one transaction inside the repository; on a capacity miss the
// reservation stays pending and the provider decides what to do next.
func (s *ReservationService) Approve(ctx context.Context, p domain.Principal, id string, responseMessage *string) (*domain.Reservation, error) {
	res, listing, err := s.loadForProvider(ctx, p, id, "approve this reservation")
	if err != nil {
		return nil, err
	}

	updated, err := s.reservationRepo.Approve(ctx, res.ID, responseMessage)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation approved",
		logger.String("reservation_id", updated.ID),
		logger.String("actor_id", p.UserID),
	)

	s.publishTransition(ctx, updated.ID, domain.ReservationStatusPending, domain.ReservationStatusApproved, p.UserID)
	go s.notifier.NotifyReservationApproved(context.WithoutCancel(ctx), updated, listing)

	return updated, nil
}

func (s *ReservationService) Reject(ctx context.Context, p domain.Principal, id string, responseMessage *string) (*domain.Reservation, error) {
	res, listing, err := s.loadForProvider(ctx, p, id, "reject this reservation")
	if err != nil {
		return nil, err
	}

	updated, err := s.reservationRepo.Reject(ctx, res.ID, responseMessage)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation rejected",
		logger.String("reservation_id", updated.ID),
		logger.String("actor_id", p.UserID),
	)

	s.publishTransition(ctx, updated.ID, domain.ReservationStatusPending, domain.ReservationStatusRejected, p.UserID)
	go s.notifier.NotifyReservationRejected(context.WithoutCancel(ctx), updated, listing)

	return updated, nil
}

// Cancel is available to the requesting school (or an admin) from pending or
// approved. Cancelling an approved reservation releases its capacity in the
// same commit as the status change.
func (s *ReservationService) Cancel(ctx context.Context, p domain.Principal, id string, reason *string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && !(p.Role == domain.RoleSchool && res.SchoolID == p.UserID) {
		return nil, &domain.AuthorizationError{ActorID: p.UserID, Action: "cancel this reservation"}
	}

	oldStatus := res.Status
	updated, err := s.reservationRepo.Cancel(ctx, res.ID, reason)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", updated.ID),
		logger.String("actor_id", p.UserID),
	)

	s.publishTransition(ctx, updated.ID, oldStatus, domain.ReservationStatusCancelled, p.UserID)

	if listing, lerr := s.listingRepo.GetByID(ctx, updated.ListingID); lerr == nil {
		go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), updated, listing)
	} else {
		s.logger.Error("failed to load listing for cancellation notification",
			logger.String("reservation_id", updated.ID),
			logger.String("listing_id", updated.ListingID),
			logger.String("error", lerr.Error()),
		)
	}

	return updated, nil
}

// CompleteDue is the sweeper entrypoint: approved reservations whose slot or
// event date has passed become completed. Informational only, capacity on a
// past slot no longer matters.
func (s *ReservationService) CompleteDue(ctx context.Context) ([]*domain.Reservation, error) {
	completed, err := s.reservationRepo.CompleteDue(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("complete due: %w", err)
	}

	for _, res := range completed {
		s.publishTransition(ctx, res.ID, domain.ReservationStatusApproved, domain.ReservationStatusCompleted, domain.ActorSystem)
	}

	return completed, nil
}

func (s *ReservationService) ListByListing(ctx context.Context, p domain.Principal, listingID string) ([]*domain.Reservation, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && !(p.Role == domain.RoleProvider && listing.ProviderID == p.UserID) {
		return nil, &domain.AuthorizationError{ActorID: p.UserID, Action: "list reservations for this listing"}
	}

	return s.reservationRepo.ListByListing(ctx, listingID)
}

func (s *ReservationService) ListBySchool(ctx context.Context, p domain.Principal) ([]*domain.Reservation, error) {
	if p.Role != domain.RoleSchool {
		return nil, &domain.AuthorizationError{ActorID: p.UserID, Action: "list school reservations"}
	}
	return s.reservationRepo.ListBySchool(ctx, p.UserID)
}

func (s *ReservationService) loadForProvider(ctx context.Context, p domain.Principal, id, action string) (*domain.Reservation, *domain.Listing, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, res.ListingID)
	if err != nil {
		return nil, nil, fmt.Errorf("get listing: %w", err)
	}
	if !p.IsAdmin() && !(p.Role == domain.RoleProvider && listing.ProviderID == p.UserID) {
		return nil, nil, &domain.AuthorizationError{ActorID: p.UserID, Action: action}
	}

	return res, listing, nil
}

func (s *ReservationService) publishTransition(ctx context.Context, id string, from, to domain.ReservationStatus, actorID string) {
	e := domain.TransitionEvent{
		Resource:   domain.ResourceReservation,
		ResourceID: id,
		OldState:   string(from),
		NewState:   string(to),
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.activity.PublishTransition(ctx, e); err != nil {
		s.logger.Error("failed to publish transition event",
			logger.String("resource_id", id),
			logger.String("new_state", e.NewState),
			logger.String("error", err.Error()),
		)
	}
}

func validateReservationInput(input domain.CreateReservationInput) error {
	v := domain.NewValidationError()
	if input.ListingID == "" {
		v.Add("listing_id", "is required")
	}
	if input.ParticipantsCount < 1 {
		v.Add("participants_count", "must be at least 1")
	}
	if input.ContactName == "" {
		v.Add("contact_name", "is required")
	}
	if input.ContactEmail == "" {
		v.Add("contact_email", "is required")
	}
	return v.Err()
}
