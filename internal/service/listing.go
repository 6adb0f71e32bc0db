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

// ListingService owns the moderation lifecycle: draft -> pending_review ->
// published/denied, with edit and renewal producing copy-on-write forks that
// only replace the live version once an administrator approves them.
type ListingService struct {
	repo     ports.ListingRepo
	activity ports.ActivityPublisher
	logger   logger.Logger
}

func NewListingService(repo ports.ListingRepo, activity ports.ActivityPublisher, logger logger.Logger) *ListingService {
	return &ListingService{
		repo:     repo,
		activity: activity,
		logger:   logger,
	}
}

func (s *ListingService) CreateDraft(ctx context.Context, p domain.Principal, input domain.CreateListingInput) (*domain.Listing, error) {
	if p.Role != domain.RoleProvider {
		return nil, &domain.AuthorizationError{ActorID: p.UserID, Action: "create a listing"}
	}
	if input.Kind != domain.ListingKindService && input.Kind != domain.ListingKindEvent {
		v := domain.NewValidationError()
		v.Add("kind", "must be SERVICE or EVENT")
		return nil, v.Err()
	}

	l := buildListing(p.UserID, input)
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}

	s.logger.Info("listing draft created",
		logger.String("listing_id", l.ID),
		logger.String("provider_id", p.UserID),
		logger.String("kind", string(l.Kind)),
	)

	return l, nil
}

func (s *ListingService) Submit(ctx context.Context, p domain.Principal, listingID string) (*domain.Listing, error) {
	l, err := s.repo.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if err = s.authorizeOwner(p, l, "submit this listing"); err != nil {
		return nil, err
	}
	if err = l.ValidateForSubmit(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = s.repo.UpdateStatus(ctx, l.ID, domain.ListingStatusDraft, domain.ListingStatusPendingReview); err != nil {
		return nil, err
	}
	l.Status = domain.ListingStatusPendingReview

	s.publishTransition(ctx, domain.ResourceListing, l.ID,
		domain.ListingStatusDraft, domain.ListingStatusPendingReview, p.UserID)

	return l, nil
}

// EditLive forks a published listing. The live record is never touched: the
// fork enters review as a separate row pointing back via previous_version_id
// and replaces the live one only on approval.
func (s *ListingService) EditLive(ctx context.Context, p domain.Principal, liveID string, changes domain.ListingChanges) (*domain.Listing, error) {
	live, err := s.repo.GetByID(ctx, liveID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if err = s.authorizeOwner(p, live, "edit this listing"); err != nil {
		return nil, err
	}
	if live.Status != domain.ListingStatusPublished {
		return nil, &domain.InvalidTransitionError{
			Resource:   domain.ResourceListing,
			ResourceID: live.ID,
			Current:    string(live.Status),
			Attempted:  string(domain.ListingStatusPendingReview),
		}
	}

	fork, err := forkListing(live, changes)
	if err != nil {
		return nil, err
	}
	fork.IsEdited = true
	if err = fork.ValidateForSubmit(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = s.repo.Create(ctx, fork); err != nil {
		return nil, fmt.Errorf("create edit fork: %w", err)
	}

	s.logger.Info("edit fork created",
		logger.String("listing_id", fork.ID),
		logger.String("previous_version_id", live.ID),
	)
	s.publishTransition(ctx, domain.ResourceListing, fork.ID,
		domain.ListingStatusDraft, domain.ListingStatusPendingReview, p.UserID)

	return fork, nil
}

func (s *ListingService) Renew(ctx context.Context, p domain.Principal, expiredID string, newEndDate time.Time) (*domain.Listing, error) {
	expired, err := s.repo.GetByID(ctx, expiredID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if err = s.authorizeOwner(p, expired, "renew this listing"); err != nil {
		return nil, err
	}
	if newEndDate.Before(time.Now().UTC()) {
		v := domain.NewValidationError()
		v.Add("event_date_end", "must be in the future")
		return nil, v.Err()
	}
	if expired.DerivedStatus(time.Now().UTC()) != domain.ListingStatusExpired {
		return nil, &domain.InvalidTransitionError{
			Resource:   domain.ResourceListing,
			ResourceID: expired.ID,
			Current:    string(expired.Status),
			Attempted:  string(domain.ListingStatusPendingReview),
		}
	}

	fork, err := forkListing(expired, domain.ListingChanges{EventDateEnd: &newEndDate})
	if err != nil {
		return nil, err
	}
	fork.IsRenewal = true

	if err = s.repo.Create(ctx, fork); err != nil {
		return nil, fmt.Errorf("create renewal fork: %w", err)
	}

	s.logger.Info("renewal fork created",
		logger.String("listing_id", fork.ID),
		logger.String("previous_version_id", expired.ID),
	)
	s.publishTransition(ctx, domain.ResourceListing, fork.ID,
		domain.ListingStatusExpired, domain.ListingStatusPendingReview, p.UserID)

	return fork, nil
}

// Approve promotes a pending listing. For forks the previous version is
// archived and the fork published in one commit inside the repository; a
// half-applied promotion is never visible.
func (s *ListingService) Approve(ctx context.Context, p domain.Principal, pendingID string) (*domain.Listing, error) {
	if !p.IsAdmin() {
		return nil, &domain.AuthorizationError{ActorID: p.UserID, Action: "approve listings"}
	}

	promoted, err := s.repo.Promote(ctx, pendingID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("listing published",
		logger.String("listing_id", promoted.ID),
		logger.String("admin_id", p.UserID),
	)

	if promoted.PreviousVersionID != nil {
		s.publishTransition(ctx, domain.ResourceListing, *promoted.PreviousVersionID,
			domain.ListingStatusPublished, domain.ListingStatusArchived, p.UserID)
	}
	s.publishTransition(ctx, domain.ResourceListing, promoted.ID,
		domain.ListingStatusPendingReview, domain.ListingStatusPublished, p.UserID)

	return promoted, nil
}

// Deny rejects a pending listing. A previous published version, if any, is
// left serving unchanged; the provider may resubmit, which creates yet
// another revision.
func (s *ListingService) Deny(ctx context.Context, p domain.Principal, pendingID, reason string) error {
	if !p.IsAdmin() {
		return &domain.AuthorizationError{ActorID: p.UserID, Action: "deny listings"}
	}

	if err := s.repo.Deny(ctx, pendingID, reason); err != nil {
		return err
	}

	s.logger.Info("listing denied",
		logger.String("listing_id", pendingID),
		logger.String("admin_id", p.UserID),
	)
	s.publishTransition(ctx, domain.ResourceListing, pendingID,
		domain.ListingStatusPendingReview, domain.ListingStatusDenied, p.UserID)

	return nil
}

// ExpireDue is the sweeper entrypoint. The repository update is a single
// idempotent statement, so racing an admin promotion can only result in one
// of the two transitions being applied.
func (s *ListingService) ExpireDue(ctx context.Context) ([]*domain.Listing, error) {
	expired, err := s.repo.ExpireDue(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("expire due: %w", err)
	}

	for _, l := range expired {
		s.publishTransition(ctx, domain.ResourceListing, l.ID,
			domain.ListingStatusPublished, domain.ListingStatusExpired, domain.ActorSystem)
	}

	return expired, nil
}

// GetPublic returns a listing as consumers see it: published versions only,
// with the end-date boundary folded into the status on read.
func (s *ListingService) GetPublic(ctx context.Context, id string) (*domain.Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch l.Status {
	case domain.ListingStatusPublished, domain.ListingStatusExpired:
		l.Status = l.DerivedStatus(time.Now().UTC())
		return l, nil
	default:
		return nil, domain.ErrListingNotFound
	}
}

func (s *ListingService) ListActive(ctx context.Context) ([]*domain.Listing, error) {
	return s.repo.ListActive(ctx, time.Now().UTC())
}

func (s *ListingService) ListPendingReview(ctx context.Context, p domain.Principal) ([]*domain.Listing, error) {
	if !p.IsAdmin() {
		return nil, &domain.AuthorizationError{ActorID: p.UserID, Action: "list pending listings"}
	}
	return s.repo.ListPendingReview(ctx)
}

func (s *ListingService) ListByProvider(ctx context.Context, p domain.Principal) ([]*domain.Listing, error) {
	if p.Role != domain.RoleProvider {
		return nil, &domain.AuthorizationError{ActorID: p.UserID, Action: "list provider listings"}
	}
	return s.repo.ListByProvider(ctx, p.UserID)
}

func (s *ListingService) authorizeOwner(p domain.Principal, l *domain.Listing, action string) error {
	if p.IsAdmin() {
		return nil
	}
	if p.Role == domain.RoleProvider && l.ProviderID == p.UserID {
		return nil
	}
	return &domain.AuthorizationError{ActorID: p.UserID, Action: action}
}

func (s *ListingService) publishTransition(ctx context.Context, resource, id string, from, to domain.ListingStatus, actorID string) {
	e := domain.TransitionEvent{
		Resource:   resource,
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

func buildListing(providerID string, input domain.CreateListingInput) *domain.Listing {
	now := time.Now().UTC()
	l := &domain.Listing{
		ID:             uuid.New().String(),
		ProviderID:     providerID,
		Kind:           input.Kind,
		Status:         domain.ListingStatusDraft,
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		Region:         input.Region,
		TargetGroup:    input.TargetGroup,
		EventDateStart: input.EventDateStart,
		EventDateEnd:   input.EventDateEnd,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	attachChildren(l, input.Services, input.Slots)
	return l
}

// forkListing copies a listing into a fresh pending_review revision. Child
// services and slots get new ids: the fork must not share bookable resources
// with the live version. Slots referencing a service resolve against the
// fork's copy of that service; a reference that resolves against nothing is
// a validation error.
func forkListing(base *domain.Listing, changes domain.ListingChanges) (*domain.Listing, error) {
	now := time.Now().UTC()
	fork := &domain.Listing{
		ID:                uuid.New().String(),
		ProviderID:        base.ProviderID,
		Kind:              base.Kind,
		Status:            domain.ListingStatusPendingReview,
		Title:             base.Title,
		Description:       base.Description,
		Category:          base.Category,
		Region:            base.Region,
		TargetGroup:       base.TargetGroup,
		PreviousVersionID: &base.ID,
		EventDateStart:    base.EventDateStart,
		EventDateEnd:      base.EventDateEnd,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if changes.Title != nil {
		fork.Title = *changes.Title
	}
	if changes.Description != nil {
		fork.Description = *changes.Description
	}
	if changes.Category != nil {
		fork.Category = *changes.Category
	}
	if changes.Region != nil {
		fork.Region = *changes.Region
	}
	if changes.TargetGroup != nil {
		fork.TargetGroup = *changes.TargetGroup
	}
	if changes.EventDateStart != nil {
		fork.EventDateStart = changes.EventDateStart
	}
	if changes.EventDateEnd != nil {
		fork.EventDateEnd = changes.EventDateEnd
	}

	// serviceIDs maps base service ids to their copies on the fork, so slot
	// bindings survive the id change.
	serviceIDs := make(map[string]string, len(base.Services))

	if changes.Services != nil {
		attachChildren(fork, changes.Services, nil)
	} else {
		for _, svc := range base.Services {
			copied := domain.Service{
				ID:              uuid.New().String(),
				ListingID:       fork.ID,
				Title:           svc.Title,
				PriceCents:      svc.PriceCents,
				DurationMinutes: svc.DurationMinutes,
				Capacity:        svc.Capacity,
			}
			serviceIDs[svc.ID] = copied.ID
			fork.Services = append(fork.Services, copied)
		}
	}

	slots := changes.Slots
	if slots == nil {
		slots = make([]domain.SlotInput, 0, len(base.Slots))
		for _, s := range base.Slots {
			slots = append(slots, domain.SlotInput{
				ServiceID: s.ServiceID,
				StartAt:   s.StartAt,
				EndAt:     s.EndAt,
				Capacity:  s.Capacity,
			})
		}
	}

	v := domain.NewValidationError()
	for i, in := range slots {
		serviceID := in.ServiceID
		if serviceID != nil {
			mapped, ok := serviceIDs[*serviceID]
			if !ok {
				v.Add(fmt.Sprintf("slots[%d].service_id", i), "does not match any service on the listing")
				continue
			}
			serviceID = &mapped
		}
		fork.Slots = append(fork.Slots, domain.Slot{
			ID:        uuid.New().String(),
			ListingID: fork.ID,
			ServiceID: serviceID,
			StartAt:   in.StartAt,
			EndAt:     in.EndAt,
			Capacity:  in.Capacity,
		})
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return fork, nil
}

func attachChildren(l *domain.Listing, services []domain.ServiceInput, slots []domain.SlotInput) {
	for _, in := range services {
		l.Services = append(l.Services, domain.Service{
			ID:              uuid.New().String(),
			ListingID:       l.ID,
			Title:           in.Title,
			PriceCents:      in.PriceCents,
			DurationMinutes: in.DurationMinutes,
			Capacity:        in.Capacity,
		})
	}
	for _, in := range slots {
		l.Slots = append(l.Slots, domain.Slot{
			ID:        uuid.New().String(),
			ListingID: l.ID,
			ServiceID: in.ServiceID,
			StartAt:   in.StartAt,
			EndAt:     in.EndAt,
			Capacity:  in.Capacity,
		})
	}
}
