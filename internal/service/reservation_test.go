package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	"github.com/Miki0195/delavnice-backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reservationFixture struct {
	reservationRepo *mocks.MockReservationRepo
	listingRepo     *mocks.MockListingRepo
	ledger          *mocks.MockCapacityLedger
	activity        *mocks.MockActivityPublisher
	notifier        *mocks.MockReservationNotifier
	svc             *ReservationService
}

func newReservationService(t *testing.T) reservationFixture {
	t.Helper()
	f := reservationFixture{
		reservationRepo: mocks.NewMockReservationRepo(t),
		listingRepo:     mocks.NewMockListingRepo(t),
		ledger:          mocks.NewMockCapacityLedger(t),
		activity:        mocks.NewMockActivityPublisher(t),
		notifier:        mocks.NewMockReservationNotifier(t),
	}
	f.svc = NewReservationService(f.reservationRepo, f.listingRepo, f.ledger, f.activity, f.notifier, newTestLogger(t))
	return f
}

func bookableListing(providerID string) *domain.Listing {
	l := validServiceListing(providerID)
	l.Status = domain.ListingStatusPublished
	return l
}

func validReservationInput() domain.CreateReservationInput {
	serviceID := "s1"
	return domain.CreateReservationInput{
		ListingID:         "l1",
		ServiceID:         &serviceID,
		ParticipantsCount: 5,
		ContactName:       "Jana Novak",
		ContactEmail:      "jana@school.si",
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	f := newReservationService(t)

	listing := bookableListing("p1")
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	f.ledger.EXPECT().TryReserve(mock.Anything, domain.ServiceKey("s1"), 5).
		Return(domain.CapacityDecision{Accepted: true, Remaining: 5}, nil)
	f.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.activity.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything, listing).Return()

	res, err := f.svc.Create(context.Background(), school, validReservationInput())

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, res.Status)
	assert.Equal(t, "sch1", res.SchoolID)
	assert.Equal(t, 5, res.ParticipantsCount)
	assert.NotEmpty(t, res.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_ProviderForbidden(t *testing.T) {
	f := newReservationService(t)

	_, err := f.svc.Create(context.Background(), provider, validReservationInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Create_InvalidInput(t *testing.T) {
	f := newReservationService(t)

	input := validReservationInput()
	input.ParticipantsCount = 0
	input.ContactEmail = ""

	_, err := f.svc.Create(context.Background(), school, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "participants_count")
	assert.Contains(t, verr.Fields, "contact_email")
}

func TestReservationService_Create_ListingNotBookable(t *testing.T) {
	f := newReservationService(t)

	listing := validServiceListing("p1") // still a draft
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)

	_, err := f.svc.Create(context.Background(), school, validReservationInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrListingNotBookable)
}

func TestReservationService_Create_ExpiredListingNotBookable(t *testing.T) {
	f := newReservationService(t)

	past := time.Now().UTC().Add(-time.Hour)
	listing := bookableListing("p1")
	listing.EventDateEnd = &past
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)

	_, err := f.svc.Create(context.Background(), school, validReservationInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrListingNotBookable)
}

func TestReservationService_Create_UnknownService(t *testing.T) {
	f := newReservationService(t)

	listing := bookableListing("p1")
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)

	input := validReservationInput()
	other := "not-on-this-listing"
	input.ServiceID = &other

	_, err := f.svc.Create(context.Background(), school, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestReservationService_Create_SoftCheckRejects(t *testing.T) {
	f := newReservationService(t)

	listing := bookableListing("p1")
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	f.ledger.EXPECT().TryReserve(mock.Anything, domain.ServiceKey("s1"), 5).
		Return(domain.CapacityDecision{Accepted: false, Remaining: 2}, nil)

	_, err := f.svc.Create(context.Background(), school, validReservationInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	var cerr *domain.CapacityExceededError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 5, cerr.Requested)
	assert.Equal(t, 2, cerr.Remaining)
}

func TestReservationService_Create_UnboundedSkipsLedger(t *testing.T) {
	f := newReservationService(t)

	listing := bookableListing("p1")
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	f.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.activity.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything, listing).Return()

	input := validReservationInput()
	input.ServiceID = nil // listing-level request, no capacity bound

	res, err := f.svc.Create(context.Background(), school, input)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, res.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Approve_Success(t *testing.T) {
	f := newReservationService(t)

	serviceID := "s1"
	pending := &domain.Reservation{
		ID: "r1", ListingID: "l1", ServiceID: &serviceID,
		SchoolID: "sch1", ParticipantsCount: 5,
		Status: domain.ReservationStatusPending,
	}
	listing := bookableListing("p1")
	approved := *pending
	approved.Status = domain.ReservationStatusApproved

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	f.reservationRepo.EXPECT().Approve(mock.Anything, "r1", (*string)(nil)).Return(&approved, nil)
	f.activity.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyReservationApproved(mock.Anything, &approved, listing).Return()

	out, err := f.svc.Approve(context.Background(), provider, "r1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusApproved, out.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Approve_CapacityExceededStaysPending(t *testing.T) {
	f := newReservationService(t)

	serviceID := "s1"
	pending := &domain.Reservation{
		ID: "r1", ListingID: "l1", ServiceID: &serviceID,
		SchoolID: "sch1", ParticipantsCount: 6,
		Status: domain.ReservationStatusPending,
	}
	listing := bookableListing("p1")

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	f.reservationRepo.EXPECT().Approve(mock.Anything, "r1", (*string)(nil)).
		Return(nil, &domain.CapacityExceededError{Requested: 6, Remaining: 4})

	_, err := f.svc.Approve(context.Background(), provider, "r1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestReservationService_Approve_NotListingOwner(t *testing.T) {
	f := newReservationService(t)

	pending := &domain.Reservation{ID: "r1", ListingID: "l1", SchoolID: "sch1", Status: domain.ReservationStatusPending}
	listing := bookableListing("another-provider")

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)

	_, err := f.svc.Approve(context.Background(), provider, "r1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Reject_Success(t *testing.T) {
	f := newReservationService(t)

	pending := &domain.Reservation{ID: "r1", ListingID: "l1", SchoolID: "sch1", Status: domain.ReservationStatusPending}
	listing := bookableListing("p1")
	rejected := *pending
	rejected.Status = domain.ReservationStatusRejected
	msg := "fully booked that week"

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	f.reservationRepo.EXPECT().Reject(mock.Anything, "r1", &msg).Return(&rejected, nil)
	f.activity.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyReservationRejected(mock.Anything, &rejected, listing).Return()

	out, err := f.svc.Reject(context.Background(), provider, "r1", &msg)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusRejected, out.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_BySchool(t *testing.T) {
	f := newReservationService(t)

	approved := &domain.Reservation{ID: "r1", ListingID: "l1", SchoolID: "sch1", Status: domain.ReservationStatusApproved}
	listing := bookableListing("p1")
	cancelled := *approved
	cancelled.Status = domain.ReservationStatusCancelled

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(approved, nil)
	f.reservationRepo.EXPECT().Cancel(mock.Anything, "r1", (*string)(nil)).Return(&cancelled, nil)
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	f.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, &cancelled, listing).Return()

	var event domain.TransitionEvent
	f.activity.EXPECT().PublishTransition(mock.Anything, mock.Anything).Run(func(ctx context.Context, e domain.TransitionEvent) {
		event = e
	}).Return(nil)

	out, err := f.svc.Cancel(context.Background(), school, "r1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, out.Status)
	assert.Equal(t, string(domain.ReservationStatusApproved), event.OldState)
	assert.Equal(t, string(domain.ReservationStatusCancelled), event.NewState)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NotificationLookupFails(t *testing.T) {
	f := newReservationService(t)

	approved := &domain.Reservation{ID: "r1", ListingID: "l1", SchoolID: "sch1", Status: domain.ReservationStatusApproved}
	cancelled := *approved
	cancelled.Status = domain.ReservationStatusCancelled

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(approved, nil)
	f.reservationRepo.EXPECT().Cancel(mock.Anything, "r1", (*string)(nil)).Return(&cancelled, nil)
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(nil, errors.New("db down"))
	f.activity.EXPECT().PublishTransition(mock.Anything, mock.Anything).Return(nil)

	// the cancellation itself still succeeds; only the notification is skipped
	out, err := f.svc.Cancel(context.Background(), school, "r1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, out.Status)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, f.notifier.Calls)
}

func TestReservationService_Cancel_OtherSchoolForbidden(t *testing.T) {
	f := newReservationService(t)

	res := &domain.Reservation{ID: "r1", ListingID: "l1", SchoolID: "someone-else", Status: domain.ReservationStatusPending}
	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)

	_, err := f.svc.Cancel(context.Background(), school, "r1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Cancel_Completed(t *testing.T) {
	f := newReservationService(t)

	res := &domain.Reservation{ID: "r1", ListingID: "l1", SchoolID: "sch1", Status: domain.ReservationStatusCompleted}
	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.reservationRepo.EXPECT().Cancel(mock.Anything, "r1", (*string)(nil)).
		Return(nil, &domain.InvalidTransitionError{
			Resource:   domain.ResourceReservation,
			ResourceID: "r1",
			Current:    string(domain.ReservationStatusCompleted),
			Attempted:  string(domain.ReservationStatusCancelled),
		})

	_, err := f.svc.Cancel(context.Background(), school, "r1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_CompleteDue_PublishesSystemEvents(t *testing.T) {
	f := newReservationService(t)

	completed := []*domain.Reservation{
		{ID: "r1", Status: domain.ReservationStatusCompleted},
		{ID: "r2", Status: domain.ReservationStatusCompleted},
	}
	f.reservationRepo.EXPECT().CompleteDue(mock.Anything, mock.Anything).Return(completed, nil)

	var events []domain.TransitionEvent
	f.activity.EXPECT().PublishTransition(mock.Anything, mock.Anything).Run(func(ctx context.Context, e domain.TransitionEvent) {
		events = append(events, e)
	}).Return(nil)

	out, err := f.svc.CompleteDue(context.Background())

	require.NoError(t, err)
	assert.Len(t, out, 2)
	require.Len(t, events, 2)
	assert.Equal(t, domain.ActorSystem, events[0].ActorID)
}

func TestReservationService_ListByListing_OwnerOnly(t *testing.T) {
	f := newReservationService(t)

	listing := bookableListing("another-provider")
	f.listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)

	_, err := f.svc.ListByListing(context.Background(), provider, "l1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_ListBySchool_Success(t *testing.T) {
	f := newReservationService(t)

	reservations := []*domain.Reservation{{ID: "r1", SchoolID: "sch1"}}
	f.reservationRepo.EXPECT().ListBySchool(mock.Anything, "sch1").Return(reservations, nil)

	out, err := f.svc.ListBySchool(context.Background(), school)

	require.NoError(t, err)
	assert.Len(t, out, 1)
}
