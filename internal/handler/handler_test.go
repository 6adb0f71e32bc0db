package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	"github.com/Miki0195/delavnice-backend/internal/handler/dto"
	hmocks "github.com/Miki0195/delavnice-backend/internal/handler/mocks"
	"github.com/Miki0195/delavnice-backend/internal/middleware"
	"github.com/Miki0195/delavnice-backend/internal/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, p domain.Principal) (*hmocks.MockListingSvc, *hmocks.MockReservationSvc, http.Handler) {
	t.Helper()
	listingSvc := hmocks.NewMockListingSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)

	h := NewHandler(listingSvc, reservationSvc)
	r := router.InitRouter("test", h, middleware.SetPrincipal(p))

	return listingSvc, reservationSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

var (
	providerPrincipal = domain.Principal{UserID: uuid.New().String(), Role: domain.RoleProvider}
	adminPrincipal    = domain.Principal{UserID: uuid.New().String(), Role: domain.RoleAdmin}
	schoolPrincipal   = domain.Principal{UserID: uuid.New().String(), Role: domain.RoleSchool}
)

// --- Listings ---

func TestHandler_CreateListing_Success(t *testing.T) {
	listingSvc, _, r := setupRouter(t, providerPrincipal)

	listing := &domain.Listing{
		ID:         uuid.New().String(),
		ProviderID: providerPrincipal.UserID,
		Kind:       domain.ListingKindService,
		Status:     domain.ListingStatusDraft,
		Title:      "Robotics workshop",
		CreatedAt:  time.Now(),
	}
	listingSvc.EXPECT().CreateDraft(mock.Anything, providerPrincipal, mock.Anything).Return(listing, nil)

	w := doJSON(t, r, http.MethodPost, "/api/listings", dto.CreateListingRequest{
		Kind:  "SERVICE",
		Title: "Robotics workshop",
		Services: []dto.ServiceRequest{
			{Title: "Intro session", PriceCents: 5000, DurationMinutes: 90},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Robotics workshop", resp.Title)
	assert.Equal(t, "draft", resp.Status)
}

func TestHandler_CreateListing_BadKind(t *testing.T) {
	_, _, r := setupRouter(t, providerPrincipal)

	w := doJSON(t, r, http.MethodPost, "/api/listings", map[string]any{
		"kind":  "WEBINAR",
		"title": "X",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateListing_SchoolForbidden(t *testing.T) {
	_, _, r := setupRouter(t, schoolPrincipal)

	w := doJSON(t, r, http.MethodPost, "/api/listings", dto.CreateListingRequest{Kind: "SERVICE"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_SubmitListing_Success(t *testing.T) {
	listingSvc, _, r := setupRouter(t, providerPrincipal)

	id := uuid.New().String()
	listing := &domain.Listing{ID: id, Status: domain.ListingStatusPendingReview, CreatedAt: time.Now()}
	listingSvc.EXPECT().Submit(mock.Anything, providerPrincipal, id).Return(listing, nil)

	w := doJSON(t, r, http.MethodPost, "/api/listings/"+id+"/submit", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending_review", resp.Status)
}

func TestHandler_SubmitListing_ValidationFields(t *testing.T) {
	listingSvc, _, r := setupRouter(t, providerPrincipal)

	id := uuid.New().String()
	v := domain.NewValidationError()
	v.Add("category", "is required")
	listingSvc.EXPECT().Submit(mock.Anything, providerPrincipal, id).Return(nil, v.Err())

	w := doJSON(t, r, http.MethodPost, "/api/listings/"+id+"/submit", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "category")
}

func TestHandler_SubmitListing_InvalidTransition(t *testing.T) {
	listingSvc, _, r := setupRouter(t, providerPrincipal)

	id := uuid.New().String()
	listingSvc.EXPECT().Submit(mock.Anything, providerPrincipal, id).Return(nil, &domain.InvalidTransitionError{
		Resource:   domain.ResourceListing,
		ResourceID: id,
		Current:    "published",
		Attempted:  "pending_review",
	})

	w := doJSON(t, r, http.MethodPost, "/api/listings/"+id+"/submit", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SubmitListing_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t, providerPrincipal)

	w := doJSON(t, r, http.MethodPost, "/api/listings/not-a-uuid/submit", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_EditListing_Success(t *testing.T) {
	listingSvc, _, r := setupRouter(t, providerPrincipal)

	id := uuid.New().String()
	fork := &domain.Listing{
		ID:                uuid.New().String(),
		Status:            domain.ListingStatusPendingReview,
		IsEdited:          true,
		PreviousVersionID: &id,
		CreatedAt:         time.Now(),
	}
	listingSvc.EXPECT().EditLive(mock.Anything, providerPrincipal, id, mock.Anything).Return(fork, nil)

	title := "New title"
	w := doJSON(t, r, http.MethodPost, "/api/listings/"+id+"/edit", dto.EditListingRequest{Title: &title})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsEdited)
	require.NotNil(t, resp.PreviousVersionID)
	assert.Equal(t, id, *resp.PreviousVersionID)
}

func TestHandler_RenewListing_BadDate(t *testing.T) {
	_, _, r := setupRouter(t, providerPrincipal)

	id := uuid.New().String()
	w := doJSON(t, r, http.MethodPost, "/api/listings/"+id+"/renew", dto.RenewListingRequest{
		EventDateEnd: "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveListing_RoleGate(t *testing.T) {
	_, _, r := setupRouter(t, providerPrincipal)

	id := uuid.New().String()
	w := doJSON(t, r, http.MethodPost, "/api/admin/listings/"+id+"/approve", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ApproveListing_Conflict(t *testing.T) {
	listingSvc, _, r := setupRouter(t, adminPrincipal)

	id := uuid.New().String()
	listingSvc.EXPECT().Approve(mock.Anything, adminPrincipal, id).Return(nil, domain.ErrConflict)

	w := doJSON(t, r, http.MethodPost, "/api/admin/listings/"+id+"/approve", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DenyListing_Success(t *testing.T) {
	listingSvc, _, r := setupRouter(t, adminPrincipal)

	id := uuid.New().String()
	listingSvc.EXPECT().Deny(mock.Anything, adminPrincipal, id, "incomplete").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/admin/listings/"+id+"/deny", dto.DenyListingRequest{Reason: "incomplete"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetListing_Success(t *testing.T) {
	listingSvc, _, r := setupRouter(t, domain.Principal{})

	id := uuid.New().String()
	listing := &domain.Listing{ID: id, Status: domain.ListingStatusPublished, Title: "Robotics workshop", CreatedAt: time.Now()}
	listingSvc.EXPECT().GetPublic(mock.Anything, id).Return(listing, nil)

	w := doJSON(t, r, http.MethodGet, "/api/listings/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetListing_NotFound(t *testing.T) {
	listingSvc, _, r := setupRouter(t, domain.Principal{})

	id := uuid.New().String()
	listingSvc.EXPECT().GetPublic(mock.Anything, id).Return(nil, domain.ErrListingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/listings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetListing_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t, domain.Principal{})

	w := doJSON(t, r, http.MethodGet, "/api/listings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListActiveListings_Success(t *testing.T) {
	listingSvc, _, r := setupRouter(t, domain.Principal{})

	listings := []*domain.Listing{
		{ID: uuid.New().String(), Status: domain.ListingStatusPublished, CreatedAt: time.Now()},
	}
	listingSvc.EXPECT().ListActive(mock.Anything).Return(listings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/listings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t, schoolPrincipal)

	listingID := uuid.New().String()
	res := &domain.Reservation{
		ID:                uuid.New().String(),
		ListingID:         listingID,
		SchoolID:          schoolPrincipal.UserID,
		ParticipantsCount: 5,
		Status:            domain.ReservationStatusPending,
		ContactName:       "Jana Novak",
		ContactEmail:      "jana@school.si",
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	reservationSvc.EXPECT().Create(mock.Anything, schoolPrincipal, mock.Anything).Return(res, nil)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", dto.CreateReservationRequest{
		ListingID:         listingID,
		ParticipantsCount: 5,
		ContactName:       "Jana Novak",
		ContactEmail:      "jana@school.si",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 5, resp.ParticipantsCount)
}

func TestHandler_CreateReservation_BadEmail(t *testing.T) {
	_, _, r := setupRouter(t, schoolPrincipal)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", map[string]any{
		"listing_id":         uuid.New().String(),
		"participants_count": 5,
		"contact_name":       "Jana",
		"contact_email":      "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_ProviderForbidden(t *testing.T) {
	_, _, r := setupRouter(t, providerPrincipal)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", dto.CreateReservationRequest{
		ListingID:         uuid.New().String(),
		ParticipantsCount: 1,
		ContactName:       "X",
		ContactEmail:      "x@y.si",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ApproveReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t, providerPrincipal)

	id := uuid.New().String()
	res := &domain.Reservation{
		ID:        id,
		ListingID: uuid.New().String(),
		Status:    domain.ReservationStatusApproved,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	reservationSvc.EXPECT().Approve(mock.Anything, providerPrincipal, id, mock.Anything).Return(res, nil)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+id+"/approve", dto.RespondRequest{})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandler_ApproveReservation_EmptyBody(t *testing.T) {
	_, reservationSvc, r := setupRouter(t, providerPrincipal)

	id := uuid.New().String()
	res := &domain.Reservation{
		ID:        id,
		ListingID: uuid.New().String(),
		Status:    domain.ReservationStatusApproved,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	reservationSvc.EXPECT().Approve(mock.Anything, providerPrincipal, id, (*string)(nil)).Return(res, nil)

	// the response message is optional; no body at all must work
	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+id+"/approve", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_EmptyBody(t *testing.T) {
	_, reservationSvc, r := setupRouter(t, schoolPrincipal)

	id := uuid.New().String()
	res := &domain.Reservation{
		ID:        id,
		ListingID: uuid.New().String(),
		Status:    domain.ReservationStatusCancelled,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	reservationSvc.EXPECT().Cancel(mock.Anything, schoolPrincipal, id, (*string)(nil)).Return(res, nil)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+id+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ApproveReservation_CapacityExceeded(t *testing.T) {
	_, reservationSvc, r := setupRouter(t, providerPrincipal)

	id := uuid.New().String()
	reservationSvc.EXPECT().Approve(mock.Anything, providerPrincipal, id, mock.Anything).
		Return(nil, &domain.CapacityExceededError{Requested: 6, Remaining: 4})

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+id+"/approve", dto.RespondRequest{})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t, schoolPrincipal)

	id := uuid.New().String()
	res := &domain.Reservation{
		ID:        id,
		ListingID: uuid.New().String(),
		Status:    domain.ReservationStatusCancelled,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	reservationSvc.EXPECT().Cancel(mock.Anything, schoolPrincipal, id, mock.Anything).Return(res, nil)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+id+"/cancel", dto.CancelRequest{})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_NotFound(t *testing.T) {
	_, reservationSvc, r := setupRouter(t, schoolPrincipal)

	id := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, schoolPrincipal, id, mock.Anything).
		Return(nil, domain.ErrReservationNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+id+"/cancel", dto.CancelRequest{})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListSchoolReservations_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t, schoolPrincipal)

	reservations := []*domain.Reservation{
		{ID: uuid.New().String(), SchoolID: schoolPrincipal.UserID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	reservationSvc.EXPECT().ListBySchool(mock.Anything, schoolPrincipal).Return(reservations, nil)

	w := doJSON(t, r, http.MethodGet, "/api/school/reservations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}
