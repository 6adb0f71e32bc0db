package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	"github.com/Miki0195/delavnice-backend/internal/handler/dto"
	"github.com/Miki0195/delavnice-backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ListingSvc interface {
	CreateDraft(ctx context.Context, p domain.Principal, input domain.CreateListingInput) (*domain.Listing, error)
	Submit(ctx context.Context, p domain.Principal, listingID string) (*domain.Listing, error)
	EditLive(ctx context.Context, p domain.Principal, liveID string, changes domain.ListingChanges) (*domain.Listing, error)
	Renew(ctx context.Context, p domain.Principal, expiredID string, newEndDate time.Time) (*domain.Listing, error)
	Approve(ctx context.Context, p domain.Principal, pendingID string) (*domain.Listing, error)
	Deny(ctx context.Context, p domain.Principal, pendingID, reason string) error
	GetPublic(ctx context.Context, id string) (*domain.Listing, error)
	ListActive(ctx context.Context) ([]*domain.Listing, error)
	ListPendingReview(ctx context.Context, p domain.Principal) ([]*domain.Listing, error)
	ListByProvider(ctx context.Context, p domain.Principal) ([]*domain.Listing, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, p domain.Principal, input domain.CreateReservationInput) (*domain.Reservation, error)
	Approve(ctx context.Context, p domain.Principal, id string, responseMessage *string) (*domain.Reservation, error)
	Reject(ctx context.Context, p domain.Principal, id string, responseMessage *string) (*domain.Reservation, error)
	Cancel(ctx context.Context, p domain.Principal, id string, reason *string) (*domain.Reservation, error)
	ListByListing(ctx context.Context, p domain.Principal, listingID string) ([]*domain.Reservation, error)
	ListBySchool(ctx context.Context, p domain.Principal) ([]*domain.Reservation, error)
}

type Handler struct {
	listingService     ListingSvc
	reservationService ReservationSvc
}

func NewHandler(listingService ListingSvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		listingService:     listingService,
		reservationService: reservationService,
	}
}

// Listings

func (h *Handler) CreateListing(c *ginext.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := toCreateListingInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	listing, err := h.listingService.CreateDraft(c.Request.Context(), p, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) SubmitListing(c *ginext.Context) {
	p, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	listing, err := h.listingService.Submit(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) EditListing(c *ginext.Context) {
	p, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	var req dto.EditListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	changes, err := toListingChanges(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	fork, err := h.listingService.EditLive(c.Request.Context(), p, id, changes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(fork))
}

func (h *Handler) RenewListing(c *ginext.Context) {
	p, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	var req dto.RenewListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	newEnd, err := time.Parse(time.RFC3339, req.EventDateEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date_end format, expected RFC3339",
		})
		return
	}

	fork, err := h.listingService.Renew(c.Request.Context(), p, id, newEnd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(fork))
}

func (h *Handler) ApproveListing(c *ginext.Context) {
	p, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	listing, err := h.listingService.Approve(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) DenyListing(c *ginext.Context) {
	p, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	var req dto.DenyListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.listingService.Deny(c.Request.Context(), p, id, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "denied"})
}

func (h *Handler) GetListing(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	listing, err := h.listingService.GetPublic(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) ListActiveListings(c *ginext.Context) {
	listings, err := h.listingService.ListActive(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListingResponses(listings))
}

func (h *Handler) ListPendingListings(c *ginext.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	listings, err := h.listingService.ListPendingReview(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListingResponses(listings))
}

func (h *Handler) ListProviderListings(c *ginext.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	listings, err := h.listingService.ListByProvider(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListingResponses(listings))
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.reservationService.Create(c.Request.Context(), p, domain.CreateReservationInput{
		ListingID:         req.ListingID,
		ServiceID:         req.ServiceID,
		SlotID:            req.SlotID,
		ParticipantsCount: req.ParticipantsCount,
		ContactName:       req.ContactName,
		ContactEmail:      req.ContactEmail,
		Message:           req.Message,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) ApproveReservation(c *ginext.Context) {
	p, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	var req dto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.reservationService.Approve(c.Request.Context(), p, id, req.Message)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) RejectReservation(c *ginext.Context) {
	p, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	var req dto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.reservationService.Reject(c.Request.Context(), p, id, req.Message)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	p, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.reservationService.Cancel(c.Request.Context(), p, id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) ListListingReservations(c *ginext.Context) {
	p, id, ok := h.principalAndID(c)
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByListing(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func (h *Handler) ListSchoolReservations(c *ginext.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	reservations, err := h.reservationService.ListBySchool(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func (h *Handler) principalAndID(c *ginext.Context) (domain.Principal, string, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return domain.Principal{}, "", false
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return domain.Principal{}, "", false
	}

	return p, id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "validation error",
			Fields: validationErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrListingNotBookable),
		errors.Is(err, domain.ErrAlreadyReserved):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func toListingResponses(listings []*domain.Listing) []dto.ListingResponse {
	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}
	return resp
}

func toReservationResponses(reservations []*domain.Reservation) []dto.ReservationResponse {
	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}
	return resp
}

func toCreateListingInput(req dto.CreateListingRequest) (domain.CreateListingInput, error) {
	start, err := parseTimePtr(req.EventDateStart)
	if err != nil {
		return domain.CreateListingInput{}, errors.New("invalid event_date_start format, expected RFC3339")
	}
	end, err := parseTimePtr(req.EventDateEnd)
	if err != nil {
		return domain.CreateListingInput{}, errors.New("invalid event_date_end format, expected RFC3339")
	}

	services := toServiceInputs(req.Services)
	slots, err := toSlotInputs(req.Slots)
	if err != nil {
		return domain.CreateListingInput{}, err
	}

	return domain.CreateListingInput{
		Kind:           domain.ListingKind(req.Kind),
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Region:         req.Region,
		TargetGroup:    req.TargetGroup,
		EventDateStart: start,
		EventDateEnd:   end,
		Services:       services,
		Slots:          slots,
	}, nil
}

func toListingChanges(req dto.EditListingRequest) (domain.ListingChanges, error) {
	start, err := parseTimePtr(req.EventDateStart)
	if err != nil {
		return domain.ListingChanges{}, errors.New("invalid event_date_start format, expected RFC3339")
	}
	end, err := parseTimePtr(req.EventDateEnd)
	if err != nil {
		return domain.ListingChanges{}, errors.New("invalid event_date_end format, expected RFC3339")
	}

	var services []domain.ServiceInput
	if req.Services != nil {
		services = toServiceInputs(req.Services)
	}
	var slots []domain.SlotInput
	if req.Slots != nil {
		if slots, err = toSlotInputs(req.Slots); err != nil {
			return domain.ListingChanges{}, err
		}
	}

	return domain.ListingChanges{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Region:         req.Region,
		TargetGroup:    req.TargetGroup,
		EventDateStart: start,
		EventDateEnd:   end,
		Services:       services,
		Slots:          slots,
	}, nil
}

func toServiceInputs(reqs []dto.ServiceRequest) []domain.ServiceInput {
	services := make([]domain.ServiceInput, 0, len(reqs))
	for _, s := range reqs {
		services = append(services, domain.ServiceInput{
			Title:           s.Title,
			PriceCents:      s.PriceCents,
			DurationMinutes: s.DurationMinutes,
			Capacity:        s.Capacity,
		})
	}
	return services
}

func toSlotInputs(reqs []dto.SlotRequest) ([]domain.SlotInput, error) {
	slots := make([]domain.SlotInput, 0, len(reqs))
	for _, s := range reqs {
		start, err := time.Parse(time.RFC3339, s.StartAt)
		if err != nil {
			return nil, errors.New("invalid slot start_at format, expected RFC3339")
		}
		end, err := time.Parse(time.RFC3339, s.EndAt)
		if err != nil {
			return nil, errors.New("invalid slot end_at format, expected RFC3339")
		}
		slots = append(slots, domain.SlotInput{
			ServiceID: s.ServiceID,
			StartAt:   start,
			EndAt:     end,
			Capacity:  s.Capacity,
		})
	}
	return slots, nil
}

func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
