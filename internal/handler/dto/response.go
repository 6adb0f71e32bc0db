package dto

import (
	"time"

	"github.com/Miki0195/delavnice-backend/internal/domain"
)

type ListingResponse struct {
	ID                string            `json:"id"`
	ProviderID        string            `json:"provider_id"`
	Kind              string            `json:"kind"`
	Status            string            `json:"status"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Category          string            `json:"category"`
	Region            string            `json:"region"`
	TargetGroup       string            `json:"target_group"`
	IsEdited          bool              `json:"is_edited"`
	IsRenewal         bool              `json:"is_renewal"`
	PreviousVersionID *string           `json:"previous_version_id,omitempty"`
	EventDateStart    *string           `json:"event_date_start,omitempty"`
	EventDateEnd      *string           `json:"event_date_end,omitempty"`
	DenialReason      *string           `json:"denial_reason,omitempty"`
	Services          []ServiceResponse `json:"services,omitempty"`
	Slots             []SlotResponse    `json:"slots,omitempty"`
	CreatedAt         string            `json:"created_at"`
}

type ServiceResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	PriceCents      int    `json:"price_cents"`
	DurationMinutes int    `json:"duration_minutes"`
	Capacity        *int   `json:"capacity,omitempty"`
}

type SlotResponse struct {
	ID        string  `json:"id"`
	ServiceID *string `json:"service_id,omitempty"`
	StartAt   string  `json:"start_at"`
	EndAt     string  `json:"end_at"`
	Capacity  int     `json:"capacity"`
}

type ReservationResponse struct {
	ID                string  `json:"id"`
	ListingID         string  `json:"listing_id"`
	ServiceID         *string `json:"service_id,omitempty"`
	SlotID            *string `json:"slot_id,omitempty"`
	SchoolID          string  `json:"school_id"`
	ParticipantsCount int     `json:"participants_count"`
	Status            string  `json:"status"`
	ContactName       string  `json:"contact_name"`
	ContactEmail      string  `json:"contact_email"`
	Message           *string `json:"message,omitempty"`
	ResponseMessage   *string `json:"response_message,omitempty"`
	CancelReason      *string `json:"cancel_reason,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	resp := ListingResponse{
		ID:                l.ID,
		ProviderID:        l.ProviderID,
		Kind:              string(l.Kind),
		Status:            string(l.Status),
		Title:             l.Title,
		Description:       l.Description,
		Category:          l.Category,
		Region:            l.Region,
		TargetGroup:       l.TargetGroup,
		IsEdited:          l.IsEdited,
		IsRenewal:         l.IsRenewal,
		PreviousVersionID: l.PreviousVersionID,
		EventDateStart:    formatTimePtr(l.EventDateStart),
		EventDateEnd:      formatTimePtr(l.EventDateEnd),
		DenialReason:      l.DenialReason,
		CreatedAt:         l.CreatedAt.Format(time.RFC3339),
	}

	for _, s := range l.Services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Title:           s.Title,
			PriceCents:      s.PriceCents,
			DurationMinutes: s.DurationMinutes,
			Capacity:        s.Capacity,
		})
	}
	for _, s := range l.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			ID:        s.ID,
			ServiceID: s.ServiceID,
			StartAt:   s.StartAt.Format(time.RFC3339),
			EndAt:     s.EndAt.Format(time.RFC3339),
			Capacity:  s.Capacity,
		})
	}

	return resp
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                r.ID,
		ListingID:         r.ListingID,
		ServiceID:         r.ServiceID,
		SlotID:            r.SlotID,
		SchoolID:          r.SchoolID,
		ParticipantsCount: r.ParticipantsCount,
		Status:            string(r.Status),
		ContactName:       r.ContactName,
		ContactEmail:      r.ContactEmail,
		Message:           r.Message,
		ResponseMessage:   r.ResponseMessage,
		CancelReason:      r.CancelReason,
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         r.UpdatedAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
