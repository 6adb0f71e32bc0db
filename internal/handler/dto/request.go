package dto

type CreateListingRequest struct {
	Kind           string           `json:"kind" binding:"required,oneof=SERVICE EVENT"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	Region         string           `json:"region"`
	TargetGroup    string           `json:"target_group"`
	EventDateStart *string          `json:"event_date_start"`
	EventDateEnd   *string          `json:"event_date_end"`
	Services       []ServiceRequest `json:"services"`
	Slots          []SlotRequest    `json:"slots"`
}

type ServiceRequest struct {
	Title           string `json:"title"`
	PriceCents      int    `json:"price_cents"`
	DurationMinutes int    `json:"duration_minutes"`
	Capacity        *int   `json:"capacity"`
}

type SlotRequest struct {
	ServiceID *string `json:"service_id"`
	StartAt   string  `json:"start_at" binding:"required"`
	EndAt     string  `json:"end_at" binding:"required"`
	Capacity  int     `json:"capacity" binding:"gte=0"`
}

type EditListingRequest struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Category       *string          `json:"category"`
	Region         *string          `json:"region"`
	TargetGroup    *string          `json:"target_group"`
	EventDateStart *string          `json:"event_date_start"`
	EventDateEnd   *string          `json:"event_date_end"`
	Services       []ServiceRequest `json:"services"`
	Slots          []SlotRequest    `json:"slots"`
}

type RenewListingRequest struct {
	EventDateEnd string `json:"event_date_end" binding:"required"`
}

type DenyListingRequest struct {
	Reason string `json:"reason"`
}

type CreateReservationRequest struct {
	ListingID         string  `json:"listing_id" binding:"required,uuid"`
	ServiceID         *string `json:"service_id" binding:"omitempty,uuid"`
	SlotID            *string `json:"slot_id" binding:"omitempty,uuid"`
	ParticipantsCount int     `json:"participants_count" binding:"required,gte=1"`
	ContactName       string  `json:"contact_name" binding:"required"`
	ContactEmail      string  `json:"contact_email" binding:"required,email"`
	Message           *string `json:"message"`
}

type RespondRequest struct {
	Message *string `json:"message"`
}

type CancelRequest struct {
	Reason *string `json:"reason"`
}
