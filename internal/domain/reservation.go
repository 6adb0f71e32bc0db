package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusApproved  ReservationStatus = "approved"
	ReservationStatusRejected  ReservationStatus = "rejected"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// reservationTransitions is the full transition table. Anything not listed
// here is an InvalidTransitionError, no exceptions.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:  {ReservationStatusApproved, ReservationStatusRejected, ReservationStatusCancelled},
	ReservationStatusApproved: {ReservationStatusCancelled, ReservationStatusCompleted},
}

func (s ReservationStatus) CanTransitionTo(to ReservationStatus) bool {
	for _, t := range reservationTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

func (s ReservationStatus) Terminal() bool {
	return len(reservationTransitions[s]) == 0
}

type Reservation struct {
	ID                string            `json:"id"`
	ListingID         string            `json:"listing_id"`
	ServiceID         *string           `json:"service_id,omitempty"`
	SlotID            *string           `json:"slot_id,omitempty"`
	SchoolID          string            `json:"school_id"`
	ParticipantsCount int               `json:"participants_count"`
	Status            ReservationStatus `json:"status"`
	// Contact details are snapshotted at creation time and never follow
	// later profile edits.
	ContactName     string    `json:"contact_name"`
	ContactEmail    string    `json:"contact_email"`
	Message         *string   `json:"message,omitempty"`
	ResponseMessage *string   `json:"response_message,omitempty"`
	CancelReason    *string   `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateReservationInput struct {
	ListingID         string
	ServiceID         *string
	SlotID            *string
	ParticipantsCount int
	ContactName       string
	ContactEmail      string
	Message           *string
}
