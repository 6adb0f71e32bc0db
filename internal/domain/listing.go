package domain

import (
	"fmt"
	"time"
)

type ListingKind string

const (
	ListingKindService ListingKind = "SERVICE"
	ListingKindEvent   ListingKind = "EVENT"
)

type ListingStatus string

const (
	ListingStatusDraft         ListingStatus = "draft"
	ListingStatusPendingReview ListingStatus = "pending_review"
	ListingStatusPublished     ListingStatus = "published"
	ListingStatusDenied        ListingStatus = "denied"
	ListingStatusExpired       ListingStatus = "expired"
	// ListingStatusArchived marks a previous version superseded by an
	// approved edit or renewal. Kept for history, never served publicly.
	ListingStatusArchived ListingStatus = "archived"
)

const maxDescriptionLen = 2000

type Listing struct {
	ID                string        `json:"id"`
	ProviderID        string        `json:"provider_id"`
	Kind              ListingKind   `json:"kind"`
	Status            ListingStatus `json:"status"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Category          string        `json:"category"`
	Region            string        `json:"region"`
	TargetGroup       string        `json:"target_group"`
	IsEdited          bool          `json:"is_edited"`
	IsRenewal         bool          `json:"is_renewal"`
	PreviousVersionID *string       `json:"previous_version_id,omitempty"`
	EventDateStart    *time.Time    `json:"event_date_start,omitempty"`
	EventDateEnd      *time.Time    `json:"event_date_end,omitempty"`
	DenialReason      *string       `json:"denial_reason,omitempty"`
	Services          []Service     `json:"services,omitempty"`
	Slots             []Slot        `json:"slots,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type Service struct {
	ID              string `json:"id"`
	ListingID       string `json:"listing_id"`
	Title           string `json:"title"`
	PriceCents      int    `json:"price_cents"`
	DurationMinutes int    `json:"duration_minutes"`
	// Capacity is the per-date participant bound. Nil means unbounded.
	Capacity *int `json:"capacity,omitempty"`
}

type Slot struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	ServiceID *string   `json:"service_id,omitempty"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Capacity  int       `json:"capacity"`
}

type CreateListingInput struct {
	Kind           ListingKind
	Title          string
	Description    string
	Category       string
	Region         string
	TargetGroup    string
	EventDateStart *time.Time
	EventDateEnd   *time.Time
	Services       []ServiceInput
	Slots          []SlotInput
}

type ServiceInput struct {
	Title           string
	PriceCents      int
	DurationMinutes int
	Capacity        *int
}

type SlotInput struct {
	ServiceID *string
	StartAt   time.Time
	EndAt     time.Time
	Capacity  int
}

// ListingChanges carries a partial update for an edit fork. Nil fields keep
// the value of the version being edited.
type ListingChanges struct {
	Title          *string
	Description    *string
	Category       *string
	Region         *string
	TargetGroup    *string
	EventDateStart *time.Time
	EventDateEnd   *time.Time
	Services       []ServiceInput
	Slots          []SlotInput
}

// DerivedStatus folds the end-date boundary into the stored status: a
// published listing past its end date reads as expired without waiting for
// the sweeper.
func (l *Listing) DerivedStatus(now time.Time) ListingStatus {
	if l.Status == ListingStatusPublished && l.EventDateEnd != nil && l.EventDateEnd.Before(now) {
		return ListingStatusExpired
	}
	return l.Status
}

// IsBookable reports whether reservations may be created against the listing.
func (l *Listing) IsBookable(now time.Time) bool {
	return l.DerivedStatus(now) == ListingStatusPublished
}

func (l *Listing) FindSlot(slotID string) *Slot {
	for i := range l.Slots {
		if l.Slots[i].ID == slotID {
			return &l.Slots[i]
		}
	}
	return nil
}

func (l *Listing) FindService(serviceID string) *Service {
	for i := range l.Services {
		if l.Services[i].ID == serviceID {
			return &l.Services[i]
		}
	}
	return nil
}

// ValidateForSubmit checks the mandatory fields a listing needs before it can
// enter review. All problems are reported at once, keyed by field.
func (l *Listing) ValidateForSubmit(now time.Time) error {
	v := NewValidationError()

	if l.Title == "" {
		v.Add("title", "is required")
	}
	if l.Category == "" {
		v.Add("category", "is required")
	}
	if l.Region == "" {
		v.Add("region", "is required")
	}
	if l.TargetGroup == "" {
		v.Add("target_group", "is required")
	}
	if len(l.Description) > maxDescriptionLen {
		v.Add("description", fmt.Sprintf("must be at most %d characters", maxDescriptionLen))
	}

	switch l.Kind {
	case ListingKindService:
		if len(l.Services) == 0 {
			v.Add("services", "at least one service is required")
		}
		for i, s := range l.Services {
			if s.PriceCents < 0 {
				v.Add(fmt.Sprintf("services[%d].price_cents", i), "must not be negative")
			}
			if s.DurationMinutes <= 0 {
				v.Add(fmt.Sprintf("services[%d].duration_minutes", i), "must be positive")
			}
			if s.Capacity != nil && *s.Capacity < 0 {
				v.Add(fmt.Sprintf("services[%d].capacity", i), "must not be negative")
			}
		}
		for i, s := range l.Slots {
			if !s.EndAt.After(s.StartAt) {
				v.Add(fmt.Sprintf("slots[%d].end_at", i), "must be after start_at")
			}
			if s.Capacity < 0 {
				v.Add(fmt.Sprintf("slots[%d].capacity", i), "must not be negative")
			}
		}
	case ListingKindEvent:
		if l.EventDateStart == nil {
			v.Add("event_date_start", "is required")
		}
		if l.EventDateEnd == nil {
			v.Add("event_date_end", "is required")
		} else if l.EventDateEnd.Before(now) {
			v.Add("event_date_end", "must be in the future")
		}
		if l.EventDateStart != nil && l.EventDateEnd != nil && l.EventDateEnd.Before(*l.EventDateStart) {
			v.Add("event_date_end", "must not be before event_date_start")
		}
	default:
		v.Add("kind", "must be SERVICE or EVENT")
	}

	return v.Err()
}
