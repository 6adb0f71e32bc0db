package domain

import "time"

const (
	ResourceListing     = "listing"
	ResourceReservation = "reservation"
)

// ActorSystem is used for transitions applied by the sweeper rather than a
// logged-in principal.
const ActorSystem = "system"

// TransitionEvent describes one committed state transition. The activity log
// receives exactly one event per transition and none for failed or
// rolled-back attempts.
type TransitionEvent struct {
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	OldState   string    `json:"old_state"`
	NewState   string    `json:"new_state"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
