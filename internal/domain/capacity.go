package domain

// ResourceKey identifies the bookable resource a reservation holds capacity
// on: a slot, or a service for slot-less bookings. Exactly one of the two
// fields is set.
type ResourceKey struct {
	SlotID    string `json:"slot_id,omitempty"`
	ServiceID string `json:"service_id,omitempty"`
}

func SlotKey(slotID string) ResourceKey {
	return ResourceKey{SlotID: slotID}
}

func ServiceKey(serviceID string) ResourceKey {
	return ResourceKey{ServiceID: serviceID}
}

// KeyForReservation returns the capacity resource a reservation competes
// for. ok is false when the reservation is bound to neither a slot nor a
// service, in which case it holds no capacity at all.
func KeyForReservation(r *Reservation) (key ResourceKey, ok bool) {
	if r.SlotID != nil {
		return SlotKey(*r.SlotID), true
	}
	if r.ServiceID != nil {
		return ServiceKey(*r.ServiceID), true
	}
	return ResourceKey{}, false
}

// CapacityDecision is the ledger's answer to "can delta more participants
// fit". Remaining is -1 for unbounded resources.
type CapacityDecision struct {
	Accepted  bool `json:"accepted"`
	Remaining int  `json:"remaining"`
}
