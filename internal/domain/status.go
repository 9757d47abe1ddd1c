package domain

// DeliveryStatus represents the delivery lifecycle state of an order.
type DeliveryStatus string

// List of possible delivery statuses
const (
	DeliveryNew       DeliveryStatus = "new"
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryEnroute   DeliveryStatus = "enroute"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
)

var allowedDeliveryStatuses = [...]DeliveryStatus{
	DeliveryNew, DeliveryAssigned, DeliveryEnroute, DeliveryDelivered, DeliveryFailed,
}

// transitions lists the states reachable from each state.
// assigned -> assigned is a re-send to the same or another driver.
var transitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryNew:      {DeliveryAssigned, DeliveryFailed},
	DeliveryAssigned: {DeliveryAssigned, DeliveryEnroute, DeliveryFailed},
	DeliveryEnroute:  {DeliveryDelivered, DeliveryFailed},
}

// Valid checks if the DeliveryStatus is valid
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedDeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryDelivered || s == DeliveryFailed
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	for _, v := range transitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// Live reports whether orders in this status are shown in the live-operations view.
func (s DeliveryStatus) Live() bool {
	return s == DeliveryNew || s == DeliveryAssigned
}

// LiveStatuses returns the statuses surfaced in the live-operations view.
func LiveStatuses() []DeliveryStatus {
	return []DeliveryStatus{DeliveryNew, DeliveryAssigned}
}
