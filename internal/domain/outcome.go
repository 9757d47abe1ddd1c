package domain

// OutcomeStatus tells whether an operation changed anything.
type OutcomeStatus string

// List of outcome statuses
const (
	OutcomeApplied OutcomeStatus = "applied"
	OutcomeSkipped OutcomeStatus = "skipped"
)

// SkipReason explains why an operation was a no-op.
type SkipReason string

// List of skip reasons
const (
	ReasonEmptyName           SkipReason = "empty_name"
	ReasonEmptyPhone          SkipReason = "empty_phone"
	ReasonInvalidDriverID     SkipReason = "invalid_driver_id"
	ReasonInvalidOrderID      SkipReason = "invalid_order_id"
	ReasonNoAreas             SkipReason = "no_areas"
	ReasonDriverNotFound      SkipReason = "driver_not_found"
	ReasonOrderNotFound       SkipReason = "order_not_found"
	ReasonMissingPostcode     SkipReason = "missing_postcode"
	ReasonNoCoveringDriver    SkipReason = "no_covering_driver"
	ReasonNotDispatchable     SkipReason = "order_not_dispatchable"
	ReasonNotificationFailed  SkipReason = "notification_failed"
	ReasonAssignmentNotStored SkipReason = "assignment_not_stored"
)

// Outcome is the result of an operation that may silently do nothing.
type Outcome struct {
	Status OutcomeStatus
	Reason SkipReason
}

// Applied returns an outcome for an operation that changed state.
func Applied() Outcome { return Outcome{Status: OutcomeApplied} }

// Skipped returns an outcome for a no-op with the given reason.
func Skipped(reason SkipReason) Outcome {
	return Outcome{Status: OutcomeSkipped, Reason: reason}
}

// IsApplied reports whether the operation changed state.
func (o Outcome) IsApplied() bool { return o.Status == OutcomeApplied }

// NotFound reports whether the skip was caused by a missing driver or order.
func (r SkipReason) NotFound() bool {
	return r == ReasonDriverNotFound || r == ReasonOrderNotFound
}

// Invalid reports whether the skip was caused by bad input.
func (r SkipReason) Invalid() bool {
	switch r {
	case ReasonEmptyName, ReasonEmptyPhone, ReasonInvalidDriverID, ReasonInvalidOrderID, ReasonNoAreas:
		return true
	default:
		return false
	}
}
