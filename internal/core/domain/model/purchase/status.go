package purchase

import "procurement/internal/pkg/errs"

// Status represents the position of an order in the fulfillment pipeline.
// It implements a state machine with an explicit transition table so that
// the table itself, not scattered conditionals, defines the workflow.
//
// State transitions:
//
//	Not Yet Purchased ──> Purchased ──> Shipped ──> Arrived
//	        │                 │
//	        └────> Cancelled <┘
//
// Cancelled is reachable only before shipping. Arrived and Cancelled are
// terminal. Status never regresses.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNotPurchased is the initial status of every order: approved or
	// not, nothing has been bought yet.
	StatusNotPurchased

	// StatusPurchased indicates the business team has placed the order with
	// the vendor.
	StatusPurchased

	// StatusShipped indicates the vendor has shipped the order.
	StatusShipped

	// StatusArrived indicates the order has physically arrived. Entering
	// this status requires an arrival photo artifact. Terminal.
	StatusArrived

	// StatusCancelled indicates the order was withdrawn before shipping.
	// Terminal.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "Unknown",
		StatusNotPurchased: "Not Yet Purchased",
		StatusPurchased:    "Purchased",
		StatusShipped:      "Shipped",
		StatusArrived:      "Arrived",
		StatusCancelled:    "Cancelled",
	}
}

// statusTransitions is the single source of truth for legal fulfillment
// moves: current status -> set of statuses reachable in one step.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusNotPurchased: {StatusPurchased, StatusCancelled},
		StatusPurchased:    {StatusShipped, StatusCancelled},
		StatusShipped:      {StatusArrived},
		StatusArrived:      {},
		StatusCancelled:    {},
	}
}

// StatusFromString parses a status from its display name, as used on the
// wire and in persistence of external systems.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the table allows moving from s to target
// in a single step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range statusTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from s to target against the transition
// table and returns the new status.
//
// Returns:
//   - (target, nil) on a legal single-step transition
//   - (StatusUnknown, *errs.InvalidTransitionError) otherwise, including any
//     attempt to skip a stage or leave a terminal status
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// IsTerminal reports whether no further fulfillment transitions exist.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0 && s.Validate() == nil
}
