package order

import (
	"fmt"

	"ecom/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Processing ──┬──> Delivered
//	          │                 │
//	          └──> Cancelled <──┘
//
// Delivered and Cancelled are terminal. Transitions outside this graph are
// rejected; arbitrary status overwrites are deliberately not supported.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation.
	Pending

	// Processing indicates the order has been accepted and is being prepared.
	Processing

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// allowedTransitions is the closed transition table of the order lifecycle.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Delivered, Cancelled},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses the persisted or request-supplied form of a status.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", value),
	)
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates the move from the current status to next and
// returns next on success.
//
// Returns an error when either status is invalid or the move is outside the
// transition table (e.g. Pending -> Delivered, or anything out of a terminal
// state).
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	for _, allowed := range allowedTransitions()[s] {
		if next == allowed {
			return next, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("transition from %s to %s is not allowed", s, next),
	)
}
