package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel of every rejected item transition.
var ErrInvalidTransition = errors.New("invalid transition")

// ItemStatus is the fulfillment state of an order item.
//
// State transitions:
//
//	Received ──> Queued ──> Preparing ──> ReadyForPickup ──> Delivered
//
// Only single forward steps are legal. Delivered is terminal.
type ItemStatus int

const (
	// ItemUnknown catches uninitialized values.
	ItemUnknown ItemStatus = iota

	// ItemReceived is assigned when a cart entry becomes an order item.
	ItemReceived

	// ItemQueued means reception accepted the item into the kitchen queue.
	ItemQueued

	// ItemPreparing means the kitchen is working on the item.
	ItemPreparing

	// ItemReadyForPickup means the item waits for dispatch.
	ItemReadyForPickup

	// ItemDelivered is the terminal state.
	ItemDelivered
)

type itemStatusNames struct {
	code  string
	label string
}

func getItemStatusNames() map[ItemStatus]itemStatusNames {
	//nolint:exhaustive // ItemUnknown has no names
	return map[ItemStatus]itemStatusNames{
		ItemReceived:       {code: "RECEIVED", label: "Recibido"},
		ItemQueued:         {code: "QUEUED", label: "En cola"},
		ItemPreparing:      {code: "PREPARING", label: "En preparación"},
		ItemReadyForPickup: {code: "READY_FOR_PICKUP", label: "Listo para entregar"},
		ItemDelivered:      {code: "DELIVERED", label: "Entregado"},
	}
}

// ParseItemStatus maps a machine code such as "READY_FOR_PICKUP" to its status.
func ParseItemStatus(code string) (ItemStatus, error) {
	for status, names := range getItemStatusNames() {
		if names.code == code {
			return status, nil
		}
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid item status", code))
}

// Validate rejects ItemUnknown and out of range values.
func (s ItemStatus) Validate() error {
	if _, ok := getItemStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// Code returns the stable machine name, e.g. "PREPARING".
func (s ItemStatus) Code() string {
	if names, ok := getItemStatusNames()[s]; ok {
		return names.code
	}
	return "UNKNOWN"
}

// String returns the label shown to store workers, e.g. "En preparación".
func (s ItemStatus) String() string {
	if names, ok := getItemStatusNames()[s]; ok {
		return names.label
	}
	return "Desconocido"
}

func (s ItemStatus) IsTerminal() bool {
	return s == ItemDelivered
}

// Next returns the single legal successor of s.
func (s ItemStatus) Next() (ItemStatus, bool) {
	if s.Validate() != nil || s.IsTerminal() {
		return ItemUnknown, false
	}
	return s + 1, true
}

// Previous returns the only status from which s can be reached.
func (s ItemStatus) Previous() (ItemStatus, bool) {
	if s.Validate() != nil || s == ItemReceived {
		return ItemUnknown, false
	}
	return s - 1, true
}

// TransitionTo applies the machine:
//   - target == s returns s (idempotent no-op)
//   - target == s.Next() returns target
//   - anything else fails with *InvalidTransitionError
func (s ItemStatus) TransitionTo(target ItemStatus) (ItemStatus, error) {
	if err := target.Validate(); err != nil {
		return ItemUnknown, &InvalidTransitionError{From: s, To: target}
	}
	if s == target {
		return s, nil
	}
	if next, ok := s.Next(); ok && next == target {
		return target, nil
	}
	return ItemUnknown, &InvalidTransitionError{From: s, To: target}
}

// InvalidTransitionError carries the rejected pair of states.
type InvalidTransitionError struct {
	From ItemStatus
	To   ItemStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From.Code(), e.To.Code())
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
