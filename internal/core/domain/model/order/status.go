package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the aggregate status of an order, projected from its items.
//
//	Paid ──> Waiting ──> Completed
//
// Paid: every item is still RECEIVED. Waiting: at least one item moved past
// RECEIVED. Completed: every item is DELIVERED.
type Status int

const (
	Unknown Status = iota
	Paid
	Waiting
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Desconocido",
		Paid:      "Pagado",
		Waiting:   "En espera",
		Completed: "Completado",
	}
}

func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Desconocido"
}

// ProjectStatus derives the aggregate status from item statuses.
func ProjectStatus(items []ItemStatus) Status {
	if len(items) == 0 {
		return Paid
	}

	allDelivered := true
	anyStarted := false
	for _, s := range items {
		if s != ItemDelivered {
			allDelivered = false
		}
		if s > ItemReceived {
			anyStarted = true
		}
	}

	switch {
	case allDelivered:
		return Completed
	case anyStarted:
		return Waiting
	default:
		return Paid
	}
}
