package store

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Stage is a named phase of fulfillment. Stage names arriving from outside
// go through ParseStage, so an unknown name never becomes a permission.
type Stage int

const (
	StageUnknown Stage = iota
	Recepcionista
	Cocinero
	Despachador
	Contabilidad
	Administrador
)

func getStageNames() map[Stage]string {
	//nolint:exhaustive // StageUnknown is not a permission
	return map[Stage]string{
		Recepcionista: "Recepcionista",
		Cocinero:      "Cocinero",
		Despachador:   "Despachador",
		Contabilidad:  "Contabilidad",
		Administrador: "Administrador",
	}
}

// ParseStage accepts stage names case-insensitively.
func ParseStage(name string) (Stage, error) {
	name = strings.TrimSpace(name)
	for stage, stageName := range getStageNames() {
		if strings.EqualFold(stageName, name) {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a known stage", name))
}

func (s Stage) Validate() error {
	if _, ok := getStageNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a known stage", s))
	}
	return nil
}

func (s Stage) String() string {
	if name, ok := getStageNames()[s]; ok {
		return name
	}
	return "Desconocido"
}

// Queue lists the item statuses waiting for this stage to act. Contabilidad
// never acts; Administrador sees every non terminal status.
func (s Stage) Queue() []order.ItemStatus {
	switch s {
	case Recepcionista:
		return []order.ItemStatus{order.ItemReceived}
	case Cocinero:
		return []order.ItemStatus{order.ItemQueued, order.ItemPreparing}
	case Despachador:
		return []order.ItemStatus{order.ItemReadyForPickup}
	case Administrador:
		return []order.ItemStatus{order.ItemReceived, order.ItemQueued, order.ItemPreparing, order.ItemReadyForPickup}
	case StageUnknown, Contabilidad:
		return nil
	}
	return nil
}

// StageFor returns the stage owning the transition into target.
//
//	QUEUED            Recepcionista (RECEIVED -> QUEUED)
//	PREPARING         Cocinero      (QUEUED -> PREPARING)
//	READY_FOR_PICKUP  Cocinero      (PREPARING -> READY_FOR_PICKUP)
//	DELIVERED         Despachador   (READY_FOR_PICKUP -> DELIVERED)
//
// RECEIVED is only ever assigned at checkout, so no stage owns it.
func StageFor(target order.ItemStatus) (Stage, error) {
	switch target {
	case order.ItemQueued:
		return Recepcionista, nil
	case order.ItemPreparing, order.ItemReadyForPickup:
		return Cocinero, nil
	case order.ItemDelivered:
		return Despachador, nil
	case order.ItemUnknown, order.ItemReceived:
	}
	return StageUnknown, &order.InvalidTransitionError{From: order.ItemUnknown, To: target}
}

// StageSet is a set of stages.
type StageSet uint8

func NewStageSet(stages ...Stage) StageSet {
	var set StageSet
	for _, s := range stages {
		set = set.Add(s)
	}
	return set
}

// AllStages is the expansion of Administrador.
func AllStages() StageSet {
	return NewStageSet(Recepcionista, Cocinero, Despachador, Contabilidad, Administrador)
}

// ParseStageSet parses a list of stage names, rejecting any unknown one.
func ParseStageSet(names []string) (StageSet, error) {
	var set StageSet
	for _, name := range names {
		s, err := ParseStage(name)
		if err != nil {
			return 0, err
		}
		set = set.Add(s)
	}
	return set, nil
}

func (set StageSet) Add(s Stage) StageSet {
	if s.Validate() != nil {
		return set
	}
	return set | 1<<uint(s)
}

func (set StageSet) Has(s Stage) bool {
	return s.Validate() == nil && set&(1<<uint(s)) != 0
}

func (set StageSet) IsEmpty() bool {
	return set == 0
}

// Expand grants every stage when the set holds Administrador.
func (set StageSet) Expand() StageSet {
	if set.Has(Administrador) {
		return AllStages()
	}
	return set
}

// Slice lists the stages in declaration order.
func (set StageSet) Slice() []Stage {
	stages := make([]Stage, 0, 5)
	for s := Recepcionista; s <= Administrador; s++ {
		if set.Has(s) {
			stages = append(stages, s)
		}
	}
	return stages
}

func (set StageSet) Names() []string {
	stages := set.Slice()
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.String()
	}
	return names
}
