package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateRoleCommandIsNotConstructed = errors.New(
		"CreateRoleCommand must be created via NewCreateRoleCommand constructor",
	)
	ErrAssignRoleCommandIsNotConstructed = errors.New(
		"AssignRoleCommand must be created via NewAssignRoleCommand constructor",
	)
)

// CreateRoleCommand defines a named set of stages for a store.
type CreateRoleCommand struct { //nolint:recvcheck //using for validation
	ownerID     kernel.UUID
	storeID     kernel.UUID
	name        string
	description string
	colorHex    string
	permissions store.StageSet

	guard guard.ConstructorGuard
}

// NewCreateRoleCommand takes permissions as stage names; names outside the
// closed Stage enum are rejected.
func NewCreateRoleCommand(
	ownerID, storeID kernel.UUID,
	name, description, colorHex string,
	permissions []string,
) (CreateRoleCommand, error) {
	set, permErr := store.ParseStageSet(permissions)
	if permErr == nil && set.IsEmpty() {
		permErr = errs.NewValueIsRequiredError("permissions")
	}

	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(ownerID.Validate(), storeID.Validate(), nameErr, permErr); err != nil {
		return CreateRoleCommand{}, err
	}

	return CreateRoleCommand{
		ownerID:     ownerID,
		storeID:     storeID,
		name:        strings.TrimSpace(name),
		description: description,
		colorHex:    colorHex,
		permissions: set,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRoleCommand) Validate() error {
	return c.guard.Validate(ErrCreateRoleCommandIsNotConstructed)
}

func (c CreateRoleCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c CreateRoleCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c CreateRoleCommand) Name() string {
	return c.name
}

func (c CreateRoleCommand) Description() string {
	return c.description
}

func (c CreateRoleCommand) ColorHex() string {
	return c.colorHex
}

func (c CreateRoleCommand) Permissions() store.StageSet {
	return c.permissions
}

// AssignRoleCommand sets a worker's role. A nil roleID clears it, which puts
// the worker back into pending state.
type AssignRoleCommand struct { //nolint:recvcheck //using for validation
	workerRef
	roleID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignRoleCommand(ownerID, storeID, userID kernel.UUID, roleID *kernel.UUID) (AssignRoleCommand, error) {
	ref, err := newWorkerRef(ownerID, storeID, userID)
	if err != nil {
		return AssignRoleCommand{}, err
	}

	cmd := AssignRoleCommand{workerRef: ref, guard: guard.NewConstructorGuard()}
	if roleID != nil {
		if err = roleID.Validate(); err != nil {
			return AssignRoleCommand{}, err
		}
		id := *roleID
		cmd.roleID = &id
	}
	return cmd, nil
}

func (c AssignRoleCommand) Validate() error {
	return c.guard.Validate(ErrAssignRoleCommandIsNotConstructed)
}

func (c AssignRoleCommand) RoleID() *kernel.UUID {
	if c.roleID == nil {
		return nil
	}
	id := *c.roleID
	return &id
}
