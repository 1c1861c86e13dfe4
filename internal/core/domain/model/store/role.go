package store

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRoleIsNotConstructed = errors.New("Role must be created via NewRole")

	colorHexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Role is a store-defined, named bundle of stage permissions.
type Role struct {
	id          kernel.UUID
	storeID     kernel.UUID
	name        string
	description string
	colorHex    string
	permissions StageSet
	createdBy   kernel.UUID

	guard guard.ConstructorGuard
}

func NewRole(
	id, storeID kernel.UUID,
	name, description, colorHex string,
	permissions StageSet,
	createdBy kernel.UUID,
) (*Role, error) {
	r := &Role{
		description: strings.TrimSpace(description),
		permissions: permissions,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		storeID.Validate(),
		createdBy.Validate(),
		r.setName(name),
		r.setColor(colorHex),
	); err != nil {
		return nil, err
	}

	r.id = id
	r.storeID = storeID
	r.createdBy = createdBy
	return r, nil
}

func (r *Role) Validate() error {
	if r == nil {
		return ErrRoleIsNotConstructed
	}
	return r.guard.Validate(ErrRoleIsNotConstructed)
}

func (r *Role) ID() kernel.UUID {
	return r.id
}

func (r *Role) StoreID() kernel.UUID {
	return r.storeID
}

func (r *Role) Name() string {
	return r.name
}

func (r *Role) Description() string {
	return r.description
}

func (r *Role) ColorHex() string {
	return r.colorHex
}

// Permissions returns the stages as granted, without Administrador expansion.
func (r *Role) Permissions() StageSet {
	return r.permissions
}

func (r *Role) CreatedBy() kernel.UUID {
	return r.createdBy
}

func (r *Role) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("role name")
	}
	r.name = name
	return nil
}

func (r *Role) setColor(colorHex string) error {
	colorHex = strings.TrimSpace(colorHex)
	if colorHex != "" && !colorHexPattern.MatchString(colorHex) {
		return errs.NewValueIsInvalidErrorWithCause("colorHex", fmt.Errorf("%q is not #RRGGBB", colorHex))
	}
	r.colorHex = strings.ToUpper(colorHex)
	return nil
}
