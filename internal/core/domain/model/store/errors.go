package store

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
)

var (
	// ErrUnauthorized means the caller's stages do not cover the requested action.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPendingRoleAssignment means the caller is a member without a role yet.
	// It is an expected, transient condition and never reported as ErrUnauthorized.
	ErrPendingRoleAssignment = errors.New("pending role assignment")
)

// UnauthorizedError names the stage the caller was missing.
type UnauthorizedError struct {
	UserID   kernel.UUID
	StoreID  kernel.UUID
	Required Stage
}

func NewUnauthorizedError(userID, storeID kernel.UUID, required Stage) *UnauthorizedError {
	return &UnauthorizedError{UserID: userID, StoreID: storeID, Required: required}
}

func (e *UnauthorizedError) Error() string {
	if e.Required == StageUnknown {
		return fmt.Sprintf("%s: user %s has no access to store %s", ErrUnauthorized, e.UserID, e.StoreID)
	}
	return fmt.Sprintf("%s: user %s lacks stage %s at store %s", ErrUnauthorized, e.UserID, e.Required, e.StoreID)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

type PendingRoleAssignmentError struct {
	UserID  kernel.UUID
	StoreID kernel.UUID
}

func NewPendingRoleAssignmentError(userID, storeID kernel.UUID) *PendingRoleAssignmentError {
	return &PendingRoleAssignmentError{UserID: userID, StoreID: storeID}
}

func (e *PendingRoleAssignmentError) Error() string {
	return fmt.Sprintf("%s: user %s waits for the owner of store %s to assign a role",
		ErrPendingRoleAssignment, e.UserID, e.StoreID)
}

func (e *PendingRoleAssignmentError) Unwrap() error {
	return ErrPendingRoleAssignment
}
