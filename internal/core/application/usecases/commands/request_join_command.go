package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestJoinCommandIsNotConstructed = errors.New(
	"RequestJoinCommand must be created via NewRequestJoinCommand constructor",
)

// RequestJoinCommand is a worker asking to join the store that handed out joinCode.
type RequestJoinCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	joinCode string

	guard guard.ConstructorGuard
}

func NewRequestJoinCommand(userID kernel.UUID, joinCode string) (RequestJoinCommand, error) {
	joinCode = strings.ToUpper(strings.TrimSpace(joinCode))

	var codeErr error
	if joinCode == "" {
		codeErr = errs.NewValueIsRequiredError("joinCode")
	}
	if err := errors.Join(userID.Validate(), codeErr); err != nil {
		return RequestJoinCommand{}, err
	}

	return RequestJoinCommand{
		userID:   userID,
		joinCode: joinCode,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RequestJoinCommand) Validate() error {
	return c.guard.Validate(ErrRequestJoinCommandIsNotConstructed)
}

func (c RequestJoinCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RequestJoinCommand) JoinCode() string {
	return c.joinCode
}
