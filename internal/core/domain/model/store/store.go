package store

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore")

// Store carries what the workflow needs to know about a store: its owner,
// who implicitly holds Administrador, and the code workers join with.
type Store struct {
	id       kernel.UUID
	name     string
	ownerID  kernel.UUID
	joinCode string

	guard guard.ConstructorGuard
}

func NewStore(id kernel.UUID, name string, ownerID kernel.UUID, joinCode string) (*Store, error) {
	joinCode = strings.ToUpper(strings.TrimSpace(joinCode))

	var codeErr error
	if joinCode == "" {
		codeErr = errs.NewValueIsRequiredError("joinCode")
	}
	if err := errors.Join(id.Validate(), ownerID.Validate(), codeErr); err != nil {
		return nil, err
	}

	return &Store{
		id:       id,
		name:     strings.TrimSpace(name),
		ownerID:  ownerID,
		joinCode: joinCode,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name may be empty; reports show a placeholder instead.
func (s *Store) Name() string {
	return s.name
}

func (s *Store) OwnerID() kernel.UUID {
	return s.ownerID
}

func (s *Store) JoinCode() string {
	return s.joinCode
}

func (s *Store) IsOwner(userID kernel.UUID) bool {
	return s.ownerID.IsEqual(userID)
}
