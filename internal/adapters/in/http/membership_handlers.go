package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RequestJoin handles POST /api/v1/join-requests.
func (s *Server) RequestJoin(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req JoinRequestRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRequestJoinCommand(userID, req.JoinCode)
	if err != nil {
		return s.fail(c, err)
	}
	joinRequest, err := s.h.RequestJoin.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, JoinRequest{
		StoreID:     joinRequest.StoreID().String(),
		UserID:      joinRequest.UserID().String(),
		RequestedAt: joinRequest.RequestedAt(),
	})
}

// CreateRole handles POST /api/v1/stores/:storeId/roles.
func (s *Server) CreateRole(c echo.Context) error {
	ownerID, err := caller(c)
	if err != nil {
		return s.fail(c, err)
	}
	storeID, err := pathUUID(c, "storeId")
	if err != nil {
		return s.fail(c, err)
	}

	var req RoleRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCreateRoleCommand(ownerID, storeID, req.Name, req.Description, req.ColorHex, req.Permissions)
	if err != nil {
		return s.fail(c, err)
	}
	role, err := s.h.CreateRole.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, roleFrom(role))
}

// ApproveWorker handles POST /api/v1/stores/:storeId/workers/:userId/approve.
func (s *Server) ApproveWorker(c echo.Context) error {
	ownerID, storeID, userID, err := workerPath(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewApproveWorkerCommand(ownerID, storeID, userID)
	if err != nil {
		return s.fail(c, err)
	}
	membership, err := s.h.ApproveWorker.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, membershipFrom(membership))
}

// AssignRole handles PUT /api/v1/stores/:storeId/workers/:userId/role.
func (s *Server) AssignRole(c echo.Context) error {
	ownerID, storeID, userID, err := workerPath(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req AssignRoleRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	var roleID *kernel.UUID
	if req.RoleID != nil {
		id, parseErr := kernel.UUIDFromString(*req.RoleID)
		if parseErr != nil {
			return s.fail(c, errs.NewValueIsInvalidErrorWithCause("roleId", parseErr))
		}
		roleID = &id
	}

	cmd, err := commands.NewAssignRoleCommand(ownerID, storeID, userID, roleID)
	if err != nil {
		return s.fail(c, err)
	}
	membership, err := s.h.AssignRole.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, membershipFrom(membership))
}

// RemoveWorker handles DELETE /api/v1/stores/:storeId/workers/:userId.
func (s *Server) RemoveWorker(c echo.Context) error {
	ownerID, storeID, userID, err := workerPath(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRemoveWorkerCommand(ownerID, storeID, userID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.RemoveWorker.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func workerPath(c echo.Context) (ownerID, storeID, userID kernel.UUID, err error) {
	if ownerID, err = caller(c); err != nil {
		return
	}
	if storeID, err = pathUUID(c, "storeId"); err != nil {
		return
	}
	userID, err = pathUUID(c, "userId")
	return
}
