package handler

import (
	"net/http"

	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/response"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InvitationHandlerParams holds dependencies for InvitationHandler, injected by Fx.
type InvitationHandlerParams struct {
	fx.In

	InvitationUC usecase.InvitationUsecase
}

// InvitationHandler serves both the owner's and the invitee's side of invitations.
type InvitationHandler struct {
	invitationUC usecase.InvitationUsecase
}

// NewInvitationHandler is the constructor for InvitationHandler
func NewInvitationHandler(params InvitationHandlerParams) *InvitationHandler {
	return &InvitationHandler{invitationUC: params.InvitationUC}
}

type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Invite asks a registered user to join the owner's farm.
func (h *InvitationHandler) Invite(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req InviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invitation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	invitation, err := h.invitationUC.Invite(c.Request().Context(), actor.UID, req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, invitation)
}

// ListSent returns the invitations sent from the owner's farm.
func (h *InvitationHandler) ListSent(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	invitations, err := h.invitationUC.ListSent(c.Request().Context(), actor.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invitations)
}

// ListReceived returns the caller's pending invitations.
func (h *InvitationHandler) ListReceived(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	invitations, err := h.invitationUC.ListReceived(c.Request().Context(), actor.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invitations)
}

func (h *InvitationHandler) Accept(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invitation ID")
	}

	invitation, err := h.invitationUC.Accept(c.Request().Context(), actor.UID, invitationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invitation)
}

func (h *InvitationHandler) Decline(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invitation ID")
	}

	invitation, err := h.invitationUC.Decline(c.Request().Context(), actor.UID, invitationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invitation)
}

func (h *InvitationHandler) Revoke(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invitation ID")
	}

	if err := h.invitationUC.Revoke(c.Request().Context(), actor.UID, invitationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// InvitationQR returns the accept link of a pending invitation as a PNG.
func (h *InvitationHandler) InvitationQR(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invitation ID")
	}

	png, err := h.invitationUC.InvitationQR(c.Request().Context(), actor.UID, invitationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
