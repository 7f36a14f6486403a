package handlers

import (
	"errors"
	"log"
	"net/http"

	request "agroclima_portal/internal/adapter/http/dto/request"
	response "agroclima_portal/internal/adapter/http/dto/response"
	"agroclima_portal/internal/usecase"
	"agroclima_portal/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler handles local user-profile requests.

type UserHandler struct {
	usecase usecase.IUserSyncUseCase
}

func NewUserHandler(uc usecase.IUserSyncUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// SyncUser resynchronizes the local user row from the legacy backend.
func (h *UserHandler) SyncUser(c *gin.Context) {
	var payload request.UserSyncRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	user, err := h.usecase.SyncFromLegacy(c.Request.Context(), payload.Email)
	if err != nil {
		log.Printf("[user][handler] sync failed login=%s err=%v", payload.Email, err)
		appErr := mapUserSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[user][handler] sync success login=%s user_id=%d", user.Login, user.ID)

	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapUserSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSyncEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLegacyUserMissing):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found on legacy backend", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
