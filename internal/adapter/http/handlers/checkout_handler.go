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

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// CheckoutHandler handles checkout creation requests.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreatePreference creates a one-time checkout preference and pre-creates
// the pending ledger row the webhook later enriches.
func (h *CheckoutHandler) CreatePreference(c *gin.Context) {
	var payload request.PreferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CreatePreference(c.Request.Context(), payload.ToOrder())
	if err != nil {
		log.Printf("[checkout][handler] preference create failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] preference created preference_id=%s", result.ID)

	c.JSON(http.StatusOK, response.FromPreferenceResult(result))
}

// CreatePreapproval starts a subscription checkout.
func (h *CheckoutHandler) CreatePreapproval(c *gin.Context) {
	var payload request.PreapprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CreatePreapproval(c.Request.Context(), payload.ToOrder())
	if err != nil {
		log.Printf("[checkout][handler] preapproval create failed plan_id=%s err=%v", payload.PlanID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] preapproval created preapproval_id=%s", result.ID)

	c.JSON(http.StatusOK, response.FromPreapprovalResult(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutAmount), errors.Is(err, usecase.ErrMissingPreapprovalPlan):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Failed to create checkout on payment provider", err, http.StatusBadGateway)
	}
}
