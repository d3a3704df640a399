package handlers

import (
	"errors"
	"net/http"

	request "taller360/internal/adapter/http/dto/request"
	response "taller360/internal/adapter/http/dto/response"
	"taller360/internal/usecase"
	"taller360/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOwnerPayload = pkg.NewDomainErrorSimple("INVALID_OWNER_INPUT", "Invalid owner payload", http.StatusBadRequest)

// OwnerHandler handles HTTP requests for vehicle owners.

type OwnerHandler struct {
	usecase usecase.IOwnerUseCase
}

func NewOwnerHandler(uc usecase.IOwnerUseCase) *OwnerHandler {
	return &OwnerHandler{usecase: uc}
}

func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	var payload request.CreateOwnerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOwnerPayload.HTTPStatus, errInvalidOwnerPayload.ToHTTPError())
		return
	}

	owner, err := h.usecase.CreateOwner(c.Request.Context(), usecase.CreateOwnerCommand{
		Name:            payload.Name,
		Phone:           payload.Phone,
		Email:           payload.Email,
		WhatsAppConsent: payload.WhatsAppConsent,
	})
	if err != nil {
		appErr := mapOwnerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOwner(owner))
}

func (h *OwnerHandler) GetOwner(c *gin.Context) {
	owner, err := h.usecase.GetOwner(c.Request.Context(), c.Param("owner_id"))
	if err != nil {
		appErr := mapOwnerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOwner(owner))
}

func mapOwnerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidOwnerName),
		errors.Is(err, usecase.ErrInvalidOwnerPhone):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOwnerNotFound):
		return pkg.NewDomainErrorSimple("OWNER_NOT_FOUND", "Owner not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
