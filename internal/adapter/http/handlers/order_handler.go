package handlers

import (
	"errors"
	"net/http"

	request "taller360/internal/adapter/http/dto/request"
	response "taller360/internal/adapter/http/dto/response"
	"taller360/internal/domain/entities"
	"taller360/internal/usecase"
	"taller360/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for work orders and their budgets.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), usecase.CreateOrderCommand{
		OwnerID:        payload.OwnerID,
		VehicleID:      payload.VehicleID,
		CommitmentDate: payload.CommitmentDate,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) AddBudgetLine(c *gin.Context) {
	var payload request.AddBudgetLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	line, err := h.usecase.AddBudgetLine(c.Request.Context(), usecase.AddBudgetLineCommand{
		OrderID:     c.Param("order_id"),
		Kind:        entities.BudgetLineKind(payload.Kind),
		Description: payload.Description,
		Quantity:    payload.Quantity,
		UnitPrice:   payload.UnitPrice,
		TaxRate:     payload.TaxRate,
		DiscountPct: payload.DiscountPct,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudgetLine(line))
}

func (h *OrderHandler) ApproveBudgetLine(c *gin.Context) {
	line, err := h.usecase.ApproveBudgetLine(c.Request.Context(), c.Param("order_id"), c.Param("line_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetLine(line))
}

func (h *OrderHandler) ListBudgetLines(c *gin.Context) {
	lines, err := h.usecase.ListBudgetLines(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetLines(lines))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidBudgetLineID),
		errors.Is(err, usecase.ErrInvalidBudgetLineKind),
		errors.Is(err, usecase.ErrInvalidLineDescription),
		errors.Is(err, entities.ErrNegativeQuantity),
		errors.Is(err, entities.ErrNegativeUnitPrice),
		errors.Is(err, entities.ErrTaxRateOutOfRange),
		errors.Is(err, entities.ErrDiscountOutOfRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOwnerNotFound):
		return pkg.NewDomainErrorSimple("OWNER_NOT_FOUND", "Owner not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetLineNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_LINE_NOT_FOUND", "Budget line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderWriteConflict):
		return pkg.NewDomainErrorSimple("ORDER_WRITE_CONFLICT", "Order was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
