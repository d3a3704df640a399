package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "taller360/internal/adapter/http/dto/request"
	response "taller360/internal/adapter/http/dto/response"
	"taller360/internal/domain/entities"
	"taller360/internal/usecase"
	"taller360/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for the order ledger.

type PaymentHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewPaymentHandler(uc usecase.ILedgerUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RecordPayment registers a payment against the order in the path and returns
// the created payment. The order's amount_paid/payment_status are updated in
// the same store transaction.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[ledger][handler] record start order_id=%s", orderID)

	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[ledger][handler] invalid payload order_id=%s err=%v", orderID, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	var paymentDate time.Time
	if payload.PaymentDate != nil {
		paymentDate = *payload.PaymentDate
	}

	p, err := h.usecase.RecordPayment(c.Request.Context(), usecase.RecordPaymentCommand{
		OrderID:          orderID,
		Amount:           *payload.Amount,
		Method:           entities.PaymentMethod(payload.Method),
		ReferenceNumber:  payload.ReferenceNumber,
		Notes:            payload.Notes,
		PaymentDate:      paymentDate,
		AllowOverpayment: payload.AllowOverpayment,
	})
	if err != nil {
		log.Printf("[ledger][handler] record failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[ledger][handler] record success order_id=%s payment_id=%s amount=%s", orderID, p.ID, p.Amount)

	c.JSON(http.StatusCreated, response.FromPayment(p))
}

func (h *PaymentHandler) ListPaymentsByOrderID(c *gin.Context) {
	payments, err := h.usecase.ListPaymentsByOrderID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOverpaymentRejected):
		return pkg.NewDomainErrorSimple("OVERPAYMENT_REJECTED", "Payment exceeds order total; confirm overpayment explicitly", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderWriteConflict):
		return pkg.NewDomainErrorSimple("ORDER_WRITE_CONFLICT", "Order was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
