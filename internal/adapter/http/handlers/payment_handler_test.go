package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller360/internal/adapter/http/handlers/mocks"
	"taller360/internal/domain/entities"
	"taller360/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders/:order_id/payments", h.RecordPayment)
	r.GET("/v1/orders/:order_id/payments", h.ListPaymentsByOrderID)
	return r
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing amount rejected at binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", bytes.NewBufferString(`{"method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["code"] != "INVALID_PAYMENT_INPUT" {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		amount, _ := decimal.NewFromString("150.50")
		uc.EXPECT().
			RecordPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.RecordPaymentCommand) (entities.Payment, error) {
				if cmd.OrderID != "ord-1" {
					t.Fatalf("expected order id from path, got %q", cmd.OrderID)
				}
				if !cmd.Amount.Equal(amount) || cmd.Method != entities.PaymentMethodCard {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Payment{ID: "pay-1", OrderID: cmd.OrderID, Amount: cmd.Amount, Method: cmd.Method}, nil
			})
		r := paymentRouter(NewPaymentHandler(uc))

		body := `{"amount":"150.50","method":"card","reference_number":"AUTH-42"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["id"] != "pay-1" || resp["amount"] != "150.50" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("overpayment rejected maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrOverpaymentRejected)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", bytes.NewBufferString(`{"amount":"10","method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["code"] != "OVERPAYMENT_REJECTED" {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})

	t.Run("order not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrOrderNotFound)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-x/payments", bytes.NewBufferString(`{"amount":"10","method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("write conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrOrderWriteConflict)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", bytes.NewBufferString(`{"amount":"10","method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("dynamodb down"))
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", bytes.NewBufferString(`{"amount":"10","method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListPaymentsByOrderID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		amount, _ := decimal.NewFromString("100")
		uc.EXPECT().ListPaymentsByOrderID(gomock.Any(), "ord-1").Return([]entities.Payment{
			{ID: "pay-1", OrderID: "ord-1", Amount: amount, Method: entities.PaymentMethodCash},
		}, nil)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if len(resp) != 1 || resp[0]["id"] != "pay-1" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("empty list stays a json array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		uc.EXPECT().ListPaymentsByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})
}
