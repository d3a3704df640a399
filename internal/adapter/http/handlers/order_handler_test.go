package handlers

import (
	"bytes"
	"context"
	"encoding/json"
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

func orderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders", h.CreateOrder)
	r.GET("/v1/orders/:order_id", h.GetOrder)
	r.POST("/v1/orders/:order_id/budget-lines", h.AddBudgetLine)
	r.GET("/v1/orders/:order_id/budget-lines", h.ListBudgetLines)
	r.PATCH("/v1/orders/:order_id/budget-lines/:line_id/approve", h.ApproveBudgetLine)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing vehicle id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"owner_id":"own-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.CreateOrderCommand) (entities.Order, error) {
				if cmd.OwnerID != "own-1" || cmd.VehicleID != "veh-1" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Order{
					ID: "ord-1", Folio: "OT-1A2B3C4D", OwnerID: cmd.OwnerID, VehicleID: cmd.VehicleID,
					Status: entities.OrderStatusReception, PaymentStatus: entities.PaymentStatusPending,
				}, nil
			})
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"owner_id":"own-1","vehicle_id":"veh-1"}`))
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
		if resp["folio"] != "OT-1A2B3C4D" || resp["total"] != "0.00" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("unknown owner maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrOwnerNotFound)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"owner_id":"own-x","vehicle_id":"veh-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().GetOrder(gomock.Any(), "ord-x").Return(entities.Order{}, usecase.ErrOrderNotFound)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("ok with money as fixed strings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		total, _ := decimal.NewFromString("1044")
		paid, _ := decimal.NewFromString("500")
		uc.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(entities.Order{
			ID: "ord-1", Total: total, AmountPaid: paid, PaymentStatus: entities.PaymentStatusPartial,
		}, nil)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["total"] != "1044.00" || resp["amount_paid"] != "500.00" || resp["payment_status"] != "partial" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestOrderHandler_AddBudgetLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		total, _ := decimal.NewFromString("1044")
		uc.EXPECT().
			AddBudgetLine(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.AddBudgetLineCommand) (entities.BudgetLine, error) {
				if cmd.OrderID != "ord-1" || cmd.Kind != entities.BudgetLineKindPart {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.BudgetLine{
					ID: "line-1", OrderID: cmd.OrderID, Kind: cmd.Kind, Description: cmd.Description,
					Quantity: cmd.Quantity, UnitPrice: cmd.UnitPrice, TaxRate: cmd.TaxRate,
					DiscountPct: cmd.DiscountPct, Total: total,
				}, nil
			})
		r := orderRouter(NewOrderHandler(uc))

		body := `{"kind":"part","description":"brake pads","quantity":"2","unit_price":"450","tax_rate":"0.16"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/budget-lines", bytes.NewBufferString(body))
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
		if resp["total"] != "1044.00" || resp["approved"] != false {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("negative quantity maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().AddBudgetLine(gomock.Any(), gomock.Any()).Return(entities.BudgetLine{}, entities.ErrNegativeQuantity)
		r := orderRouter(NewOrderHandler(uc))

		body := `{"kind":"part","description":"brake pads","quantity":"-2","unit_price":"450"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/budget-lines", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ApproveBudgetLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().ApproveBudgetLine(gomock.Any(), "ord-1", "line-1").
			Return(entities.BudgetLine{ID: "line-1", OrderID: "ord-1", Approved: true}, nil)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/budget-lines/line-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["approved"] != true {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("line not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().ApproveBudgetLine(gomock.Any(), "ord-1", "line-x").
			Return(entities.BudgetLine{}, usecase.ErrBudgetLineNotFound)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/budget-lines/line-x/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("write conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().ApproveBudgetLine(gomock.Any(), "ord-1", "line-1").
			Return(entities.BudgetLine{}, usecase.ErrOrderWriteConflict)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/budget-lines/line-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
