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
	"go.uber.org/mock/gomock"
)

func ownerRouter(h *OwnerHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/owners", h.CreateOwner)
	r.GET("/v1/owners/:owner_id", h.GetOwner)
	return r
}

func TestOwnerHandler_CreateOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOwnerUseCase(ctrl)
		r := ownerRouter(NewOwnerHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/owners", bytes.NewBufferString(`{"name":"Ana"}`))
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
		uc := mocks.NewMockIOwnerUseCase(ctrl)
		uc.EXPECT().
			CreateOwner(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.CreateOwnerCommand) (entities.Owner, error) {
				if !cmd.WhatsAppConsent {
					t.Fatal("expected consent flag to bind")
				}
				return entities.Owner{ID: "own-1", Name: cmd.Name, Phone: cmd.Phone, WhatsAppConsent: true}, nil
			})
		r := ownerRouter(NewOwnerHandler(uc))

		body := `{"name":"Ana","phone":"+5215512345678","whatsapp_consent":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/owners", bytes.NewBufferString(body))
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
		if resp["id"] != "own-1" || resp["whatsapp_consent"] != true {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestOwnerHandler_GetOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOwnerUseCase(ctrl)
		uc.EXPECT().GetOwner(gomock.Any(), "own-x").Return(entities.Owner{}, usecase.ErrOwnerNotFound)
		r := ownerRouter(NewOwnerHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/owners/own-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOwnerUseCase(ctrl)
		uc.EXPECT().GetOwner(gomock.Any(), "own-1").Return(entities.Owner{ID: "own-1", Name: "Ana", Phone: "+521"}, nil)
		r := ownerRouter(NewOwnerHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/owners/own-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
