package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller360/internal/adapter/http/handlers/mocks"
	"taller360/internal/domain/entities"
	"taller360/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func notificationRouter(h *NotificationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/messages", h.SendMessage)
	r.GET("/v1/messages/:message_id", h.GetMessage)
	r.GET("/v1/owners/:owner_id/messages", h.ListMessagesByOwner)
	r.POST("/v1/templates", h.CreateTemplate)
	r.GET("/v1/templates", h.ListTemplates)
	return r
}

func TestNotificationHandler_SendMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := notificationRouter(NewNotificationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/messages", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing template id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := notificationRouter(NewNotificationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/messages", bytes.NewBufferString(`{"owner_id":"own-1"}`))
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
		uc := mocks.NewMockINotificationUseCase(ctrl)
		uc.EXPECT().
			SendMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.SendMessageCommand) (entities.WhatsAppMessage, error) {
				if cmd.OwnerID != "own-1" || cmd.TemplateID != "tpl-1" || cmd.Variables["folio"] != "OT-1A2B3C4D" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.WhatsAppMessage{
					ID: "msg-1", OwnerID: cmd.OwnerID, TemplateID: cmd.TemplateID,
					Status: entities.MessageStatusSent, ExternalID: "SM123",
				}, nil
			})
		r := notificationRouter(NewNotificationHandler(uc))

		body := `{"owner_id":"own-1","template_id":"tpl-1","variables":{"folio":"OT-1A2B3C4D"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/messages", bytes.NewBufferString(body))
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
		if resp["status"] != "sent" || resp["external_id"] != "SM123" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("consent required maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		uc.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(entities.WhatsAppMessage{}, usecase.ErrConsentRequired)
		r := notificationRouter(NewNotificationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/messages", bytes.NewBufferString(`{"owner_id":"own-1","template_id":"tpl-1"}`))
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
		if resp["code"] != "CONSENT_REQUIRED" {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})

	t.Run("inactive template maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		uc.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(entities.WhatsAppMessage{}, usecase.ErrTemplateInactive)
		r := notificationRouter(NewNotificationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/messages", bytes.NewBufferString(`{"owner_id":"own-1","template_id":"tpl-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("channel failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		uc.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
			Return(entities.WhatsAppMessage{ID: "msg-1", Status: entities.MessageStatusFailed},
				fmt.Errorf("%w: twilio 63016", usecase.ErrChannelSend))
		r := notificationRouter(NewNotificationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/messages", bytes.NewBufferString(`{"owner_id":"own-1","template_id":"tpl-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["code"] != "CHANNEL_ERROR" {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})
}

func TestNotificationHandler_GetMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		uc.EXPECT().GetMessageByID(gomock.Any(), "msg-x").Return(entities.WhatsAppMessage{}, usecase.ErrMessageNotFound)
		r := notificationRouter(NewNotificationHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/messages/msg-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		uc.EXPECT().GetMessageByID(gomock.Any(), "msg-1").Return(entities.WhatsAppMessage{
			ID: "msg-1", Status: entities.MessageStatusDelivered,
		}, nil)
		r := notificationRouter(NewNotificationHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/messages/msg-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["status"] != "delivered" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestNotificationHandler_Templates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		uc.EXPECT().
			CreateTemplate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.CreateTemplateCommand) (entities.WhatsAppTemplate, error) {
				return entities.WhatsAppTemplate{ID: "tpl-1", Name: cmd.Name, Content: cmd.Content, Active: true}, nil
			})
		r := notificationRouter(NewNotificationHandler(uc))

		body := `{"name":"order_ready","content":"Hola {{owner_name}}"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/templates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list templates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		uc.EXPECT().ListTemplates(gomock.Any()).Return([]entities.WhatsAppTemplate{
			{ID: "tpl-1", Name: "order_ready", Active: true},
		}, nil)
		r := notificationRouter(NewNotificationHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if len(resp) != 1 || resp[0]["name"] != "order_ready" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestNotificationHandler_ListMessagesByOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	uc.EXPECT().ListMessagesByOwnerID(gomock.Any(), "own-1").Return([]entities.WhatsAppMessage{
		{ID: "msg-1", OwnerID: "own-1", Status: entities.MessageStatusRead},
	}, nil)
	r := notificationRouter(NewNotificationHandler(uc))

	req := httptest.NewRequest(http.MethodGet, "/v1/owners/own-1/messages", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(resp) != 1 || resp[0]["status"] != "read" {
		t.Fatalf("unexpected response: %v", resp)
	}
}
