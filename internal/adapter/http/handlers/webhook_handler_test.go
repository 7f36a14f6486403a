package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agroclima_portal/internal/adapter/http/handlers/mocks"
	"agroclima_portal/internal/domain/entities"
	"agroclima_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type stubValidator struct {
	enabled bool
	valid   bool
	gotID   string
}

func (s *stubValidator) Enabled() bool { return s.enabled }
func (s *stubValidator) Validate(_, _, dataID string) bool {
	s.gotID = dataID
	return s.valid
}

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/webhook/mercadopago", h.Receive)
	r.GET("/webhook/mercadopago", h.Liveness)
	return r
}

func TestWebhookHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query parameters win", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc, nil)
		r := newWebhookRouter(h)

		uc.EXPECT().ProcessNotification(gomock.Any(), entities.TopicPayment, "123").Return(entities.PaymentResource{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/webhook/mercadopago?type=payment&data.id=123", bytes.NewBufferString(`{"type":"preapproval","data":{"id":"999"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("identity read from body when query absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc, nil)
		r := newWebhookRouter(h)

		uc.EXPECT().ProcessNotification(gomock.Any(), entities.TopicPreapproval, "pre-77").Return(entities.PaymentResource{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/webhook/mercadopago", bytes.NewBufferString(`{"type":"subscription_preapproval","data":{"id":"pre-77"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("numeric body id accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc, nil)
		r := newWebhookRouter(h)

		uc.EXPECT().ProcessNotification(gomock.Any(), entities.TopicPayment, "900111").Return(entities.PaymentResource{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/webhook/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":900111}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed body still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc, nil)
		r := newWebhookRouter(h)

		uc.EXPECT().ProcessNotification(gomock.Any(), entities.TopicUnknown, "").Return(entities.PaymentResource{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/webhook/mercadopago", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("fetch failure still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc, nil)
		r := newWebhookRouter(h)

		uc.EXPECT().ProcessNotification(gomock.Any(), entities.TopicPayment, "123").Return(entities.PaymentResource{}, usecase.ErrResourceFetchFailed)

		req := httptest.NewRequest(http.MethodPost, "/webhook/mercadopago?type=payment&id=123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var ack map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
			t.Fatalf("invalid ack body: %v", err)
		}
		if ack["ok"] != true {
			t.Fatalf("expected ok ack, got %v", ack)
		}
		resource, _ := ack["resource"].(map[string]any)
		if resource["error"] != "failed to fetch resource" {
			t.Fatalf("expected fetch error marker, got %v", ack["resource"])
		}
	})

	t.Run("invalid signature skips processing but acknowledges", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		validator := &stubValidator{enabled: true, valid: false}
		h := NewWebhookHandler(uc, validator)
		r := newWebhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/webhook/mercadopago?type=payment&data.id=123", nil)
		req.Header.Set("x-signature", "ts=1,v1=bad")
		req.Header.Set("x-request-id", "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if validator.gotID != "123" {
			t.Fatalf("expected validator to see data.id, got %q", validator.gotID)
		}
	})

	t.Run("valid signature processes normally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		validator := &stubValidator{enabled: true, valid: true}
		h := NewWebhookHandler(uc, validator)
		r := newWebhookRouter(h)

		uc.EXPECT().ProcessNotification(gomock.Any(), entities.TopicPayment, "123").Return(entities.PaymentResource{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/webhook/mercadopago?type=payment&data.id=123", nil)
		req.Header.Set("x-signature", "ts=1,v1=good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewWebhookHandler(nil, nil)
	r := newWebhookRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/webhook/mercadopago", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
