package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	response "agroclima_portal/internal/adapter/http/dto/response"
	"agroclima_portal/internal/domain/entities"
	"agroclima_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SignatureValidator verifies the x-signature header on webhook
// deliveries when a webhook secret is configured.
type SignatureValidator interface {
	Enabled() bool
	Validate(xSignature, xRequestID, dataID string) bool
}

// WebhookHandler receives Mercado Pago notifications.
//
// The provider is inconsistent about where it puts the event identity
// (query vs body, "type" vs "topic", "id" vs "data.id"), and its retry
// semantics are coarse: anything but a 200 causes full redelivery. The
// handler therefore tolerates malformed input and always acknowledges.

type WebhookHandler struct {
	usecase   usecase.IWebhookUseCase
	validator SignatureValidator
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, validator SignatureValidator) *WebhookHandler {
	return &WebhookHandler{usecase: uc, validator: validator}
}

// Receive handles POST deliveries.
func (h *WebhookHandler) Receive(c *gin.Context) {
	xSignature := c.GetHeader("x-signature")
	requestID := c.GetHeader("x-request-id")

	// A malformed body is treated as an empty object.
	var body map[string]any
	if raw, err := c.GetRawData(); err == nil && len(raw) > 0 {
		if uerr := json.Unmarshal(raw, &body); uerr != nil {
			log.Printf("[webhook][handler] ignoring malformed body err=%v", uerr)
			body = nil
		}
	}

	topic := firstNonEmpty(
		c.Query("type"),
		c.Query("topic"),
		stringField(body, "topic"),
		stringField(body, "type"),
	)
	if topic == "" {
		topic = "unknown"
	}

	id := firstNonEmpty(
		c.Query("id"),
		c.Query("data.id"),
		stringField(mapField(body, "data"), "id"),
		stringField(body, "id"),
	)

	meta := &response.WebhookMeta{
		Topic:     topic,
		ID:        id,
		Signature: xSignature != "",
		RequestID: requestID,
	}
	log.Printf("[webhook][handler] delivery received topic=%s id=%s signature=%t request_id=%s", topic, id, meta.Signature, requestID)

	if h.validator != nil && h.validator.Enabled() && !h.validator.Validate(xSignature, requestID, id) {
		// Untrusted payload: skip reconciliation but still acknowledge so
		// the provider does not retry indefinitely.
		log.Printf("[webhook][handler] signature validation failed topic=%s id=%s request_id=%s", topic, id, requestID)
		c.JSON(http.StatusOK, response.WebhookAck{OK: true, Meta: meta})
		return
	}

	resource, err := h.usecase.ProcessNotification(c.Request.Context(), entities.ParseTopic(topic), id)

	ack := response.WebhookAck{OK: true, Meta: meta}
	switch {
	case err != nil:
		ack.Resource = map[string]string{"error": "failed to fetch resource"}
	case !resource.Empty():
		ack.Resource = resource
	}

	c.JSON(http.StatusOK, ack)
}

// Liveness handles GET probes some webhook testers use.
func (h *WebhookHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		// Numeric ids arrive as JSON numbers.
		return json.Number(jsonFloatString(v)).String()
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func mapField(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

func jsonFloatString(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}
