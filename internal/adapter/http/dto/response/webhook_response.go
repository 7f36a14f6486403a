package response

// WebhookMeta echoes the event identity extracted from the delivery, for
// observability on the provider side.
type WebhookMeta struct {
	Topic     string `json:"topic"`
	ID        string `json:"id,omitempty"`
	Signature bool   `json:"signature"`
	RequestID string `json:"requestId,omitempty"`
}

// WebhookAck is the unconditional success acknowledgment. Resource holds
// the fetched provider resource, an error sentinel, or nothing.
type WebhookAck struct {
	OK       bool         `json:"ok"`
	Meta     *WebhookMeta `json:"meta,omitempty"`
	Resource any          `json:"resource,omitempty"`
}
