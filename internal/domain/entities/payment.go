package entities

import (
	"strings"
	"time"
)

// PaymentStatus is the canonical status of a ledger row.
//
// Mercado Pago reports a handful of provider-specific synonyms
// ("processed", "canceled", ...). NormalizeStatus folds those onto this
// set; anything unrecognized is treated as pending so redelivery can
// settle it later.

type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusApproved    PaymentStatus = "approved"
	PaymentStatusAuthorized  PaymentStatus = "authorized"
	PaymentStatusInProcess   PaymentStatus = "in_process"
	PaymentStatusRejected    PaymentStatus = "rejected"
	PaymentStatusRefunded    PaymentStatus = "refunded"
	PaymentStatusChargedBack PaymentStatus = "charged_back"
	PaymentStatusCancelled   PaymentStatus = "cancelled"
)

// NormalizeStatus maps a raw provider status onto the canonical set.
func NormalizeStatus(raw string) PaymentStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "processed":
		return PaymentStatusApproved
	case "canceled":
		return PaymentStatusCancelled
	case "pending", "approved", "authorized", "in_process", "rejected", "refunded", "charged_back", "cancelled":
		return PaymentStatus(s)
	default:
		return PaymentStatusPending
	}
}

// Payment is the internal ledger row for a Mercado Pago resource.
//
// Storage model (DynamoDB):
//   - PK: id (internal uuid)
//   - GSI1 (payment_id-index): payment_id
//   - GSI2 (preference_id-index): preference_id
//
// PaymentID uniquely identifies one row; redelivery of the same provider
// event updates it in place. Rows pre-created at checkout time carry only
// PreferenceID until the first webhook enriches them.
type Payment struct {
	ID                string         `json:"id"`
	PaymentID         string         `json:"payment_id"`
	Status            PaymentStatus  `json:"status"`
	Amount            float64        `json:"amount"`
	Currency          string         `json:"currency"`
	PayerEmail        string         `json:"payer_email,omitempty"`
	ExternalReference string         `json:"external_reference,omitempty"`
	PreferenceID      string         `json:"preference_id,omitempty"`
	OrderID           string         `json:"order_id,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	PerformedAt       time.Time      `json:"performed_at,omitempty"`
}

// MergeMetadata unions extra into the row's metadata bag. New keys win;
// the existing bag is never replaced wholesale.
func (p *Payment) MergeMetadata(extra map[string]any) {
	if len(extra) == 0 {
		return
	}
	if p.Metadata == nil {
		p.Metadata = make(map[string]any, len(extra))
	}
	for k, v := range extra {
		p.Metadata[k] = v
	}
}
