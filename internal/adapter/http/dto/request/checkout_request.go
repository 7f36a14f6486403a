package request

import (
	"strings"

	"agroclima_portal/internal/domain/entities"
)

// PreferenceRequest is the payload for one-time checkout creation.
type PreferenceRequest struct {
	Amount            float64 `json:"amount"`
	Description       string  `json:"description"`
	PayerEmail        string  `json:"payer_email"`
	ExternalReference string  `json:"external_reference"`
	Sessions          int     `json:"sessions"`
}

func (r PreferenceRequest) ToOrder() entities.PreferenceOrder {
	return entities.PreferenceOrder{
		Amount:            r.Amount,
		Description:       strings.TrimSpace(r.Description),
		PayerEmail:        strings.TrimSpace(r.PayerEmail),
		ExternalReference: strings.TrimSpace(r.ExternalReference),
		Sessions:          r.Sessions,
	}
}

// PreapprovalRequest is the payload for subscription checkout creation.
type PreapprovalRequest struct {
	PlanID            string `json:"plan_id"`
	PayerEmail        string `json:"payer_email"`
	Reason            string `json:"reason"`
	ExternalReference string `json:"external_reference"`
	BackURL           string `json:"back_url"`
}

func (r PreapprovalRequest) ToOrder() entities.PreapprovalOrder {
	return entities.PreapprovalOrder{
		PlanID:            strings.TrimSpace(r.PlanID),
		PayerEmail:        strings.TrimSpace(r.PayerEmail),
		Reason:            strings.TrimSpace(r.Reason),
		ExternalReference: strings.TrimSpace(r.ExternalReference),
		BackURL:           strings.TrimSpace(r.BackURL),
	}
}
