package entities

// PreferenceOrder is a one-time checkout request sent to Mercado Pago.
// ExternalReference carries the correlation string the webhook later
// parses ("email|plan=...|sessions=N").
type PreferenceOrder struct {
	Amount            float64 `json:"amount"`
	Description       string  `json:"description"`
	PayerEmail        string  `json:"payer_email,omitempty"`
	ExternalReference string  `json:"external_reference,omitempty"`
	Sessions          int     `json:"sessions,omitempty"`
}

// PreferenceResult is the provider's answer to a preference creation.
type PreferenceResult struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

// PreapprovalOrder is a subscription checkout request.
type PreapprovalOrder struct {
	PlanID            string `json:"plan_id"`
	PayerEmail        string `json:"payer_email"`
	Reason            string `json:"reason,omitempty"`
	ExternalReference string `json:"external_reference,omitempty"`
	BackURL           string `json:"back_url,omitempty"`
}

// PreapprovalResult is the provider's answer to a preapproval creation.
type PreapprovalResult struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	InitPoint string `json:"init_point"`
}
