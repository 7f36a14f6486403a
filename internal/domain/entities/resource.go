package entities

// Topic is Mercado Pago's classification of a webhook event.
//
// The provider is inconsistent about naming: subscriptions arrive both as
// "preapproval" and "subscription_preapproval", recurring charges both as
// "authorized_payment" and "subscription_authorized_payment". ParseTopic
// folds the aliases.

type Topic string

const (
	TopicPayment           Topic = "payment"
	TopicPreapproval       Topic = "preapproval"
	TopicAuthorizedPayment Topic = "authorized_payment"
	TopicUnknown           Topic = "unknown"
)

func ParseTopic(raw string) Topic {
	switch raw {
	case "payment":
		return TopicPayment
	case "preapproval", "subscription_preapproval":
		return TopicPreapproval
	case "authorized_payment", "subscription_authorized_payment":
		return TopicAuthorizedPayment
	default:
		return TopicUnknown
	}
}

// OneTimePayment is a checkout payment fetched from /v1/payments/{id}.
type OneTimePayment struct {
	ID                string         `json:"id"`
	Status            string         `json:"status"`
	Amount            float64        `json:"transaction_amount"`
	Currency          string         `json:"currency_id"`
	PayerEmail        string         `json:"payer_email,omitempty"`
	ExternalReference string         `json:"external_reference,omitempty"`
	PreferenceID      string         `json:"preference_id,omitempty"`
	OrderID           string         `json:"order_id,omitempty"`
	Description       string         `json:"description,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// PreapprovalResource is a subscription authorization fetched from
// /preapproval/{id}.
type PreapprovalResource struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	PayerEmail        string `json:"payer_email,omitempty"`
	ExternalReference string `json:"external_reference,omitempty"`
	Reason            string `json:"reason,omitempty"`
}

// AuthorizedCharge is a recurring charge fetched from
// /authorized_payments/{id}. The charge itself usually lacks payer data;
// PreapprovalID points at the parent subscription that carries it.
type AuthorizedCharge struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	Amount        float64 `json:"transaction_amount"`
	Currency      string  `json:"currency_id"`
	PreapprovalID string  `json:"preapproval_id,omitempty"`
}

// PaymentResource is the tagged union of the three resource shapes the
// provider can deliver. Exactly the variant matching Topic is set.
type PaymentResource struct {
	Topic            Topic                `json:"topic"`
	OneTime          *OneTimePayment      `json:"payment,omitempty"`
	Preapproval      *PreapprovalResource `json:"preapproval,omitempty"`
	AuthorizedCharge *AuthorizedCharge    `json:"authorized_payment,omitempty"`
}

// Empty reports whether no variant was fetched for the event.
func (r PaymentResource) Empty() bool {
	return r.OneTime == nil && r.Preapproval == nil && r.AuthorizedCharge == nil
}
