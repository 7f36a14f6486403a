package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"agroclima_portal/internal/domain/entities"
	"agroclima_portal/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const defaultAPIBaseURL = "https://api.mercadopago.com"

// MercadoPagoGateway reads webhook resources and creates checkout
// resources on Mercado Pago.
//
// Preference creation goes through the official SDK. Resource reads go
// through authenticated raw HTTP keyed by topic: the preapproval and
// authorized-payment resources have no typed accessor we rely on, and the
// raw payment read exposes correlation fields (preference_id) the typed
// response does not.
type MercadoPagoGateway struct {
	accessToken string
	preferences preference.Client
	httpClient  *http.Client
	baseURL     string
}

var _ interfaces.IResourceFetcher = (*MercadoPagoGateway)(nil)
var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		accessToken: accessToken,
		preferences: preference.NewClient(cfg),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     defaultAPIBaseURL,
	}, nil
}

// WithBaseURL points the raw reads at a different API host. Used by tests.
func (g *MercadoPagoGateway) WithBaseURL(baseURL string) *MercadoPagoGateway {
	g.baseURL = strings.TrimSuffix(baseURL, "/")
	return g
}

type paymentPayload struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	TransactionAmount float64     `json:"transaction_amount"`
	CurrencyID        string      `json:"currency_id"`
	Description       string      `json:"description"`
	ExternalReference string      `json:"external_reference"`
	PreferenceID      string      `json:"preference_id"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
	Order struct {
		ID json.Number `json:"id"`
	} `json:"order"`
	Metadata map[string]any `json:"metadata"`
}

type preapprovalPayload struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	PayerEmail        string `json:"payer_email"`
	ExternalReference string `json:"external_reference"`
	Reason            string `json:"reason"`
}

type authorizedPaymentPayload struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	TransactionAmount float64     `json:"transaction_amount"`
	CurrencyID        string      `json:"currency_id"`
	PreapprovalID     string      `json:"preapproval_id"`
}

// FetchResource reads the authoritative resource behind a webhook event.
func (g *MercadoPagoGateway) FetchResource(ctx context.Context, topic entities.Topic, id string) (entities.PaymentResource, error) {
	resource := entities.PaymentResource{Topic: topic}

	switch topic {
	case entities.TopicPayment:
		var p paymentPayload
		if err := g.doGet(ctx, "/v1/payments/"+id, &p); err != nil {
			return entities.PaymentResource{}, err
		}
		resource.OneTime = &entities.OneTimePayment{
			ID:                p.ID.String(),
			Status:            p.Status,
			Amount:            p.TransactionAmount,
			Currency:          p.CurrencyID,
			PayerEmail:        p.Payer.Email,
			ExternalReference: p.ExternalReference,
			PreferenceID:      p.PreferenceID,
			OrderID:           p.Order.ID.String(),
			Description:       p.Description,
			Metadata:          p.Metadata,
		}
		if resource.OneTime.OrderID == "" || resource.OneTime.OrderID == "0" {
			resource.OneTime.OrderID = ""
		}

	case entities.TopicPreapproval:
		var p preapprovalPayload
		if err := g.doGet(ctx, "/preapproval/"+id, &p); err != nil {
			return entities.PaymentResource{}, err
		}
		resource.Preapproval = &entities.PreapprovalResource{
			ID:                p.ID,
			Status:            p.Status,
			PayerEmail:        p.PayerEmail,
			ExternalReference: p.ExternalReference,
			Reason:            p.Reason,
		}

	case entities.TopicAuthorizedPayment:
		var p authorizedPaymentPayload
		if err := g.doGet(ctx, "/authorized_payments/"+id, &p); err != nil {
			return entities.PaymentResource{}, err
		}
		resource.AuthorizedCharge = &entities.AuthorizedCharge{
			ID:            p.ID.String(),
			Status:        p.Status,
			Amount:        p.TransactionAmount,
			Currency:      p.CurrencyID,
			PreapprovalID: p.PreapprovalID,
		}
	}

	return resource, nil
}

// CreatePreference creates a one-time checkout preference through the SDK.
func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, order entities.PreferenceOrder) (entities.PreferenceResult, error) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      order.Description,
				Quantity:   1,
				UnitPrice:  order.Amount,
				CurrencyID: "BRL",
			},
		},
		ExternalReference: order.ExternalReference,
		AutoReturn:        "approved",
		BackURLs: &preference.BackURLsRequest{
			Success: getenvDefault("MP_SUCCESS_URL", appURL("mercadopago/success")),
			Failure: getenvDefault("MP_FAILURE_URL", appURL("mercadopago/failure")),
			Pending: getenvDefault("MP_PENDING_URL", getenvDefault("MP_FAILURE_URL", appURL("mercadopago/failure"))),
		},
		NotificationURL: getenvDefault("MP_WEBHOOK_URL", appURL("webhook/mercadopago")),
	}
	if order.PayerEmail != "" {
		req.Payer = &preference.PayerRequest{Email: order.PayerEmail}
	}
	if order.Sessions > 0 {
		req.Metadata = map[string]any{"sessions": order.Sessions}
	}

	result, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] preference create failed err=%v", err)
		return entities.PreferenceResult{}, err
	}
	log.Printf("[payment][gateway] preference created preference_id=%s", result.ID)

	return entities.PreferenceResult{
		ID:               result.ID,
		InitPoint:        result.InitPoint,
		SandboxInitPoint: result.SandboxInitPoint,
	}, nil
}

// CreatePreapproval starts a plan-based subscription. The plan-id flow
// used here has no typed accessor, so this is a raw authenticated POST.
func (g *MercadoPagoGateway) CreatePreapproval(ctx context.Context, order entities.PreapprovalOrder) (entities.PreapprovalResult, error) {
	backURL := order.BackURL
	if backURL == "" {
		backURL = getenvDefault("MERCADOPAGO_BACK_URL", getenvDefault("MP_SUCCESS_URL", appURL("mercadopago/success")))
	}

	payload := map[string]any{
		"preapproval_plan_id": order.PlanID,
		"payer_email":         order.PayerEmail,
		"reason":              order.Reason,
		"external_reference":  order.ExternalReference,
	}
	if backURL != "" {
		payload["back_url"] = backURL
	}

	var result entities.PreapprovalResult
	if err := g.doPost(ctx, "/preapproval", payload, &result); err != nil {
		log.Printf("[payment][gateway] preapproval create failed plan_id=%s err=%v", order.PlanID, err)
		return entities.PreapprovalResult{}, err
	}
	log.Printf("[payment][gateway] preapproval created preapproval_id=%s status=%s", result.ID, result.Status)
	return result, nil
}

func (g *MercadoPagoGateway) doGet(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.accessToken)
	req.Header.Set("Accept", "application/json")

	return g.do(req, out)
}

func (g *MercadoPagoGateway) doPost(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, strings.NewReader(string(body)))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return g.do(req, out)
}

func (g *MercadoPagoGateway) do(req *http.Request, out any) error {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("mercado pago returned status %d: %s", resp.StatusCode, string(body))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	return dec.Decode(out)
}

func appURL(suffix string) string {
	app := os.Getenv("APP_URL")
	if app == "" {
		return ""
	}
	if !strings.HasSuffix(app, "/") {
		app += "/"
	}
	return app + suffix
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
