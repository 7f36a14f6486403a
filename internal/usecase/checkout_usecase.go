package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"agroclima_portal/internal/domain/entities"
	"agroclima_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCheckoutAmount  = errors.New("invalid checkout amount")
	ErrMissingPreapprovalPlan = errors.New("plan_id is required")
)

const defaultPreferenceDescription = "Plano Anual"

// ICheckoutUseCase creates provider checkout resources and pre-creates
// the ledger rows the webhook later enriches.
type ICheckoutUseCase interface {
	CreatePreference(ctx context.Context, order entities.PreferenceOrder) (entities.PreferenceResult, error)
	CreatePreapproval(ctx context.Context, order entities.PreapprovalOrder) (entities.PreapprovalResult, error)
}

type CheckoutUseCase struct {
	gateway  interfaces.ICheckoutGateway
	payments interfaces.IPaymentRepository
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.ICheckoutGateway, payments interfaces.IPaymentRepository) *CheckoutUseCase {
	return &CheckoutUseCase{gateway: gateway, payments: payments}
}

// CreatePreference creates a one-time checkout preference and records a
// pending ledger row keyed by the returned preference id, so the first
// webhook for the payment enriches that same row instead of creating a
// second one.
func (u *CheckoutUseCase) CreatePreference(ctx context.Context, order entities.PreferenceOrder) (entities.PreferenceResult, error) {
	if order.Amount <= 0 {
		log.Printf("[checkout][usecase] invalid amount=%.2f", order.Amount)
		return entities.PreferenceResult{}, ErrInvalidCheckoutAmount
	}
	if u.gateway == nil {
		return entities.PreferenceResult{}, errors.New("checkout gateway not configured")
	}
	if strings.TrimSpace(order.Description) == "" {
		order.Description = defaultPreferenceDescription
	}

	res, err := u.gateway.CreatePreference(ctx, order)
	if err != nil {
		log.Printf("[checkout][usecase] preference creation failed err=%v", err)
		return entities.PreferenceResult{}, err
	}
	log.Printf("[checkout][usecase] preference created preference_id=%s amount=%.2f", res.ID, order.Amount)

	row := entities.Payment{
		ID:                uuid.New().String(),
		Status:            entities.PaymentStatusPending,
		Amount:            order.Amount,
		Currency:          "BRL",
		PayerEmail:        order.PayerEmail,
		ExternalReference: order.ExternalReference,
		PreferenceID:      res.ID,
		CreatedAt:         time.Now().UTC(),
	}
	if order.Sessions > 0 {
		row.Metadata = map[string]any{"sessions": order.Sessions}
	}
	if _, err := u.payments.Save(ctx, row); err != nil {
		// The preference already exists on the provider side; the webhook
		// path can still settle by payment id, so only log here.
		log.Printf("[checkout][usecase] ledger pre-create failed preference_id=%s err=%v", res.ID, err)
	}

	return res, nil
}

// CreatePreapproval starts a subscription checkout. Subscriptions have no
// pre-created ledger row; the preapproval webhook keys the row by the
// subscription id on first delivery.
func (u *CheckoutUseCase) CreatePreapproval(ctx context.Context, order entities.PreapprovalOrder) (entities.PreapprovalResult, error) {
	if strings.TrimSpace(order.PlanID) == "" {
		log.Printf("[checkout][usecase] missing plan_id")
		return entities.PreapprovalResult{}, ErrMissingPreapprovalPlan
	}
	if u.gateway == nil {
		return entities.PreapprovalResult{}, errors.New("checkout gateway not configured")
	}
	if strings.TrimSpace(order.Reason) == "" {
		order.Reason = "Assinatura mensal AgroClima"
	}

	res, err := u.gateway.CreatePreapproval(ctx, order)
	if err != nil {
		log.Printf("[checkout][usecase] preapproval creation failed plan_id=%s err=%v", order.PlanID, err)
		return entities.PreapprovalResult{}, err
	}
	log.Printf("[checkout][usecase] preapproval created preapproval_id=%s status=%s", res.ID, res.Status)
	return res, nil
}
