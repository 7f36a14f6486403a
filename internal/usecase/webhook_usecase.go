package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"agroclima_portal/internal/domain/entities"
	"agroclima_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrResourceFetchFailed = errors.New("failed to fetch provider resource")

// IWebhookUseCase reconciles one Mercado Pago webhook delivery.
//
// ProcessNotification never fails the delivery: persistence and
// entitlement errors are logged and absorbed, and only a fetch failure is
// reported back (so the handler can embed the error sentinel in its
// always-200 acknowledgment).
type IWebhookUseCase interface {
	ProcessNotification(ctx context.Context, topic entities.Topic, resourceID string) (entities.PaymentResource, error)
}

type WebhookUseCase struct {
	fetcher      interfaces.IResourceFetcher
	payments     interfaces.IPaymentRepository
	userPayments interfaces.IUserPaymentRepository
	users        interfaces.IUserRepository
	entitlement  IEntitlementUseCase
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	fetcher interfaces.IResourceFetcher,
	payments interfaces.IPaymentRepository,
	users interfaces.IUserRepository,
	userPayments interfaces.IUserPaymentRepository,
	entitlement IEntitlementUseCase,
) *WebhookUseCase {
	return &WebhookUseCase{
		fetcher:      fetcher,
		payments:     payments,
		users:        users,
		userPayments: userPayments,
		entitlement:  entitlement,
	}
}

// ProcessNotification fetches the resource behind the event and drives the
// topic-specific reconciliation. Every write along the way is an
// idempotent upsert, so concurrent or duplicate deliveries of the same
// event are safe to repeat.
func (u *WebhookUseCase) ProcessNotification(ctx context.Context, topic entities.Topic, resourceID string) (entities.PaymentResource, error) {
	if topic == entities.TopicUnknown || resourceID == "" || u.fetcher == nil {
		log.Printf("[webhook][usecase] skip: topic=%s id=%q fetcher_configured=%t", topic, resourceID, u.fetcher != nil)
		return entities.PaymentResource{}, nil
	}

	resource, err := u.fetcher.FetchResource(ctx, topic, resourceID)
	if err != nil {
		log.Printf("[webhook][usecase] resource fetch failed topic=%s id=%s err=%v", topic, resourceID, err)
		return entities.PaymentResource{}, ErrResourceFetchFailed
	}
	if resource.Empty() {
		log.Printf("[webhook][usecase] no resource for event topic=%s id=%s", topic, resourceID)
		return resource, nil
	}

	switch {
	case resource.OneTime != nil:
		err = u.reconcileOneTime(ctx, resource.OneTime)
	case resource.Preapproval != nil:
		err = u.reconcilePreapproval(ctx, resource.Preapproval)
	case resource.AuthorizedCharge != nil:
		err = u.reconcileAuthorizedCharge(ctx, resource.AuthorizedCharge)
	}
	if err != nil {
		// Absorbed: the provider only retries on non-200, and every step
		// here is idempotent under redelivery.
		log.Printf("[webhook][usecase] reconciliation failed topic=%s id=%s err=%v", topic, resourceID, err)
	}

	return resource, nil
}

// reconcileOneTime settles a checkout payment: ledger upsert always, then
// entitlement grant and user↔payment link once the payment is approved.
func (u *WebhookUseCase) reconcileOneTime(ctx context.Context, p *entities.OneTimePayment) error {
	status := entities.NormalizeStatus(p.Status)

	row, err := u.upsertOneTimeRow(ctx, p, status)
	if err != nil {
		return err
	}
	log.Printf("[webhook][usecase] ledger upsert payment_id=%s row_id=%s status=%s", p.ID, row.ID, status)

	if status != entities.PaymentStatusApproved {
		return nil
	}

	sessions, ok := DeriveSessions(p.ExternalReference, p.Metadata, p.Description)
	if !ok {
		sessions = 0
	}
	login := resolveLogin(p.PayerEmail, p.ExternalReference)
	return u.grantAndLink(ctx, login, sessions, row.ID)
}

// reconcilePreapproval settles a subscription authorization. The
// subscription id plays the role of the provider payment id in the
// ledger; a preapproval has no amount of its own.
func (u *WebhookUseCase) reconcilePreapproval(ctx context.Context, pre *entities.PreapprovalResource) error {
	rawStatus := pre.Status
	if rawStatus == "" {
		rawStatus = string(entities.PaymentStatusAuthorized)
	}
	status := entities.NormalizeStatus(rawStatus)

	row, err := u.upsertByPaymentID(ctx, pre.ID, func(row *entities.Payment) {
		row.Status = status
		row.PayerEmail = pre.PayerEmail
		row.ExternalReference = pre.ExternalReference
		row.MergeMetadata(map[string]any{
			"type":   "preapproval",
			"reason": pre.Reason,
		})
	})
	if err != nil {
		return err
	}
	log.Printf("[webhook][usecase] ledger upsert preapproval_id=%s row_id=%s status=%s", pre.ID, row.ID, status)

	if status != entities.PaymentStatusAuthorized {
		return nil
	}

	sessions, ok := DeriveSessions(pre.ExternalReference, nil, pre.Reason)
	if !ok {
		sessions = 0
	}
	login := resolveLogin(pre.PayerEmail, pre.ExternalReference)
	return u.grantAndLink(ctx, login, sessions, row.ID)
}

// reconcileAuthorizedCharge settles a recurring charge. The charge
// resource typically lacks payer data, so the parent subscription is
// fetched to recover the login and the entitlement signal.
func (u *WebhookUseCase) reconcileAuthorizedCharge(ctx context.Context, ch *entities.AuthorizedCharge) error {
	rawStatus := ch.Status
	if rawStatus == "" {
		rawStatus = string(entities.PaymentStatusApproved)
	}
	status := entities.NormalizeStatus(rawStatus)

	var payerEmail, externalReference, reason string
	if ch.PreapprovalID != "" {
		parent, err := u.fetcher.FetchResource(ctx, entities.TopicPreapproval, ch.PreapprovalID)
		if err != nil {
			log.Printf("[webhook][usecase] parent preapproval fetch failed preapproval_id=%s err=%v", ch.PreapprovalID, err)
		} else if parent.Preapproval != nil {
			payerEmail = parent.Preapproval.PayerEmail
			externalReference = parent.Preapproval.ExternalReference
			reason = parent.Preapproval.Reason
		}
	}

	row, err := u.upsertByPaymentID(ctx, ch.ID, func(row *entities.Payment) {
		row.Status = status
		row.Amount = ch.Amount
		row.Currency = ch.Currency
		row.PayerEmail = payerEmail
		row.ExternalReference = externalReference
		row.MergeMetadata(map[string]any{
			"type":           "authorized_payment",
			"preapproval_id": ch.PreapprovalID,
		})
	})
	if err != nil {
		return err
	}
	log.Printf("[webhook][usecase] ledger upsert authorized_payment_id=%s row_id=%s status=%s", ch.ID, row.ID, status)

	if status != entities.PaymentStatusApproved {
		return nil
	}

	sessions, ok := DeriveSessions(externalReference, nil, reason)
	if !ok {
		sessions = 0
	}
	login := resolveLogin(payerEmail, externalReference)
	return u.grantAndLink(ctx, login, sessions, row.ID)
}

// upsertOneTimeRow enriches the row pre-created at checkout time (found
// by preference id) when there is one, and falls back to a payment-id
// keyed upsert otherwise.
func (u *WebhookUseCase) upsertOneTimeRow(ctx context.Context, p *entities.OneTimePayment, status entities.PaymentStatus) (entities.Payment, error) {
	apply := func(row *entities.Payment) {
		row.PaymentID = p.ID
		row.Status = status
		row.Amount = p.Amount
		row.Currency = p.Currency
		row.PayerEmail = p.PayerEmail
		row.ExternalReference = p.ExternalReference
		row.OrderID = p.OrderID
		if p.PreferenceID != "" {
			row.PreferenceID = p.PreferenceID
		}
		row.MergeMetadata(p.Metadata)
		if status == entities.PaymentStatusApproved && row.PerformedAt.IsZero() {
			row.PerformedAt = time.Now().UTC()
		}
	}

	if p.PreferenceID != "" {
		row, err := u.payments.GetByPreferenceID(ctx, p.PreferenceID)
		if err != nil {
			return entities.Payment{}, err
		}
		if row.ID != "" {
			apply(&row)
			return u.payments.Save(ctx, row)
		}
	}
	return u.upsertByPaymentID(ctx, p.ID, apply)
}

// upsertByPaymentID finds the row keyed by the provider id (creating it
// on first delivery) and applies the mutation before saving.
//
// The created row's internal id is derived from the provider id rather
// than minted at random: the payment_id lookup goes through an eventually
// consistent index, so two deliveries of the same event can both miss it.
// With a derived key they still converge on one row.
func (u *WebhookUseCase) upsertByPaymentID(ctx context.Context, paymentID string, apply func(row *entities.Payment)) (entities.Payment, error) {
	row, err := u.payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if row.ID == "" {
		row = entities.Payment{
			ID:        paymentRowID(paymentID),
			PaymentID: paymentID,
			CreatedAt: time.Now().UTC(),
		}
	}
	apply(&row)
	if row.PaymentID == "" {
		row.PaymentID = paymentID
	}
	return u.payments.Save(ctx, row)
}

// paymentRowID maps a provider payment id onto a stable internal row id.
func paymentRowID(paymentID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("payment:"+paymentID)).String()
}

// grantAndLink applies the entitlement and records the user↔payment
// association. The ledger row is already written at this point; the link
// references its internal id.
func (u *WebhookUseCase) grantAndLink(ctx context.Context, login string, sessions int, rowID string) error {
	if login == "" {
		log.Printf("[webhook][usecase] no resolvable login; skipping grant row_id=%s", rowID)
		return nil
	}

	if err := u.entitlement.MarkUserPaid(ctx, login, sessions); err != nil {
		log.Printf("[webhook][usecase] entitlement grant failed login=%s sessions=%d err=%v", login, sessions, err)
	}

	user, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		return err
	}
	if user.ID == 0 {
		log.Printf("[webhook][usecase] no local user to link login=%s row_id=%s", login, rowID)
		return nil
	}
	if err := u.userPayments.Link(ctx, user.ID, rowID); err != nil {
		return err
	}
	log.Printf("[webhook][usecase] user linked login=%s user_id=%d row_id=%s", login, user.ID, rowID)
	return nil
}
