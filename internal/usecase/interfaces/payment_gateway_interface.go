package interfaces

import (
	"context"

	"agroclima_portal/internal/domain/entities"
)

// IResourceFetcher retrieves the authoritative resource behind a webhook
// event from Mercado Pago.
type IResourceFetcher interface {
	FetchResource(ctx context.Context, topic entities.Topic, id string) (entities.PaymentResource, error)
}

// ICheckoutGateway creates checkout resources on Mercado Pago.
type ICheckoutGateway interface {
	CreatePreference(ctx context.Context, order entities.PreferenceOrder) (entities.PreferenceResult, error)
	CreatePreapproval(ctx context.Context, order entities.PreapprovalOrder) (entities.PreapprovalResult, error)
}
