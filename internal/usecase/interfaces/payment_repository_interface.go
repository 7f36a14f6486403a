package interfaces

import (
	"context"

	"agroclima_portal/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for the payment ledger.
//
// Lookups return a zero-value Payment (ID == "") with a nil error when no
// row matches; the ledger reconciler decides whether to create or enrich.
type IPaymentRepository interface {
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Payment, error)
	GetByPreferenceID(ctx context.Context, preferenceID string) (entities.Payment, error)
	Save(ctx context.Context, p entities.Payment) (entities.Payment, error)
}
