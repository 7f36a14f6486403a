package interfaces

import "context"

// IUserPaymentRepository abstracts the user↔payment association table.
type IUserPaymentRepository interface {
	// Link records that paymentID (internal ledger row id) belongs to
	// userID. Linking an already-linked pair is a silent no-op.
	Link(ctx context.Context, userID int, paymentID string) error
}
