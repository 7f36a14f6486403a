package entities

// Pagante values mirror the legacy user-management backend ("s"/"n").
const (
	PaganteYes = "s"
	PaganteNo  = "n"
)

// IsValidSessionTier reports whether n is one of the plan tiers sold by
// the portal. Anything else is a parsing artifact and must never be
// written to a user row.
func IsValidSessionTier(n int) bool {
	return n == 2 || n == 3 || n == 5
}

// User is the local mirror of a legacy backend user.
//
// Storage model (DynamoDB):
//   - PK: login (email, unique)
//
// The legacy backend remains the authoritative record; rows here are
// resynchronized from it on demand.
type User struct {
	ID          int    `json:"id"`
	Nome        string `json:"nome"`
	Login       string `json:"login"`
	MaxSessions int    `json:"max_sessions"`
	Pagante     string `json:"pagante"`
}

// UserPayment links a user to a settled ledger row.
//
// Storage model (DynamoDB):
//   - PK: user_id (HASH) + payment_id (RANGE)
//
// The composite key enforces the (user, payment) uniqueness; duplicate
// link attempts are no-ops.
type UserPayment struct {
	ID        string `json:"id"`
	UserID    int    `json:"user_id"`
	PaymentID string `json:"payment_id"`
}
