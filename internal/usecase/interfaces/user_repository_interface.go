package interfaces

import (
	"context"
	"errors"

	"agroclima_portal/internal/domain/entities"
)

// ErrUserRowMissing is returned by MarkPaid when no local row exists for
// the login. The entitlement grantor reacts by resynchronizing the row
// from the legacy backend and retrying once.
var ErrUserRowMissing = errors.New("local user row missing")

// IUserRepository abstracts DynamoDB persistence for local user profiles.
type IUserRepository interface {
	GetByLogin(ctx context.Context, login string) (entities.User, error)
	Upsert(ctx context.Context, u entities.User) (entities.User, error)

	// MarkPaid flips pagante to "s" and, when sessions is a valid tier,
	// also sets max_sessions. sessions <= 0 leaves the recorded tier
	// untouched. Fails with ErrUserRowMissing when the row does not exist.
	MarkPaid(ctx context.Context, login string, sessions int) error
}
