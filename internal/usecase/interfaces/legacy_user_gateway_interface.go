package interfaces

import (
	"context"
	"errors"

	"agroclima_portal/internal/domain/entities"
)

// ErrLegacyUserNotFound is returned by LookupUser when the legacy
// backend has no record for the email.
var ErrLegacyUserNotFound = errors.New("user not found on legacy backend")

// ILegacyUserGateway talks to the pre-existing user-management API the
// portal layers on top of. Users are identified by login (email) only.
type ILegacyUserGateway interface {
	LookupUser(ctx context.Context, email string) (entities.User, error)
	AlterUser(ctx context.Context, login string, maxSessions int, pagante string) error
}
