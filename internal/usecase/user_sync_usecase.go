package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"agroclima_portal/internal/domain/entities"
	"agroclima_portal/internal/usecase/interfaces"
)

var (
	ErrInvalidSyncEmail  = errors.New("invalid email")
	ErrLegacyUserMissing = errors.New("user not found on legacy backend")
)

// IUserSyncUseCase resynchronizes a local user row from the authoritative
// legacy record.
type IUserSyncUseCase interface {
	SyncFromLegacy(ctx context.Context, email string) (entities.User, error)
}

type UserSyncUseCase struct {
	users  interfaces.IUserRepository
	legacy interfaces.ILegacyUserGateway
}

var _ IUserSyncUseCase = (*UserSyncUseCase)(nil)

func NewUserSyncUseCase(users interfaces.IUserRepository, legacy interfaces.ILegacyUserGateway) *UserSyncUseCase {
	return &UserSyncUseCase{users: users, legacy: legacy}
}

func (u *UserSyncUseCase) SyncFromLegacy(ctx context.Context, email string) (entities.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		log.Printf("[user][sync] invalid email (empty)")
		return entities.User{}, ErrInvalidSyncEmail
	}
	if u.legacy == nil {
		return entities.User{}, errors.New("legacy gateway not configured")
	}

	log.Printf("[user][sync] lookup start login=%s", email)
	remote, err := u.legacy.LookupUser(ctx, email)
	if err != nil {
		if errors.Is(err, interfaces.ErrLegacyUserNotFound) {
			log.Printf("[user][sync] not found on legacy backend login=%s", email)
			return entities.User{}, ErrLegacyUserMissing
		}
		log.Printf("[user][sync] legacy lookup failed login=%s err=%v", email, err)
		return entities.User{}, err
	}

	saved, err := u.users.Upsert(ctx, remote)
	if err != nil {
		log.Printf("[user][sync] local upsert failed login=%s err=%v", email, err)
		return entities.User{}, err
	}
	log.Printf("[user][sync] success login=%s user_id=%d max_sessions=%d", saved.Login, saved.ID, saved.MaxSessions)
	return saved, nil
}
