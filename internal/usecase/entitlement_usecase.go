package usecase

import (
	"context"
	"log"
	"strings"

	"agroclima_portal/internal/domain/entities"
	"agroclima_portal/internal/usecase/interfaces"
)

// IEntitlementUseCase applies a derived session tier to a paying user.
type IEntitlementUseCase interface {
	MarkUserPaid(ctx context.Context, login string, sessions int) error
}

// EntitlementUseCase writes the entitlement to the local profile and,
// best-effort, to the legacy backend. The two stores are independently
// writable and not transactionally coupled; temporary divergence is
// resolved by idempotent webhook redelivery.
type EntitlementUseCase struct {
	users  interfaces.IUserRepository
	legacy interfaces.ILegacyUserGateway
	sync   IUserSyncUseCase
}

var _ IEntitlementUseCase = (*EntitlementUseCase)(nil)

func NewEntitlementUseCase(users interfaces.IUserRepository, legacy interfaces.ILegacyUserGateway, sync IUserSyncUseCase) *EntitlementUseCase {
	return &EntitlementUseCase{users: users, legacy: legacy, sync: sync}
}

// MarkUserPaid flips the user to pagante="s" and records sessions when it
// is a valid tier (sessions <= 0 leaves the recorded tier untouched). A
// missing local row triggers one resync from the legacy backend followed
// by a single retry. Failures are logged, never fatal: redelivery of the
// webhook settles them.
func (u *EntitlementUseCase) MarkUserPaid(ctx context.Context, login string, sessions int) error {
	login = strings.TrimSpace(login)
	if login == "" {
		log.Printf("[entitlement][usecase] skip: empty login")
		return nil
	}
	if sessions > 0 && !entities.IsValidSessionTier(sessions) {
		log.Printf("[entitlement][usecase] invalid tier rejected login=%s sessions=%d", login, sessions)
		sessions = 0
	}

	err := u.users.MarkPaid(ctx, login, sessions)
	if err != nil {
		log.Printf("[entitlement][usecase] local update failed login=%s err=%v; resyncing from legacy backend", login, err)
		if u.sync == nil {
			log.Printf("[entitlement][usecase] no sync collaborator; giving up login=%s", login)
		} else if _, serr := u.sync.SyncFromLegacy(ctx, login); serr != nil {
			log.Printf("[entitlement][usecase] resync failed login=%s err=%v", login, serr)
		} else {
			err = u.users.MarkPaid(ctx, login, sessions)
		}
		if err != nil {
			log.Printf("[entitlement][usecase] giving up for this delivery login=%s err=%v", login, err)
		}
	}

	// The legacy write is independent of the local outcome.
	if sessions > 0 && u.legacy != nil {
		if lerr := u.legacy.AlterUser(ctx, login, sessions, entities.PaganteYes); lerr != nil {
			log.Printf("[entitlement][usecase] legacy backend update failed login=%s sessions=%d err=%v", login, sessions, lerr)
		} else {
			log.Printf("[entitlement][usecase] legacy backend updated login=%s sessions=%d", login, sessions)
		}
	}

	return err
}
