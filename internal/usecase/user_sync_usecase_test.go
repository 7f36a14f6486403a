package usecase

import (
	"context"
	"errors"
	"testing"

	"agroclima_portal/internal/domain/entities"
	"agroclima_portal/internal/usecase/interfaces"
	mock_interfaces "agroclima_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserSyncUseCase_SyncFromLegacy(t *testing.T) {
	t.Run("empty email", func(t *testing.T) {
		uc := NewUserSyncUseCase(nil, nil)
		_, err := uc.SyncFromLegacy(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSyncEmail) {
			t.Fatalf("expected ErrInvalidSyncEmail, got %v", err)
		}
	})

	t.Run("legacy gateway not configured", func(t *testing.T) {
		uc := NewUserSyncUseCase(nil, nil)
		_, err := uc.SyncFromLegacy(context.Background(), "a@b.com")
		if err == nil || err.Error() != "legacy gateway not configured" {
			t.Fatalf("expected configuration error, got %v", err)
		}
	})

	t.Run("legacy user missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		legacy := mock_interfaces.NewMockILegacyUserGateway(ctrl)
		uc := NewUserSyncUseCase(nil, legacy)

		legacy.EXPECT().LookupUser(gomock.Any(), "a@b.com").Return(entities.User{}, interfaces.ErrLegacyUserNotFound)

		_, err := uc.SyncFromLegacy(context.Background(), "a@b.com")
		if !errors.Is(err, ErrLegacyUserMissing) {
			t.Fatalf("expected ErrLegacyUserMissing, got %v", err)
		}
	})

	t.Run("legacy lookup error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		legacy := mock_interfaces.NewMockILegacyUserGateway(ctrl)
		uc := NewUserSyncUseCase(nil, legacy)

		legacy.EXPECT().LookupUser(gomock.Any(), "a@b.com").Return(entities.User{}, errors.New("timeout"))

		_, err := uc.SyncFromLegacy(context.Background(), "a@b.com")
		if err == nil || err.Error() != "timeout" {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})

	t.Run("remote row upserted locally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		legacy := mock_interfaces.NewMockILegacyUserGateway(ctrl)
		uc := NewUserSyncUseCase(users, legacy)

		remote := entities.User{ID: 42, Nome: "Ana", Login: "a@b.com", MaxSessions: 3, Pagante: entities.PaganteYes}
		legacy.EXPECT().LookupUser(gomock.Any(), "a@b.com").Return(remote, nil)
		users.EXPECT().Upsert(gomock.Any(), remote).Return(remote, nil)

		got, err := uc.SyncFromLegacy(context.Background(), " a@b.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 42 || got.Login != "a@b.com" {
			t.Fatalf("unexpected user: %+v", got)
		}
	})

	t.Run("upsert failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		legacy := mock_interfaces.NewMockILegacyUserGateway(ctrl)
		uc := NewUserSyncUseCase(users, legacy)

		legacy.EXPECT().LookupUser(gomock.Any(), "a@b.com").Return(entities.User{ID: 1, Login: "a@b.com"}, nil)
		users.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.User{}, errors.New("db"))

		_, err := uc.SyncFromLegacy(context.Background(), "a@b.com")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
