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

func TestEntitlementUseCase_MarkUserPaid(t *testing.T) {
	t.Run("empty login is a no-op", func(t *testing.T) {
		uc := NewEntitlementUseCase(nil, nil, nil)
		if err := uc.MarkUserPaid(context.Background(), "  ", 3); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("valid tier recorded locally and on legacy backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		legacy := mock_interfaces.NewMockILegacyUserGateway(ctrl)
		uc := NewEntitlementUseCase(users, legacy, nil)

		users.EXPECT().MarkPaid(gomock.Any(), "a@b.com", 3).Return(nil)
		legacy.EXPECT().AlterUser(gomock.Any(), "a@b.com", 3, entities.PaganteYes).Return(nil)

		if err := uc.MarkUserPaid(context.Background(), "a@b.com", 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid tier downgraded to zero, legacy skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		legacy := mock_interfaces.NewMockILegacyUserGateway(ctrl)
		uc := NewEntitlementUseCase(users, legacy, nil)

		// sessions=0 flips pagante but must not touch max_sessions, and
		// the legacy write is skipped entirely.
		users.EXPECT().MarkPaid(gomock.Any(), "a@b.com", 0).Return(nil)

		if err := uc.MarkUserPaid(context.Background(), "a@b.com", 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing local row triggers resync and retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		legacy := mock_interfaces.NewMockILegacyUserGateway(ctrl)
		sync := NewUserSyncUseCase(users, legacy)
		uc := NewEntitlementUseCase(users, legacy, sync)

		remote := entities.User{ID: 7, Login: "a@b.com"}
		gomock.InOrder(
			users.EXPECT().MarkPaid(gomock.Any(), "a@b.com", 5).Return(interfaces.ErrUserRowMissing),
			legacy.EXPECT().LookupUser(gomock.Any(), "a@b.com").Return(remote, nil),
			users.EXPECT().Upsert(gomock.Any(), remote).Return(remote, nil),
			users.EXPECT().MarkPaid(gomock.Any(), "a@b.com", 5).Return(nil),
		)
		legacy.EXPECT().AlterUser(gomock.Any(), "a@b.com", 5, entities.PaganteYes).Return(nil)

		if err := uc.MarkUserPaid(context.Background(), "a@b.com", 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("resync failure returns original error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		legacy := mock_interfaces.NewMockILegacyUserGateway(ctrl)
		sync := NewUserSyncUseCase(users, legacy)
		uc := NewEntitlementUseCase(users, legacy, sync)

		users.EXPECT().MarkPaid(gomock.Any(), "a@b.com", 3).Return(interfaces.ErrUserRowMissing)
		legacy.EXPECT().LookupUser(gomock.Any(), "a@b.com").Return(entities.User{}, interfaces.ErrLegacyUserNotFound)
		legacy.EXPECT().AlterUser(gomock.Any(), "a@b.com", 3, entities.PaganteYes).Return(nil)

		err := uc.MarkUserPaid(context.Background(), "a@b.com", 3)
		if !errors.Is(err, interfaces.ErrUserRowMissing) {
			t.Fatalf("expected ErrUserRowMissing, got %v", err)
		}
	})

	t.Run("legacy failure does not fail the grant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		legacy := mock_interfaces.NewMockILegacyUserGateway(ctrl)
		uc := NewEntitlementUseCase(users, legacy, nil)

		users.EXPECT().MarkPaid(gomock.Any(), "a@b.com", 2).Return(nil)
		legacy.EXPECT().AlterUser(gomock.Any(), "a@b.com", 2, entities.PaganteYes).Return(errors.New("legacy down"))

		if err := uc.MarkUserPaid(context.Background(), "a@b.com", 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
