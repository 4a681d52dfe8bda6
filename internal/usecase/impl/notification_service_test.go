package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"notifier/internal/domain/entity"
	"notifier/internal/domain/repository"
	mockRepo "notifier/internal/mocks/repository"
	"notifier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	accountRepo      *mockRepo.MockAccountRepository
	settingsRepo     *mockRepo.MockSettingsRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	settings := NewSettingsService(settingsRepo, newDiscardLogger())
	service := NewNotificationService(notificationRepo, accountRepo, settings, newTestConfig(), newDiscardLogger())

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		accountRepo:      accountRepo,
		settingsRepo:     settingsRepo,
	}
}

func TestNotificationService_CreateNotification_AllowedCategory(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	var created *entity.Notification
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			created = notification
		}).
		Return(nil)

	id, err := fx.service.CreateNotification(ctx, "MEGG-679622", "New login to your account", entity.CategoryLogin)
	require.NoError(t, err)
	assert.Regexp(t, `^NOTIF-MEGG-679622-[A-Z0-9]{6}$`, id)

	require.NotNil(t, created)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, "MEGG-679622", created.AccountID)
	assert.Equal(t, entity.CategoryLogin, created.Category)
	assert.False(t, created.Read)
	assert.Equal(t, entity.IconLogin, created.Icon)
	assert.Empty(t, created.ProfileImage)
}

func TestNotificationService_CreateNotification_DeniedByDefault(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		FindByAccount(ctx, "MEGG-679622").
		Return(nil, repository.ErrSettingsNotFound)

	// Telemetry categories with no settings document are silently denied:
	// no write, no error, empty id.
	id, err := fx.service.CreateNotification(ctx, "MEGG-679622", "Defect detected in batch", entity.CategoryDefectAlert)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestNotificationService_CreateNotification_UnmappedCategoryFallsBackToProfileImage(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		FindByAccount(ctx, "MEGG-679622").
		Return(nil, repository.ErrSettingsNotFound)
	fx.accountRepo.EXPECT().
		FindByID(ctx, "MEGG-679622").
		Return(&entity.Account{ID: "MEGG-679622", ProfileImageURL: "https://cdn.example.com/avatar.png"}, nil)

	var created *entity.Notification
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			created = notification
		}).
		Return(nil)

	_, err := fx.service.CreateNotification(ctx, "MEGG-679622", "Support replied to your ticket", entity.Category("support_ticket_replied"))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Empty(t, created.Icon)
	assert.Equal(t, "https://cdn.example.com/avatar.png", created.ProfileImage)
}

func TestNotificationService_CreateNotification_ValidationError(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.CreateNotification(context.Background(), "", "msg", entity.CategoryLogin)
	require.Error(t, err)

	_, err = fx.service.CreateNotification(context.Background(), "MEGG-679622", "", entity.CategoryLogin)
	require.Error(t, err)
}

func TestNotificationService_ListNotifications_SortsNewestFirstThenTruncates(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	// Store order is deliberately shuffled; ordering is an application
	// layer concern.
	fx.notificationRepo.EXPECT().
		FindByAccount(ctx, "MEGG-679622").
		Return([]*entity.Notification{
			{ID: "NOTIF-MEGG-679622-AAAAA1", CreatedAt: base.Add(1 * time.Minute)},
			{ID: "NOTIF-MEGG-679622-AAAAA3", CreatedAt: base.Add(3 * time.Minute)},
			{ID: "NOTIF-MEGG-679622-AAAAA2", CreatedAt: base.Add(2 * time.Minute)},
		}, nil)

	notifications, err := fx.service.ListNotifications(ctx, "MEGG-679622", 2)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "NOTIF-MEGG-679622-AAAAA3", notifications[0].ID)
	assert.Equal(t, "NOTIF-MEGG-679622-AAAAA2", notifications[1].ID)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, "NOTIF-MEGG-679622-ZZZZZZ").
		Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, "NOTIF-MEGG-679622-ZZZZZZ")
	require.Error(t, err)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		MarkAllRead(ctx, "MEGG-679622").
		Return(int64(4), nil)

	updated, err := fx.service.MarkAllRead(ctx, "MEGG-679622")
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated)
}

func TestNotificationService_CountUnread_StoreError(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		CountUnread(ctx, "MEGG-679622").
		Return(int64(0), errors.New("connection reset"))

	_, err := fx.service.CountUnread(ctx, "MEGG-679622")
	require.Error(t, err)
}

func TestNotificationService_ListNotifications_ZeroLimitUsesConfiguredDefault(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	records := make([]*entity.Notification, 12)
	for i := range records {
		records[i] = &entity.Notification{
			ID:        fmt.Sprintf("NOTIF-MEGG-679622-AAAA%02d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	fx.notificationRepo.EXPECT().
		FindByAccount(ctx, "MEGG-679622").
		Return(records, nil)

	notifications, err := fx.service.ListNotifications(ctx, "MEGG-679622", 0)
	require.NoError(t, err)
	assert.Len(t, notifications, 10)
}
