package impl

import (
	"context"
	"testing"

	"notifier/internal/domain/entity"
	"notifier/internal/domain/repository"
	mockRepo "notifier/internal/mocks/repository"
	"notifier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// settingsServiceFixtures holds all test dependencies for settings service tests.
type settingsServiceFixtures struct {
	service      usecase.SettingsUsecase
	settingsRepo *mockRepo.MockSettingsRepository
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	service := NewSettingsService(settingsRepo, newDiscardLogger())

	return settingsServiceFixtures{
		service:      service,
		settingsRepo: settingsRepo,
	}
}

func allSettingsOff() *entity.NotificationSettings {
	return &entity.NotificationSettings{
		AccountID:            "MEGG-679622",
		NotificationsEnabled: false,
		PushEnabled:          false,
		EmailEnabled:         false,
		InAppEnabled:         false,
		DefectAlerts:         false,
		MachineAlerts:        false,
	}
}

func TestSettingsService_AllowsInApp_AlwaysAllowedBypassesStoredSettings(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	// No repository expectation: always-allowed categories must not even
	// read the store.
	for _, c := range []entity.Category{
		entity.CategoryLogin,
		entity.CategoryLogout,
		entity.CategoryPasswordChange,
		entity.CategorySettingsChange,
		entity.CategorySecuritySessionRevoked,
		entity.CategoryProfileImageUpdated,
		entity.CategoryFarmNameUpdated,
	} {
		assert.True(t, fx.service.AllowsInApp(ctx, "MEGG-679622", c), "category %s", c)
	}
}

func TestSettingsService_AllowsInApp_AlwaysAllowedSurvivesDisabledSettings(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	// Even a record with everything off cannot silence audit categories.
	assert.True(t, fx.service.AllowsInApp(ctx, "MEGG-679622", entity.CategoryLogin))
}

func TestSettingsService_AllowsInApp_NoSettingsDocument(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		FindByAccount(ctx, "MEGG-679622").
		Return(nil, repository.ErrSettingsNotFound).
		Times(3)

	assert.False(t, fx.service.AllowsInApp(ctx, "MEGG-679622", entity.CategoryDefectAlert))
	assert.False(t, fx.service.AllowsInApp(ctx, "MEGG-679622", entity.CategoryMachineAlert))
	assert.True(t, fx.service.AllowsInApp(ctx, "MEGG-679622", entity.CategoryInventoryRefreshed))
}

func TestSettingsService_AllowsInApp_StoreErrorDegradesToDeny(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		FindByAccount(ctx, "MEGG-679622").
		Return(nil, errors.New("connection reset"))

	assert.False(t, fx.service.AllowsInApp(ctx, "MEGG-679622", entity.CategoryInventoryRefreshed))
	// Always-allowed categories never reach the failing store.
	assert.True(t, fx.service.AllowsInApp(ctx, "MEGG-679622", entity.CategoryLogin))
}

func TestSettingsService_AllowsInApp_RecordGates(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	settings := &entity.NotificationSettings{
		AccountID:            "MEGG-679622",
		NotificationsEnabled: true,
		InAppEnabled:         true,
		DefectAlerts:         false,
		MachineAlerts:        true,
	}
	fx.settingsRepo.EXPECT().
		FindByAccount(ctx, "MEGG-679622").
		Return(settings, nil).
		Times(3)

	assert.False(t, fx.service.AllowsInApp(ctx, "MEGG-679622", entity.CategoryDefectAlert))
	assert.True(t, fx.service.AllowsInApp(ctx, "MEGG-679622", entity.CategoryMachineAlert))
	assert.True(t, fx.service.AllowsInApp(ctx, "MEGG-679622", entity.CategoryInventoryRefreshed))
}

func TestSettingsService_AllowsInApp_MasterSwitchOffDeniesNonCritical(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		FindByAccount(ctx, "MEGG-679622").
		Return(allSettingsOff(), nil)

	assert.False(t, fx.service.AllowsInApp(ctx, "MEGG-679622", entity.CategoryInventoryRefreshed))
}

func TestSettingsService_AllowsPush(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		FindByAccount(ctx, "absent").
		Return(nil, repository.ErrSettingsNotFound)
	assert.True(t, fx.service.AllowsPush(ctx, "absent"), "push defaults to allowed without a record")

	fx.settingsRepo.EXPECT().
		FindByAccount(ctx, "off").
		Return(&entity.NotificationSettings{NotificationsEnabled: true, PushEnabled: false}, nil)
	assert.False(t, fx.service.AllowsPush(ctx, "off"))

	fx.settingsRepo.EXPECT().
		FindByAccount(ctx, "on").
		Return(&entity.NotificationSettings{NotificationsEnabled: true, PushEnabled: true}, nil)
	assert.True(t, fx.service.AllowsPush(ctx, "on"))
}

func TestSettingsService_AllowsEmail(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		FindByAccount(ctx, "absent").
		Return(nil, repository.ErrSettingsNotFound)
	assert.True(t, fx.service.AllowsEmail(ctx, "absent"))

	fx.settingsRepo.EXPECT().
		FindByAccount(ctx, "off").
		Return(&entity.NotificationSettings{NotificationsEnabled: true, EmailEnabled: false}, nil)
	assert.False(t, fx.service.AllowsEmail(ctx, "off"))
}
