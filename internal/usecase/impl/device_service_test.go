package impl

import (
	"context"
	"testing"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"
	mockRepo "notifier/internal/mocks/repository"
	"notifier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service     usecase.DeviceUsecase
	accountRepo *mockRepo.MockAccountRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	service := NewDeviceService(accountRepo, newDiscardLogger())

	return deviceServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
	}
}

func TestDeviceService_RegisterDeviceToken_NewToken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	var appended *entity.DeviceToken
	fx.accountRepo.EXPECT().
		TouchDeviceToken(ctx, "MEGG-679622", mock.AnythingOfType("*entity.DeviceToken")).
		Return(false, nil)
	fx.accountRepo.EXPECT().
		AppendDeviceToken(ctx, "MEGG-679622", mock.AnythingOfType("*entity.DeviceToken")).
		Run(func(_ context.Context, _ string, token *entity.DeviceToken) {
			appended = token
		}).
		Return(nil)

	err := fx.service.RegisterDeviceToken(ctx, "MEGG-679622", &usecase.TokenRegistration{
		Token:      "tok-1",
		DeviceType: entity.DeviceTypeMobile,
		UserAgent:  "Chrome on Android",
	})
	require.NoError(t, err)

	require.NotNil(t, appended)
	assert.Equal(t, "tok-1", appended.Token)
	assert.Equal(t, entity.DeviceTypeMobile, appended.DeviceType)
	assert.Equal(t, "Chrome on Android", appended.UserAgent)
	assert.True(t, appended.IsActive)
	assert.False(t, appended.LastUpdated.IsZero())
}

func TestDeviceService_RegisterDeviceToken_RefreshExistingEntry(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	// Repeat registration with a different user agent overwrites the one
	// existing entry in place; no append happens.
	var touched *entity.DeviceToken
	fx.accountRepo.EXPECT().
		TouchDeviceToken(ctx, "MEGG-679622", mock.AnythingOfType("*entity.DeviceToken")).
		Run(func(_ context.Context, _ string, token *entity.DeviceToken) {
			touched = token
		}).
		Return(true, nil)

	err := fx.service.RegisterDeviceToken(ctx, "MEGG-679622", &usecase.TokenRegistration{
		Token:      "tok-1",
		DeviceType: entity.DeviceTypeWeb,
		UserAgent:  "Firefox on Linux",
	})
	require.NoError(t, err)

	require.NotNil(t, touched)
	assert.Equal(t, "tok-1", touched.Token)
	assert.Equal(t, "Firefox on Linux", touched.UserAgent)
	assert.True(t, touched.IsActive)
}

func TestDeviceService_RegisterDeviceToken_LostAppendRaceRetriesRefresh(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	// A concurrent registration appends the same token between our
	// refresh miss and our guarded append. The retry converges on a
	// refresh of the entry the winner created.
	fx.accountRepo.EXPECT().
		TouchDeviceToken(ctx, "MEGG-679622", mock.AnythingOfType("*entity.DeviceToken")).
		Return(false, nil).
		Once()
	fx.accountRepo.EXPECT().
		AppendDeviceToken(ctx, "MEGG-679622", mock.AnythingOfType("*entity.DeviceToken")).
		Return(repository.ErrTokenConflict).
		Once()
	fx.accountRepo.EXPECT().
		TouchDeviceToken(ctx, "MEGG-679622", mock.AnythingOfType("*entity.DeviceToken")).
		Return(true, nil).
		Once()

	err := fx.service.RegisterDeviceToken(ctx, "MEGG-679622", &usecase.TokenRegistration{Token: "tok-1"})
	require.NoError(t, err)
}

func TestDeviceService_RegisterDeviceToken_GivesUpAfterBoundedAttempts(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		TouchDeviceToken(ctx, "MEGG-679622", mock.AnythingOfType("*entity.DeviceToken")).
		Return(false, nil).
		Times(tokenUpsertAttempts)
	fx.accountRepo.EXPECT().
		AppendDeviceToken(ctx, "MEGG-679622", mock.AnythingOfType("*entity.DeviceToken")).
		Return(repository.ErrTokenConflict).
		Times(tokenUpsertAttempts)

	err := fx.service.RegisterDeviceToken(ctx, "MEGG-679622", &usecase.TokenRegistration{Token: "tok-1"})
	require.ErrorIs(t, err, domainerrors.ErrTokenRegistrationConflict)
}

func TestDeviceService_RegisterDeviceToken_AccountNotFound(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		TouchDeviceToken(ctx, "missing", mock.AnythingOfType("*entity.DeviceToken")).
		Return(false, repository.ErrAccountNotFound)

	err := fx.service.RegisterDeviceToken(ctx, "missing", &usecase.TokenRegistration{Token: "tok-1"})
	require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestDeviceService_RegisterDeviceToken_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	err := fx.service.RegisterDeviceToken(context.Background(), "MEGG-679622", &usecase.TokenRegistration{})
	require.Error(t, err)
	// Rejected before any repository call; the mock would fail otherwise.
}

func TestDeviceService_VerifyTokenRegistered(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		HasActiveDeviceToken(ctx, "MEGG-679622", "tok-1").
		Return(true, nil)

	exists, err := fx.service.VerifyTokenRegistered(ctx, "MEGG-679622", "tok-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDeviceService_VerifyTokenRegistered_MissingAccountMeansNotRegistered(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		HasActiveDeviceToken(ctx, "missing", "tok-1").
		Return(false, repository.ErrAccountNotFound)

	exists, err := fx.service.VerifyTokenRegistered(ctx, "missing", "tok-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeviceService_RemoveDeviceToken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		DeactivateDeviceToken(ctx, "MEGG-679622", "tok-1").
		Return(true, nil)

	require.NoError(t, fx.service.RemoveDeviceToken(ctx, "MEGG-679622", "tok-1"))
}

func TestDeviceService_RemoveDeviceToken_UnknownToken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		DeactivateDeviceToken(ctx, "MEGG-679622", "tok-unknown").
		Return(false, nil)

	err := fx.service.RemoveDeviceToken(ctx, "MEGG-679622", "tok-unknown")
	require.ErrorIs(t, err, domainerrors.ErrTokensNotFound)
}
