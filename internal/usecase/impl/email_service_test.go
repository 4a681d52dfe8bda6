package impl

import (
	"context"
	"testing"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"
	"notifier/internal/domain/service"
	mockRepo "notifier/internal/mocks/repository"
	mockService "notifier/internal/mocks/service"
	"notifier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// emailServiceFixtures holds all test dependencies for email service tests.
type emailServiceFixtures struct {
	service      usecase.EmailUsecase
	accountRepo  *mockRepo.MockAccountRepository
	settingsRepo *mockRepo.MockSettingsRepository
	sender       *mockService.MockMailSender
}

func createTestEmailService(t *testing.T) emailServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	sender := mockService.NewMockMailSender(t)
	settings := NewSettingsService(settingsRepo, newDiscardLogger())
	service := NewEmailService(accountRepo, settings, sender, newTestConfig(), newDiscardLogger())

	return emailServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		settingsRepo: settingsRepo,
		sender:       sender,
	}
}

func emailTestAccount() *entity.Account {
	return &entity.Account{
		ID:          "MEGG-679622",
		Email:       "farmer@example.com",
		DisplayName: "Sam Farmer",
	}
}

func TestEmailService_DispatchEmail_Sent(t *testing.T) {
	fx := createTestEmailService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByID(mock.Anything, "MEGG-679622").
		Return(emailTestAccount(), nil)
	fx.settingsRepo.EXPECT().
		FindByAccount(mock.Anything, "MEGG-679622").
		Return(nil, repository.ErrSettingsNotFound)
	fx.sender.EXPECT().
		Verify(mock.Anything).
		Return(nil)

	var sent *service.MailMessage
	fx.sender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.MailMessage")).
		Run(func(_ context.Context, message *service.MailMessage) {
			sent = message
		}).
		Return(nil)

	report, err := fx.service.DispatchEmail(ctx, "MEGG-679622", "Password changed", "<p>Your password was changed.</p>")
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeSent, report.Outcome)

	require.NotNil(t, sent)
	assert.Equal(t, "farmer@example.com", sent.To)
	assert.Equal(t, "Sam Farmer", sent.ToName)
	assert.Equal(t, "Password changed", sent.Subject)
}

func TestEmailService_DispatchEmail_DisabledSkipsWithoutTransport(t *testing.T) {
	fx := createTestEmailService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByID(mock.Anything, "MEGG-679622").
		Return(emailTestAccount(), nil)
	fx.settingsRepo.EXPECT().
		FindByAccount(mock.Anything, "MEGG-679622").
		Return(&entity.NotificationSettings{NotificationsEnabled: true, EmailEnabled: false}, nil)

	report, err := fx.service.DispatchEmail(ctx, "MEGG-679622", "Password changed", "<p>body</p>")
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeSkipped, report.Outcome)
}

func TestEmailService_DispatchEmail_MissingEmail(t *testing.T) {
	fx := createTestEmailService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByID(mock.Anything, "MEGG-679622").
		Return(&entity.Account{ID: "MEGG-679622"}, nil)

	_, err := fx.service.DispatchEmail(ctx, "MEGG-679622", "Password changed", "<p>body</p>")
	require.ErrorIs(t, err, domainerrors.ErrEmailNotFound)
}

func TestEmailService_DispatchEmail_AccountNotFound(t *testing.T) {
	fx := createTestEmailService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByID(mock.Anything, "missing").
		Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.DispatchEmail(ctx, "missing", "Password changed", "<p>body</p>")
	require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestEmailService_DispatchEmail_VerificationFailureIsTransient(t *testing.T) {
	fx := createTestEmailService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByID(mock.Anything, "MEGG-679622").
		Return(emailTestAccount(), nil)
	fx.settingsRepo.EXPECT().
		FindByAccount(mock.Anything, "MEGG-679622").
		Return(nil, repository.ErrSettingsNotFound)
	fx.sender.EXPECT().
		Verify(mock.Anything).
		Return(errors.New("dial tcp: connection refused"))

	// No Send expectation: a failed handshake never attempts delivery.
	_, err := fx.service.DispatchEmail(ctx, "MEGG-679622", "Password changed", "<p>body</p>")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TRANSIENT_DELIVERY_FAILED", appErr.ErrorCode())
}

func TestEmailService_DispatchEmail_ValidationError(t *testing.T) {
	fx := createTestEmailService(t)

	_, err := fx.service.DispatchEmail(context.Background(), "MEGG-679622", "", "<p>body</p>")
	require.Error(t, err)
}

func TestEmailService_DispatchEmail_UnconfiguredTransport(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	settings := NewSettingsService(settingsRepo, newDiscardLogger())
	svc := NewEmailService(accountRepo, settings, nil, newTestConfig(), newDiscardLogger())

	// A nil transport is a supported deployment shape. Dispatch must
	// refuse it as a configuration error before any account lookup.
	report, err := svc.DispatchEmail(context.Background(), "MEGG-679622", "Password changed", "<p>body</p>")
	require.Error(t, err)
	assert.Nil(t, report)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFIGURATION_ERROR", appErr.ErrorCode())
}
