package impl

import (
	"context"
	"testing"
	"time"

	"notifier/internal/domain/entity"
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

// eventServiceFixtures composes the real channel services over mocked
// repositories and transports, the way the wired application runs them.
type eventServiceFixtures struct {
	service          usecase.EventUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	accountRepo      *mockRepo.MockAccountRepository
	settingsRepo     *mockRepo.MockSettingsRepository
	pushSender       *mockService.MockPushSender
	mailSender       *mockService.MockMailSender
	publisher        *mockService.MockEventPublisher
	scheduler        *immediateScheduler
}

func createTestEventService(t *testing.T, withPublisher bool) eventServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	pushSender := mockService.NewMockPushSender(t)
	mailSender := mockService.NewMockMailSender(t)
	scheduler := &immediateScheduler{}
	cfg := newTestConfig()
	logger := newDiscardLogger()

	settings := NewSettingsService(settingsRepo, logger)
	notifications := NewNotificationService(notificationRepo, accountRepo, settings, cfg, logger)
	devices := NewDeviceService(accountRepo, logger)
	push := NewPushService(accountRepo, settings, pushSender, cfg, logger)
	email := NewEmailService(accountRepo, settings, mailSender, cfg, logger)
	verifier := NewVerifierService(devices, scheduler, cfg, logger)

	var publisher *mockService.MockEventPublisher
	var domainPublisher service.EventPublisher
	if withPublisher {
		publisher = mockService.NewMockEventPublisher(t)
		domainPublisher = publisher
	}

	eventService := NewEventService(notifications, devices, push, email, verifier, domainPublisher, cfg, logger)

	return eventServiceFixtures{
		service:          eventService,
		notificationRepo: notificationRepo,
		accountRepo:      accountRepo,
		settingsRepo:     settingsRepo,
		pushSender:       pushSender,
		mailSender:       mailSender,
		publisher:        publisher,
		scheduler:        scheduler,
	}
}

func awaitSignals(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for range n {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for channel dispatch")
		}
	}
}

func TestEventService_HandleAccountEvent_WritesRecordAndFansOut(t *testing.T) {
	fx := createTestEventService(t, false)
	ctx := context.Background()

	account := &entity.Account{
		ID:    "MEGG-679622",
		Email: "farmer@example.com",
		FCMTokens: []entity.DeviceToken{
			{Token: "tok-1", IsActive: true},
		},
	}

	fx.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.settingsRepo.EXPECT().
		FindByAccount(mock.Anything, "MEGG-679622").
		Return(nil, repository.ErrSettingsNotFound).
		Maybe()
	fx.accountRepo.EXPECT().
		FindByID(mock.Anything, "MEGG-679622").
		Return(account, nil).
		Maybe()

	done := make(chan struct{}, 2)
	fx.pushSender.EXPECT().
		SendMulticast(mock.Anything, []string{"tok-1"}, mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, _ []string, _ *service.PushMessage) {
			done <- struct{}{}
		}).
		Return(&service.MulticastResult{SuccessCount: 1}, nil)
	fx.mailSender.EXPECT().Verify(mock.Anything).Return(nil)
	fx.mailSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.MailMessage")).
		Run(func(_ context.Context, _ *service.MailMessage) {
			done <- struct{}{}
		}).
		Return(nil)

	report, err := fx.service.HandleAccountEvent(ctx, &service.AccountEvent{
		AccountID: "MEGG-679622",
		Category:  entity.CategoryLogin,
		Message:   "New login to your account",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^NOTIF-MEGG-679622-[A-Z0-9]{6}$`, report.NotificationID)

	// Push and email run detached; the record write above already
	// returned before either transport was touched.
	awaitSignals(t, done, 2)
}

func TestEventService_HandleAccountEvent_OriginTokenGoesThroughVerifier(t *testing.T) {
	fx := createTestEventService(t, false)
	ctx := context.Background()

	account := &entity.Account{
		ID: "MEGG-679622",
		FCMTokens: []entity.DeviceToken{
			{Token: "tok-origin", IsActive: true},
		},
	}

	fx.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.settingsRepo.EXPECT().
		FindByAccount(mock.Anything, "MEGG-679622").
		Return(nil, repository.ErrSettingsNotFound).
		Maybe()
	fx.accountRepo.EXPECT().
		FindByID(mock.Anything, "MEGG-679622").
		Return(account, nil).
		Maybe()

	// The origin token is registered up front, then the verifier's
	// existence check runs before the actual dispatch.
	registered := make(chan struct{}, 1)
	fx.accountRepo.EXPECT().
		TouchDeviceToken(mock.Anything, "MEGG-679622", mock.AnythingOfType("*entity.DeviceToken")).
		Run(func(_ context.Context, _ string, _ *entity.DeviceToken) {
			registered <- struct{}{}
		}).
		Return(true, nil)
	fx.accountRepo.EXPECT().
		HasActiveDeviceToken(mock.Anything, "MEGG-679622", "tok-origin").
		Return(true, nil)

	done := make(chan struct{}, 1)
	fx.pushSender.EXPECT().
		SendMulticast(mock.Anything, []string{"tok-origin"}, mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, _ []string, _ *service.PushMessage) {
			done <- struct{}{}
		}).
		Return(&service.MulticastResult{SuccessCount: 1}, nil)

	_, err := fx.service.HandleAccountEvent(ctx, &service.AccountEvent{
		AccountID:        "MEGG-679622",
		Category:         entity.CategoryLogin,
		Message:          "New login to your account",
		OriginToken:      "tok-origin",
		OriginDeviceType: entity.DeviceTypeWeb,
		OriginUserAgent:  "Chrome on Linux",
	})
	require.NoError(t, err)

	awaitSignals(t, registered, 1)
	awaitSignals(t, done, 1)
}

func TestEventService_HandleAccountEvent_ValidationError(t *testing.T) {
	fx := createTestEventService(t, false)

	_, err := fx.service.HandleAccountEvent(context.Background(), &service.AccountEvent{
		AccountID: "MEGG-679622",
	})
	require.Error(t, err)
}

func TestEventService_SubmitAccountEvent_PublishesWhenQueueConfigured(t *testing.T) {
	fx := createTestEventService(t, true)
	ctx := context.Background()

	event := &service.AccountEvent{
		AccountID: "MEGG-679622",
		Category:  entity.CategoryPasswordChange,
		Message:   "Your password was changed",
	}

	fx.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, event).
		Return(nil)

	require.NoError(t, fx.service.SubmitAccountEvent(ctx, event))
}

func TestEventService_HandleAccountEvent_RecordWriteFailureStillFansOut(t *testing.T) {
	fx := createTestEventService(t, false)
	ctx := context.Background()

	account := &entity.Account{
		ID:    "MEGG-679622",
		Email: "farmer@example.com",
		FCMTokens: []entity.DeviceToken{
			{Token: "tok-1", IsActive: true},
		},
	}

	fx.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("write concern timeout"))
	fx.settingsRepo.EXPECT().
		FindByAccount(mock.Anything, "MEGG-679622").
		Return(nil, repository.ErrSettingsNotFound).
		Maybe()
	fx.accountRepo.EXPECT().
		FindByID(mock.Anything, "MEGG-679622").
		Return(account, nil).
		Maybe()

	done := make(chan struct{}, 2)
	fx.pushSender.EXPECT().
		SendMulticast(mock.Anything, []string{"tok-1"}, mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, _ []string, _ *service.PushMessage) {
			done <- struct{}{}
		}).
		Return(&service.MulticastResult{SuccessCount: 1}, nil)
	fx.mailSender.EXPECT().Verify(mock.Anything).Return(nil)
	fx.mailSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.MailMessage")).
		Run(func(_ context.Context, _ *service.MailMessage) {
			done <- struct{}{}
		}).
		Return(nil)

	// The record write is the only caller-visible failure, but it must
	// not hold the push and email legs hostage.
	report, err := fx.service.HandleAccountEvent(ctx, &service.AccountEvent{
		AccountID: "MEGG-679622",
		Category:  entity.CategoryLogin,
		Message:   "New login to your account",
	})
	require.Error(t, err)
	assert.Nil(t, report)

	awaitSignals(t, done, 2)
}
