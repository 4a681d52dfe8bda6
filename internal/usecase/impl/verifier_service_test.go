package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"notifier/internal/domain/entity"
	mockRepo "notifier/internal/mocks/repository"
	"notifier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// verifierServiceFixtures holds all test dependencies for verifier service tests.
type verifierServiceFixtures struct {
	service     usecase.VerifierUsecase
	accountRepo *mockRepo.MockAccountRepository
	scheduler   *immediateScheduler
}

func createTestVerifierService(t *testing.T) verifierServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	devices := NewDeviceService(accountRepo, newDiscardLogger())
	scheduler := &immediateScheduler{}
	service := NewVerifierService(devices, scheduler, newTestConfig(), newDiscardLogger())

	return verifierServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		scheduler:   scheduler,
	}
}

func TestVerifierService_ScheduleVerifiedSend_TokenPresent(t *testing.T) {
	fx := createTestVerifierService(t)

	fx.accountRepo.EXPECT().
		HasActiveDeviceToken(mock.Anything, "MEGG-679622", "tok-1").
		Return(true, nil)

	var sends atomic.Int32
	fx.service.ScheduleVerifiedSend("MEGG-679622", &usecase.TokenRegistration{Token: "tok-1"}, func(_ context.Context) error {
		sends.Add(1)

		return nil
	})

	assert.Equal(t, int32(1), sends.Load(), "send runs exactly once")

	delays := fx.scheduler.scheduledDelays()
	require.Len(t, delays, 1)
	assert.Equal(t, 5*time.Second, delays[0])
}

func TestVerifierService_ScheduleVerifiedSend_TokenMissingReRegistersThenSends(t *testing.T) {
	fx := createTestVerifierService(t)

	// Simulated read lag: the existence check misses the registration.
	fx.accountRepo.EXPECT().
		HasActiveDeviceToken(mock.Anything, "MEGG-679622", "tok-1").
		Return(false, nil)
	fx.accountRepo.EXPECT().
		TouchDeviceToken(mock.Anything, "MEGG-679622", mock.AnythingOfType("*entity.DeviceToken")).
		Return(true, nil)

	var sends atomic.Int32
	fx.service.ScheduleVerifiedSend("MEGG-679622", &usecase.TokenRegistration{
		Token:      "tok-1",
		DeviceType: entity.DeviceTypeWeb,
	}, func(_ context.Context) error {
		sends.Add(1)

		return nil
	})

	assert.Equal(t, int32(1), sends.Load(), "send still runs exactly once")

	delays := fx.scheduler.scheduledDelays()
	require.Len(t, delays, 2)
	assert.Equal(t, 5*time.Second, delays[0])
	assert.Equal(t, time.Second, delays[1], "retry waits the shorter settle interval")
}

func TestVerifierService_ScheduleVerifiedSend_SendErrorIsSwallowed(t *testing.T) {
	fx := createTestVerifierService(t)

	fx.accountRepo.EXPECT().
		HasActiveDeviceToken(mock.Anything, "MEGG-679622", "tok-1").
		Return(true, nil)

	// Must not panic or propagate; the dispatch outcome is log-only.
	fx.service.ScheduleVerifiedSend("MEGG-679622", &usecase.TokenRegistration{Token: "tok-1"}, func(_ context.Context) error {
		return assert.AnError
	})
}

func TestVerifierService_ScheduleVerifiedSend_MissingTokenIsIgnored(t *testing.T) {
	fx := createTestVerifierService(t)

	fx.service.ScheduleVerifiedSend("MEGG-679622", &usecase.TokenRegistration{}, func(_ context.Context) error {
		t.Fatal("send must not run without a token")

		return nil
	})

	assert.Empty(t, fx.scheduler.scheduledDelays())
}
