package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/notice-dispatcher/internal/config"
	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// =============================================================================
// Helpers
// =============================================================================

type fakeDispatcher struct {
	mu       sync.Mutex
	requests []contract.NoticeRequest
	err      error
}

func (d *fakeDispatcher) Dispatch(_ context.Context, req contract.NoticeRequest) (*contract.NoticeReceipt, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.requests = append(d.requests, req)
	if d.err != nil {
		return nil, d.err
	}
	return &contract.NoticeReceipt{NoticeID: "n-1", Channel: req.Channel}, nil
}

func (d *fakeDispatcher) calls() []contract.NoticeRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]contract.NoticeRequest(nil), d.requests...)
}

// checkWaitGroupDone WaitGroup이 제한 시간 안에 0이 되는지 확인합니다.
func checkWaitGroupDone(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitGroup.Done()이 호출되지 않았습니다")
	}
}

// =============================================================================
// Construction & Lifecycle
// =============================================================================

func TestNewService_NilDispatcherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "NoticeDispatcher는 필수입니다", func() {
		NewService(nil, nil)
	})
}

func TestScheduler_Lifecycle(t *testing.T) {
	s := NewService(nil, &fakeDispatcher{})

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	require.NoError(t, s.Start(ctx, &wg))
	assert.True(t, s.running)
	assert.NotNil(t, s.cron)

	wg.Add(1)
	require.NoError(t, s.Start(ctx, &wg), "중복 시작은 무시")

	cancel()
	checkWaitGroupDone(t, &wg)

	assert.False(t, s.running)
	assert.Nil(t, s.cron)
	assert.NotPanics(t, s.stop, "중복 중지는 무시")
}

func TestScheduler_Start_Errors(t *testing.T) {
	tests := []struct {
		name      string
		schedules []config.ScheduleConfig
		mutate    func(*Scheduler)
		check     func(t *testing.T, err error)
	}{
		{
			name: "Dispatcher 없음",
			mutate: func(s *Scheduler) {
				s.dispatcher = nil
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDispatcherNotInitialized)
			},
		},
		{
			name: "잘못된 cron 표현식",
			schedules: []config.ScheduleConfig{
				{ID: "bad", Enabled: true, TimeSpec: "invalid-cron-spec", Channel: "email", Recipient: "r", Message: "m"},
			},
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
				assert.Contains(t, err.Error(), "ScheduleID=bad")
			},
		},
		{
			name: "알 수 없는 채널",
			schedules: []config.ScheduleConfig{
				{ID: "fax", Enabled: true, TimeSpec: "@daily", Channel: "fax", Recipient: "r", Message: "m"},
			},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "스케줄 등록 실패")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(tt.schedules, &fakeDispatcher{})
			if tt.mutate != nil {
				tt.mutate(s)
			}

			var wg sync.WaitGroup
			wg.Add(1)
			err := s.Start(context.Background(), &wg)

			require.Error(t, err)
			tt.check(t, err)
			assert.False(t, s.running)
			checkWaitGroupDone(t, &wg)
		})
	}
}

// =============================================================================
// Registration & Dispatch
// =============================================================================

func TestScheduler_RegistersOnlyEnabled(t *testing.T) {
	schedules := []config.ScheduleConfig{
		{ID: "a", Enabled: true, TimeSpec: "0 0 9 * * *", Channel: "email", Recipient: "r", Message: "m"},
		{ID: "b", Enabled: false, TimeSpec: "0 0 10 * * *", Channel: "sms", Recipient: "r", Message: "m"},
		{ID: "c", Enabled: true, TimeSpec: "@hourly", Channel: "TG", Recipient: "r", Message: "m"},
	}
	s := NewService(schedules, &fakeDispatcher{})

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, s.Start(ctx, &wg))

	s.runningMu.Lock()
	assert.Len(t, s.cron.Entries(), 2)
	s.runningMu.Unlock()

	cancel()
	checkWaitGroupDone(t, &wg)
}

func TestScheduler_DispatchesOnSchedule(t *testing.T) {
	d := &fakeDispatcher{}
	schedules := []config.ScheduleConfig{
		{
			ID:        "every-second",
			Enabled:   true,
			TimeSpec:  "@every 1s",
			Channel:   "telegram",
			Recipient: "123",
			Message:   "Пинг",
			Buttons:   []string{"OK"},
		},
	}
	s := NewService(schedules, d)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, s.Start(ctx, &wg))

	assert.Eventually(t, func() bool { return len(d.calls()) > 0 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	checkWaitGroupDone(t, &wg)

	req := d.calls()[0]
	assert.Equal(t, contract.ChannelTelegram, req.Channel)
	assert.Equal(t, "123", req.Recipient)
	assert.Equal(t, "Пинг", req.Message)
	assert.Equal(t, []string{"OK"}, req.Buttons)
}

func TestScheduler_DispatchErrorIsLogged(t *testing.T) {
	d := &fakeDispatcher{err: errors.New("channel down")}
	s := NewService(nil, d)

	req := contract.NoticeRequest{Channel: contract.ChannelSMS, Recipient: "+1", Message: "m"}
	assert.NotPanics(t, func() { s.dispatch("sms-daily", req) })
	assert.Len(t, d.calls(), 1)
}

func TestToNoticeRequest(t *testing.T) {
	req, err := toNoticeRequest(config.ScheduleConfig{
		Channel:     "E-Mail",
		Recipient:   "team@example.com",
		Message:     "m",
		Attachments: []string{"a.pdf"},
	})

	require.NoError(t, err)
	assert.Equal(t, contract.ChannelEmail, req.Channel)
	assert.Equal(t, []string{"a.pdf"}, req.Attachments)
}
