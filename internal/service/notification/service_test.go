package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/notice-dispatcher/internal/config"
	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification/notifier"
	"github.com/google/uuid"
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

type recordingSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *recordingSink) Infof(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, fmt.Sprintf(format, args...))
}

func (s *recordingSink) Warnf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, "WARN "+fmt.Sprintf(format, args...))
}

func (s *recordingSink) matching(substr string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, l := range s.lines {
		if strings.Contains(l, substr) {
			out = append(out, l)
		}
	}
	return out
}

var fixedNow = time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Channels: config.ChannelsConfig{
			Email:    config.EmailChannelConfig{Enabled: true, SenderName: "MyApp"},
			SMS:      config.SMSChannelConfig{Enabled: true, APIKey: "sms_api_key_123"},
			Telegram: config.TelegramChannelConfig{Enabled: true, BotToken: "tg_bot_token_456", MaxButtons: 3},
		},
	}
}

// startService 서비스를 시작하고, 테스트 종료 시 중지될 때까지 기다립니다.
func startService(t *testing.T, cfg *config.AppConfig) (*Service, *recordingSink) {
	t.Helper()

	sink := &recordingSink{}
	svc := NewService(cfg, func(contract.Channel) notifier.Sink { return sink },
		notifier.WithClock(func() time.Time { return fixedNow }))

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, svc.Start(ctx, wg))

	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})

	return svc, sink
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestService_Lifecycle(t *testing.T) {
	svc := NewService(testConfig(), nil)
	assert.ErrorIs(t, svc.Health(), ErrServiceNotRunning)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, svc.Start(ctx, wg))
	assert.NoError(t, svc.Health())

	wg.Add(1)
	require.NoError(t, svc.Start(ctx, wg), "중복 시작은 무시")

	cancel()
	wg.Wait()

	assert.ErrorIs(t, svc.Health(), ErrServiceNotRunning)

	_, err := svc.Dispatch(context.Background(), contract.NoticeRequest{Channel: contract.ChannelEmail, Recipient: "u", Message: "m"})
	assert.ErrorIs(t, err, ErrServiceNotRunning)
}

type failingFactory struct{}

func (failingFactory) RegisterProcessor(notifier.ConfigProcessor) {}
func (failingFactory) CreateSenders(*config.ChannelsConfig, notifier.SinkProvider, ...notifier.Option) ([]notifier.Sender, error) {
	return nil, errors.New("factory failure")
}

func TestService_Start_FactoryError(t *testing.T) {
	svc := NewService(testConfig(), nil)
	svc.SetFactory(failingFactory{})

	wg := &sync.WaitGroup{}
	wg.Add(1)
	err := svc.Start(context.Background(), wg)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Internal))
	wg.Wait()
	assert.ErrorIs(t, svc.Health(), ErrServiceNotRunning)
}

// =============================================================================
// Dispatch
// =============================================================================

func TestService_Dispatch_Errors(t *testing.T) {
	cfg := testConfig()
	cfg.Channels.SMS.Enabled = false
	svc, _ := startService(t, cfg)

	tests := []struct {
		name    string
		req     contract.NoticeRequest
		errType apperrors.ErrorType
	}{
		{
			name:    "수신자 공백",
			req:     contract.NoticeRequest{Channel: contract.ChannelEmail, Recipient: "   ", Message: "m"},
			errType: apperrors.InvalidInput,
		},
		{
			name:    "메시지 없음",
			req:     contract.NoticeRequest{Channel: contract.ChannelEmail, Recipient: "u"},
			errType: apperrors.InvalidInput,
		},
		{
			name:    "비활성 채널",
			req:     contract.NoticeRequest{Channel: contract.ChannelSMS, Recipient: "+1", Message: "m"},
			errType: apperrors.Unavailable,
		},
		{
			name:    "알 수 없는 채널",
			req:     contract.NoticeRequest{Channel: contract.Channel("fax"), Recipient: "u", Message: "m"},
			errType: apperrors.NotFound,
		},
		{
			name:    "채널과 맞지 않는 옵션",
			req:     contract.NoticeRequest{Channel: contract.ChannelTelegram, Recipient: "1", Message: "m", Attachments: []string{"a.pdf"}},
			errType: apperrors.InvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := svc.Dispatch(context.Background(), tt.req)

			require.Error(t, err)
			assert.Nil(t, receipt)
			assert.True(t, apperrors.Is(err, tt.errType), "got %v", err)
		})
	}
}

func TestService_Dispatch_CancelledContext(t *testing.T) {
	svc, sink := startService(t, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Dispatch(ctx, contract.NoticeRequest{Channel: contract.ChannelEmail, Recipient: "u", Message: "m"})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sink.matching("발송"))
}

func TestService_Dispatch_Email(t *testing.T) {
	svc, sink := startService(t, testConfig())

	receipt, err := svc.Dispatch(context.Background(), contract.NoticeRequest{
		Channel:     contract.ChannelEmail,
		Recipient:   "  team@example.com ",
		Message:     "Отчёт готов",
		Attachments: []string{" report.pdf ", "", "chart.png"},
	})
	require.NoError(t, err)

	_, err = uuid.Parse(receipt.NoticeID)
	assert.NoError(t, err)
	assert.Equal(t, contract.ChannelEmail, receipt.Channel)
	assert.Equal(t, "team@example.com", receipt.Recipient)
	assert.Equal(t, "[18:30:00] Отчёт готов", receipt.Message)
	assert.Equal(t, notifier.FormatEmailHTML("[18:30:00] Отчёт готов"), receipt.Output)
	assert.Equal(t, fixedNow, receipt.SentAt)
	assert.Equal(t, []string{"첨부 파일: report.pdf, chart.png"}, sink.matching("첨부 파일:"))
}

func TestService_Dispatch_ButtonsCapped(t *testing.T) {
	svc, sink := startService(t, testConfig())

	_, err := svc.Dispatch(context.Background(), contract.NoticeRequest{
		Channel:   contract.ChannelTelegram,
		Recipient: "123",
		Message:   "Выберите",
		Buttons:   []string{"A", " ", "B", "C", "D", "E"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"[버튼]: A | B | C"}, sink.matching("[버튼]"))
}

func TestService_Dispatch_SMSFlashTruncated(t *testing.T) {
	svc, sink := startService(t, testConfig())

	receipt, err := svc.Dispatch(context.Background(), contract.NoticeRequest{
		Channel:   contract.ChannelSMS,
		Recipient: "+79991234567",
		Message:   strings.Repeat("a", 200),
		Flash:     true,
	})
	require.NoError(t, err)

	assert.True(t, receipt.Truncated)
	assert.True(t, strings.HasPrefix(receipt.Output, "[FLASH] [18:30:00] "))
	assert.Len(t, sink.matching("WARN "), 1)
}

func TestService_Dispatch_ConcurrentOptionsDoNotMix(t *testing.T) {
	svc, sink := startService(t, testConfig())

	const n = 30
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Dispatch(context.Background(), contract.NoticeRequest{
				Channel:     contract.ChannelEmail,
				Recipient:   "u@example.com",
				Message:     "m",
				Attachments: []string{fmt.Sprintf("file-%d.txt", i)},
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	lists := sink.matching("첨부 파일:")
	require.Len(t, lists, n)
	for _, l := range lists {
		assert.NotContains(t, l, ",", "한 발송에는 자기 요청의 첨부 파일만 포함")
	}
}

// =============================================================================
// Channel operations
// =============================================================================

func TestService_SetEmailSenderIdentity(t *testing.T) {
	svc, sink := startService(t, testConfig())

	err := svc.SetEmailSenderIdentity("  ")
	assert.ErrorIs(t, err, ErrSenderNameRequired)

	require.NoError(t, svc.SetEmailSenderIdentity("Служба поддержки"))
	_, err = svc.Dispatch(context.Background(), contract.NoticeRequest{Channel: contract.ChannelEmail, Recipient: "u", Message: "m"})
	require.NoError(t, err)

	assert.Len(t, sink.matching("(Служба поддержки → u)"), 1)
}

func TestService_CheckSMSBalance(t *testing.T) {
	svc, _ := startService(t, testConfig())

	balance, err := svc.CheckSMSBalance(12345)
	require.NoError(t, err)
	assert.InDelta(t, 129622.5, balance, 1e-9)
}

func TestService_CheckSMSBalance_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Channels.SMS.Enabled = false
	svc, _ := startService(t, cfg)

	_, err := svc.CheckSMSBalance(1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))
}

func TestService_UpdateTelegramWebhook(t *testing.T) {
	svc, sink := startService(t, testConfig())

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https 주소", "https://bot.example.com/hook", false},
		{"앞뒤 공백", "  https://bot.example.com/hook \t", false},
		{"http 주소", "http://bot.example.com/hook", true},
		{"빈 주소", "", true},
		{"호스트 없음", "https:///hook", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateTelegramWebhook(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
				return
			}
			require.NoError(t, err)
		})
	}

	assert.Equal(t, []string{
		"봇 웹훅이 갱신되었습니다: https://bot.example.com/hook",
		"봇 웹훅이 갱신되었습니다: https://bot.example.com/hook",
	}, sink.matching("봇 웹훅이 갱신되었습니다"), "공백을 제거한 주소로 갱신")
}
