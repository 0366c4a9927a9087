package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/notice-dispatcher/internal/config"
	"github.com/darkkaiser/notice-dispatcher/internal/pkg/version"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification"
	"github.com/darkkaiser/notice-dispatcher/internal/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// =============================================================================
// Test Helpers
// =============================================================================

const (
	testAppID  = "ops-bot"
	testAppKey = "ops-bot-secret-key"
)

func testAppConfig(port int) *config.AppConfig {
	appConfig := &config.AppConfig{
		Debug: true,
		Channels: config.ChannelsConfig{
			Email:    config.EmailChannelConfig{Enabled: true, SenderName: "MyApp"},
			SMS:      config.SMSChannelConfig{Enabled: false},
			Telegram: config.TelegramChannelConfig{Enabled: true, BotToken: "tg_bot_token", MaxButtons: 3},
		},
	}
	appConfig.NotifyAPI.Enabled = true
	appConfig.NotifyAPI.WS.ListenPort = port
	appConfig.NotifyAPI.CORS.AllowOrigins = []string{"*"}
	appConfig.NotifyAPI.Applications = []config.ApplicationConfig{
		{ID: testAppID, Title: "운영 알림 봇", AppKey: testAppKey, AllowedChannels: []string{"telegram"}},
	}

	return appConfig
}

// startServices 알림 서비스와 API 서비스를 시작하고, 테스트 종료 시 모두 중지될 때까지 기다립니다.
func startServices(t *testing.T, appConfig *config.AppConfig) *Service {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	notificationService := notification.NewService(appConfig, nil)
	wg.Add(1)
	require.NoError(t, notificationService.Start(ctx, wg))

	apiService := NewService(appConfig, notificationService, version.Info{Version: "1.0.0", Commit: "abc1234"})
	wg.Add(1)
	require.NoError(t, apiService.Start(ctx, wg))

	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})

	testutil.WaitForServer(t, appConfig.NotifyAPI.WS.ListenPort, 3*time.Second)

	return apiService
}

func newTestClient() *http.Client {
	return &http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{
			DisableKeepAlives: true,
			TLSClientConfig:   &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
		},
	}
}

func doRequest(t *testing.T, method, url, body string, headers map[string]string) (int, string) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := newTestClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(b)
}

func (s *Service) isRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}

// =============================================================================
// Constructor & Start
// =============================================================================

func TestNewService_NilConfigPanics(t *testing.T) {
	assert.PanicsWithValue(t, constants.PanicMsgAppConfigRequired, func() {
		NewService(nil, nil, version.Info{})
	})
}

func TestService_Start_NilNotificationService(t *testing.T) {
	s := NewService(testAppConfig(8080), nil, version.Info{})

	wg := &sync.WaitGroup{}
	wg.Add(1)
	err := s.Start(context.Background(), wg)

	assert.ErrorIs(t, err, ErrNotificationServiceNotInitialized)
	wg.Wait()
	assert.False(t, s.isRunning())
}

func TestService_Start_Duplicate(t *testing.T) {
	appConfig := testAppConfig(testutil.FreePort(t))
	s := startServices(t, appConfig)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(context.Background(), wg), "중복 시작은 무시")
	wg.Wait()

	assert.True(t, s.isRunning())
}

// =============================================================================
// End-to-End
// =============================================================================

func TestService_EndToEnd(t *testing.T) {
	appConfig := testAppConfig(testutil.FreePort(t))
	startServices(t, appConfig)

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", appConfig.NotifyAPI.WS.ListenPort)
	authHeaders := map[string]string{
		constants.XApplicationID: testAppID,
		constants.XAppKey:        testAppKey,
	}

	t.Run("헬스체크", func(t *testing.T) {
		code, body := doRequest(t, http.MethodGet, baseURL+"/health", "", nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, constants.HealthStatusHealthy, gjson.Get(body, "status").String())
		assert.Equal(t, `["email","telegram"]`, gjson.Get(body, "channels").Raw)
	})

	t.Run("버전 정보", func(t *testing.T) {
		code, body := doRequest(t, http.MethodGet, baseURL+"/version", "", nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "1.0.0", gjson.Get(body, "version").String())
		assert.Equal(t, "abc1234", gjson.Get(body, "commit").String())
	})

	t.Run("텔레그램 알림 발송", func(t *testing.T) {
		code, body := doRequest(t, http.MethodPost, baseURL+"/api/v1/notices",
			`{"channel":"TG","recipient":" @ops_alerts ","message":"배포 완료","buttons":["확인","취소"]}`, authHeaders)

		require.Equal(t, http.StatusOK, code, body)
		assert.Equal(t, int64(0), gjson.Get(body, "result_code").Int())
		assert.Equal(t, "telegram", gjson.Get(body, "channel").String())
		assert.Equal(t, "@ops_alerts", gjson.Get(body, "recipient").String())
		assert.NotEmpty(t, gjson.Get(body, "notice_id").String())
		assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\] 배포 완료$`, gjson.Get(body, "message").String())
	})

	t.Run("허용되지 않은 채널", func(t *testing.T) {
		code, body := doRequest(t, http.MethodPost, baseURL+"/api/v1/notices",
			`{"channel":"email","recipient":"team@example.com","message":"m"}`, authHeaders)

		assert.Equal(t, http.StatusForbidden, code)
		assert.Equal(t, int64(http.StatusForbidden), gjson.Get(body, "result_code").Int())
	})

	t.Run("잘못된 App Key", func(t *testing.T) {
		code, _ := doRequest(t, http.MethodPost, baseURL+"/api/v1/notices",
			`{"channel":"telegram","recipient":"1","message":"m"}`,
			map[string]string{constants.XApplicationID: testAppID, constants.XAppKey: "wrong"})

		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("존재하지 않는 경로", func(t *testing.T) {
		code, body := doRequest(t, http.MethodGet, baseURL+"/no-such-path", "", nil)

		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, constants.ErrMsgNotFound, gjson.Get(body, "message").String())
	})
}

func TestService_TLS(t *testing.T) {
	certFile, keyFile := testutil.SelfSignedCert(t)

	appConfig := testAppConfig(testutil.FreePort(t))
	appConfig.NotifyAPI.WS.TLSServer = true
	appConfig.NotifyAPI.WS.TLSCertFile = certFile
	appConfig.NotifyAPI.WS.TLSKeyFile = keyFile
	startServices(t, appConfig)

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("https://127.0.0.1:%d/version", appConfig.NotifyAPI.WS.ListenPort), nil)
	require.NoError(t, err)

	resp, err := newTestClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Strict-Transport-Security"), "max-age=31536000")
}

// =============================================================================
// Shutdown
// =============================================================================

func TestService_UnexpectedServerExit(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	// 포트를 미리 점유해서 서버가 바인딩에 실패하도록 만든다
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	appConfig := testAppConfig(l.Addr().(*net.TCPAddr).Port)
	s := NewService(appConfig, notification.NewService(appConfig, nil), version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	wg.Wait()

	assert.False(t, s.isRunning())

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, constants.LogMsgServiceHTTPServerFatalError)
	assert.Contains(t, messages, constants.LogMsgServiceUnexpectedExit)
}

func TestService_GracefulShutdown(t *testing.T) {
	appConfig := testAppConfig(testutil.FreePort(t))

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	s := NewService(appConfig, notification.NewService(appConfig, nil), version.Info{})
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	testutil.WaitForServer(t, appConfig.NotifyAPI.WS.ListenPort, 3*time.Second)

	cancel()
	wg.Wait()

	assert.False(t, s.isRunning())

	_, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", appConfig.NotifyAPI.WS.ListenPort), 100*time.Millisecond)
	assert.Error(t, err, "종료 후에는 연결을 받지 않아야 합니다")
}
