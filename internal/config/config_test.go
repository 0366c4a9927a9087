package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Helpers
// =============================================================================

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const fullConfig = `{
	"debug": true,
	"channels": {
		"email": { "enabled": true, "sender_name": "Служба уведомлений" },
		"sms": { "enabled": true, "api_key": "sms_api_key_123" },
		"telegram": { "enabled": true, "bot_token": "tg_bot_token_456", "max_buttons": 5 }
	},
	"schedules": [
		{
			"id": "daily-report",
			"enabled": true,
			"time_spec": "0 0 9 * * *",
			"channel": "email",
			"recipient": "team@example.com",
			"message": "Ежедневный отчёт",
			"attachments": ["report.pdf"]
		}
	],
	"notify_api": {
		"enabled": true,
		"ws": { "listen_port": 18080 },
		"cors": { "allow_origins": ["http://localhost:3000"] },
		"applications": [
			{ "id": "backoffice", "app_key": "secret-key", "allowed_channels": ["email", "tg"] }
		]
	}
}`

// =============================================================================
// Loading
// =============================================================================

func TestLoadWithFile_Full(t *testing.T) {
	cfg, err := LoadWithFile(writeConfig(t, fullConfig))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "Служба уведомлений", cfg.Channels.Email.SenderName)
	assert.Equal(t, "sms_api_key_123", cfg.Channels.SMS.APIKey)
	assert.Equal(t, 5, cfg.Channels.Telegram.MaxButtons)
	assert.Equal(t, []contract.Channel{contract.ChannelEmail, contract.ChannelSMS, contract.ChannelTelegram}, cfg.Channels.EnabledChannels())

	require.Len(t, cfg.Schedules, 1)
	assert.Equal(t, []string{"report.pdf"}, cfg.Schedules[0].Attachments)

	assert.Equal(t, 18080, cfg.NotifyAPI.WS.ListenPort)
	assert.Equal(t, 20, cfg.NotifyAPI.RateLimit.RequestsPerSecond, "파일에 없는 항목은 기본값 유지")
	assert.Equal(t, []string{"email", "tg"}, cfg.NotifyAPI.Applications[0].AllowedChannels)
}

func TestLoadWithFile_Defaults(t *testing.T) {
	cfg, err := LoadWithFile(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.True(t, cfg.Channels.Email.Enabled)
	assert.Equal(t, "MyApp", cfg.Channels.Email.SenderName)
	assert.False(t, cfg.Channels.SMS.Enabled)
	assert.Equal(t, DefaultMaxButtons, cfg.Channels.Telegram.MaxButtons)
	assert.False(t, cfg.NotifyAPI.Enabled)
	assert.Equal(t, DefaultListenPort, cfg.NotifyAPI.WS.ListenPort)
	assert.Equal(t, []string{"*"}, cfg.NotifyAPI.CORS.AllowOrigins)
}

func TestLoadWithFile_EnvOverride(t *testing.T) {
	t.Setenv("NOTICE_CHANNELS__SMS__ENABLED", "true")
	t.Setenv("NOTICE_CHANNELS__SMS__API_KEY", "from-env")
	t.Setenv("NOTICE_CHANNELS__TELEGRAM__MAX_BUTTONS", "3")

	cfg, err := LoadWithFile(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.True(t, cfg.Channels.SMS.Enabled)
	assert.Equal(t, "from-env", cfg.Channels.SMS.APIKey)
	assert.Equal(t, 3, cfg.Channels.Telegram.MaxButtons)
}

func TestLoadWithFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errType apperrors.ErrorType
		wantMsg string
	}{
		{
			name:    "JSON 문법 오류",
			content: `{ "debug": `,
			errType: apperrors.InvalidInput,
		},
		{
			name:    "알 수 없는 항목",
			content: `{ "unknown_field": 1 }`,
			errType: apperrors.InvalidInput,
		},
		{
			name:    "활성화된 채널에 자격 증명 누락",
			content: `{ "channels": { "sms": { "enabled": true } } }`,
			wantMsg: "api_key",
		},
		{
			name:    "모든 채널 비활성",
			content: `{ "channels": { "email": { "enabled": false } } }`,
			wantMsg: "활성화된 알림 채널이 하나도 없습니다",
		},
		{
			name:    "버튼 상한 범위 초과",
			content: `{ "channels": { "telegram": { "max_buttons": 0 } } }`,
			wantMsg: "max_buttons",
		},
		{
			name:    "잘못된 cron 표현식",
			content: `{ "schedules": [ { "id": "a", "time_spec": "* * *", "channel": "email", "recipient": "r", "message": "m" } ] }`,
			wantMsg: "time_spec",
		},
		{
			name:    "알 수 없는 채널",
			content: `{ "schedules": [ { "id": "a", "time_spec": "@daily", "channel": "fax", "recipient": "r", "message": "m" } ] }`,
			wantMsg: "알 수 없는 채널",
		},
		{
			name:    "비활성 채널을 사용하는 스케줄",
			content: `{ "schedules": [ { "id": "a", "enabled": true, "time_spec": "@daily", "channel": "sms", "recipient": "r", "message": "m" } ] }`,
			wantMsg: "비활성화된 채널",
		},
		{
			name:    "채널과 맞지 않는 옵션",
			content: `{ "schedules": [ { "id": "a", "time_spec": "@daily", "channel": "email", "recipient": "r", "message": "m", "flash": true } ] }`,
			wantMsg: "발송 옵션",
		},
		{
			name: "스케줄 ID 중복",
			content: `{ "schedules": [
				{ "id": "a", "time_spec": "@daily", "channel": "email", "recipient": "r", "message": "m" },
				{ "id": "a", "time_spec": "@daily", "channel": "email", "recipient": "r", "message": "m" } ] }`,
			wantMsg: "중복된 Schedule ID",
		},
		{
			name:    "API 애플리케이션 없음",
			content: `{ "notify_api": { "enabled": true } }`,
			wantMsg: "applications",
		},
		{
			name:    "와일드카드와 도메인 혼용",
			content: `{ "notify_api": { "enabled": true, "cors": { "allow_origins": ["*", "https://a.com"] }, "applications": [ { "id": "a", "app_key": "k" } ] } }`,
			wantMsg: "와일드카드",
		},
		{
			name:    "잘못된 CORS Origin",
			content: `{ "notify_api": { "enabled": true, "cors": { "allow_origins": ["https://a.com/path"] }, "applications": [ { "id": "a", "app_key": "k" } ] } }`,
			wantMsg: "CORS Origin",
		},
		{
			name:    "TLS 인증서 누락",
			content: `{ "notify_api": { "enabled": true, "ws": { "tls_server": true, "listen_port": 443 }, "applications": [ { "id": "a", "app_key": "k" } ] } }`,
			wantMsg: "tls_cert_file",
		},
		{
			name:    "앱 키 누락",
			content: `{ "notify_api": { "enabled": true, "applications": [ { "id": "a" } ] } }`,
			wantMsg: "app_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWithFile(writeConfig(t, tt.content))

			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.errType != apperrors.Unknown {
				assert.True(t, apperrors.Is(err, tt.errType))
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadWithFile_MissingFile(t *testing.T) {
	_, err := LoadWithFile(filepath.Join(t.TempDir(), "none.json"))

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.System))
}

// =============================================================================
// Recommendations
// =============================================================================

func TestVerifyRecommendations(t *testing.T) {
	cfg := newDefaultConfig()
	assert.Empty(t, cfg.VerifyRecommendations(), "API 비활성 기본 설정은 경고 없음")

	cfg.NotifyAPI.Enabled = true
	cfg.NotifyAPI.WS.ListenPort = 80
	cfg.Channels.Telegram.Enabled = true
	cfg.Channels.Telegram.MaxButtons = 50

	warnings := cfg.VerifyRecommendations()
	assert.Len(t, warnings, 3)
}

func TestEnvKeyToPath(t *testing.T) {
	assert.Equal(t, "notify_api.ws.listen_port", envKeyToPath("NOTICE_NOTIFY_API__WS__LISTEN_PORT"))
	assert.Equal(t, "debug", envKeyToPath("NOTICE_DEBUG"))
}
