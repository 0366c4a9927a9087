package config

const (
	// AppName 로그 파일명, 환경 변수 접두어 등에 사용하는 애플리케이션 이름입니다.
	AppName = "notice-dispatcher"

	// DefaultFilename 경로를 지정하지 않았을 때 읽는 설정 파일입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두어입니다.
	// 계층은 "__"로 구분합니다. (예: NOTICE_CHANNELS__SMS__API_KEY → channels.sms.api_key)
	EnvPrefix = "NOTICE_"

	// DefaultMaxButtons 한 메시지에 붙일 수 있는 텔레그램 인라인 버튼 수의 기본 상한입니다.
	DefaultMaxButtons = 10

	DefaultListenPort = 2443
)

// AppConfig 애플리케이션 설정의 루트입니다.
type AppConfig struct {
	Debug     bool             `json:"debug"`
	Channels  ChannelsConfig   `json:"channels"`
	Schedules []ScheduleConfig `json:"schedules"`
	NotifyAPI NotifyAPIConfig  `json:"notify_api"`
}

// ChannelsConfig 채널별 발송기 설정입니다.
type ChannelsConfig struct {
	Email    EmailChannelConfig    `json:"email"`
	SMS      SMSChannelConfig      `json:"sms"`
	Telegram TelegramChannelConfig `json:"telegram"`
}

type EmailChannelConfig struct {
	Enabled    bool   `json:"enabled"`
	SenderName string `json:"sender_name" validate:"required_if=Enabled true"`
}

type SMSChannelConfig struct {
	Enabled bool   `json:"enabled"`
	APIKey  string `json:"api_key" validate:"required_if=Enabled true"`
}

type TelegramChannelConfig struct {
	Enabled    bool   `json:"enabled"`
	BotToken   string `json:"bot_token" validate:"required_if=Enabled true"`
	MaxButtons int    `json:"max_buttons" validate:"min=1,max=100"`
}

// ScheduleConfig 주기적으로 발송할 알림 하나를 정의합니다.
type ScheduleConfig struct {
	ID          string   `json:"id" validate:"required"`
	Enabled     bool     `json:"enabled"`
	TimeSpec    string   `json:"time_spec" validate:"required,cron_spec"`
	Channel     string   `json:"channel" validate:"required,channel"`
	Recipient   string   `json:"recipient" validate:"required"`
	Message     string   `json:"message" validate:"required"`
	Attachments []string `json:"attachments"`
	Flash       bool     `json:"flash"`
	Buttons     []string `json:"buttons"`
}

// NotifyAPIConfig 알림 발송 REST API 서버 설정입니다.
type NotifyAPIConfig struct {
	Enabled      bool                `json:"enabled"`
	WS           WSConfig            `json:"ws"`
	CORS         CORSConfig          `json:"cors"`
	RateLimit    RateLimitConfig     `json:"rate_limit"`
	Applications []ApplicationConfig `json:"applications"`
}

type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"min=1"`
	Burst             int `json:"burst" validate:"min=1"`
}

// ApplicationConfig API를 호출할 수 있는 클라이언트와 그 클라이언트가 사용할 수 있는 채널입니다.
// AllowedChannels가 비어 있으면 활성화된 모든 채널을 허용합니다.
type ApplicationConfig struct {
	ID              string   `json:"id" validate:"required"`
	Title           string   `json:"title"`
	AppKey          string   `json:"app_key" validate:"required"`
	AllowedChannels []string `json:"allowed_channels" validate:"dive,channel"`
}

// newDefaultConfig 설정 파일과 환경 변수가 덮어쓰기 전의 기본값입니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Channels: ChannelsConfig{
			Email:    EmailChannelConfig{Enabled: true, SenderName: "MyApp"},
			SMS:      SMSChannelConfig{Enabled: false},
			Telegram: TelegramChannelConfig{Enabled: false, MaxButtons: DefaultMaxButtons},
		},
		NotifyAPI: NotifyAPIConfig{
			WS:        WSConfig{ListenPort: DefaultListenPort},
			CORS:      CORSConfig{AllowOrigins: []string{"*"}},
			RateLimit: RateLimitConfig{RequestsPerSecond: 20, Burst: 40},
		},
	}
}
