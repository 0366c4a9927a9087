package constants

import "time"

// HTTP 헤더 키 상수입니다.
const (
	// XAppKey 애플리케이션 인증용 HTTP 헤더 키
	XAppKey = "X-App-Key"

	// XApplicationID 애플리케이션 식별용 HTTP 헤더 키
	XApplicationID = "X-Application-Id"

	RetryAfter = "Retry-After"
)

// 서버 설정 기본값입니다.
const (
	// DefaultMaxBodySize 요청 본문의 최대 크기 (128KB)
	DefaultMaxBodySize = "128K"

	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultRequestTimeout 요청 하나의 최대 처리 시간입니다. 초과 시 503으로 응답합니다.
	DefaultRequestTimeout = 60 * time.Second

	// ShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	ShutdownTimeout = 5 * time.Second

	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40
)

// SensitiveQueryParams 로그 기록 시 마스킹해야 하는 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"app_key",
	"api_key",
	"password",
	"token",
	"secret",
}

// Context 키 상수입니다.
const (
	// ContextKeyApplication 인증된 Application 객체 저장용 Context 키
	ContextKeyApplication = "notice-dispatcher/api/auth/AuthenticatedApplication"
)
