package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/notice-dispatcher/internal/service/api/middleware"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// hstsMaxAge TLS 서버에서 보내는 Strict-Transport-Security max-age (1년)
const hstsMaxAge = 31536000

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS TLS 서버일 때 Strict-Transport-Security 헤더를 보냅니다.
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestsPerSecond, Burst IP별 요청 속도 제한 (0이면 기본값 20, 40)
	RequestsPerSecond int
	Burst             int

	// RequestTimeout 요청 하나의 최대 처리 시간 (기본값: 60초)
	RequestTimeout time.Duration
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//  1. PanicRecovery - 패닉 복구 및 로깅
//  2. RequestID - 요청 ID 생성 (X-Request-ID)
//  3. Server 헤더 제거
//  4. HTTPLogger - 요청 로깅 (429, 413 응답도 기록)
//  5. RateLimiting - IP 기반 요청 제한
//  6. BodyLimit - 요청 본문 크기 제한 (413)
//  7. ContextTimeout - 요청 처리 시간 제한 (503)
//  8. CORS
//  9. Secure - 보안 헤더
//
// 라우트는 포함되지 않으며, 반환된 인스턴스에 별도로 등록해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	rps, burst := cfg.RequestsPerSecond, cfg.Burst
	if rps <= 0 {
		rps = constants.DefaultRateLimitPerSecond
	}
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimiting(rps, burst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType, constants.XAppKey, constants.XApplicationID},
	}))

	secure := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secure.HSTSMaxAge = hstsMaxAge
	}
	e.Use(middleware.SecureWithConfig(secure))

	return e
}
