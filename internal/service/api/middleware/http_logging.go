package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/labstack/echo/v4"
)

const defaultBytesIn = "0"

// HTTPLogger 처리된 모든 HTTP 요청을 한 줄의 구조화 로그로 기록합니다.
// URI의 민감한 쿼리 파라미터(app_key, token 등)는 마스킹합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			// 에러는 여기서 응답으로 변환해야 최종 상태 코드가 기록됩니다.
			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			path := req.URL.Path
			if path == "" {
				path = "/"
			}

			bytesIn := req.Header.Get(echo.HeaderContentLength)
			if bytesIn == "" {
				bytesIn = defaultBytesIn
			}

			applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
				"method":   req.Method,
				"path":     path,
				"uri":      maskSensitiveQueryParams(req.RequestURI),
				"host":     req.Host,
				"protocol": req.Proto,

				"remote_ip":  c.RealIP(),
				"user_agent": req.UserAgent(),

				"status":    res.Status,
				"bytes_in":  bytesIn,
				"bytes_out": strconv.FormatInt(res.Size, 10),

				"latency":       strconv.FormatInt(latency.Microseconds(), 10),
				"latency_human": latency.String(),

				"request_id": res.Header().Get(echo.HeaderXRequestID),
			}).Info(constants.LogMsgHTTPRequest)

			return nil
		}
	}
}

func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false

	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, applog.MaskSensitiveData(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
