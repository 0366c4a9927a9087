package middleware

import (
	"mime"

	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/labstack/echo/v4"
)

// ValidateContentType 본문이 있는 요청의 미디어 타입이 mediaType과 같은지 확인합니다.
// charset 등의 파라미터는 무시하며, 본문이 없는 요청은 검사하지 않습니다.
func ValidateContentType(mediaType string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}

			contentType := req.Header.Get(echo.HeaderContentType)
			if actual, _, err := mime.ParseMediaType(contentType); err == nil && actual == mediaType {
				return next(c)
			}

			applog.WithComponentAndFields(constants.ComponentMiddlewareContentType, applog.Fields{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"path":       req.URL.Path,
				"expected":   mediaType,
				"actual":     contentType,
				"remote_ip":  c.RealIP(),
			}).Warn(constants.LogMsgUnsupportedContentType)

			return ErrUnsupportedMediaType
		}
	}
}
