package middleware

import (
	"strings"

	"github.com/darkkaiser/notice-dispatcher/internal/service/api/auth"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

// RequireAuthentication X-Application-Id와 X-App-Key 헤더로 애플리케이션을 인증합니다.
// 인증에 성공하면 애플리케이션 정보를 Context에 저장하고 다음 핸들러를 호출합니다.
func RequireAuthentication(authenticator *auth.Authenticator) echo.MiddlewareFunc {
	if authenticator == nil {
		panic(constants.PanicMsgAuthenticatorRequired)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			appKey := strings.TrimSpace(c.Request().Header.Get(constants.XAppKey))
			if appKey == "" {
				return ErrAppKeyRequired
			}

			applicationID := strings.TrimSpace(c.Request().Header.Get(constants.XApplicationID))
			if applicationID == "" {
				return ErrApplicationIDRequired
			}

			app, err := authenticator.Authenticate(applicationID, appKey)
			if err != nil {
				return err
			}

			auth.SetApplication(c, app)

			return next(c)
		}
	}
}
