// Package v1 /api/v1 경로 하위의 알림 API 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - POST /api/v1/notices                          - 알림 발송
//   - PUT  /api/v1/channels/email/sender            - 이메일 발신자 이름 변경
//   - GET  /api/v1/channels/sms/balance/:user_id    - SMS 잔액 조회
//   - PUT  /api/v1/channels/telegram/webhook        - 텔레그램 웹훅 갱신
//
// 모든 엔드포인트는 X-Application-Id, X-App-Key 헤더로 인증합니다.
package v1

import (
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/auth"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/middleware"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, authenticator *auth.Authenticator) {
	v1Group := e.Group("/api/v1", middleware.RequireAuthentication(authenticator))

	jsonOnly := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	v1Group.POST("/notices", h.SendNoticeHandler, jsonOnly)

	channels := v1Group.Group("/channels")
	channels.PUT("/email/sender", h.SetEmailSenderHandler, jsonOnly)
	channels.GET("/sms/balance/:user_id", h.CheckSMSBalanceHandler)
	channels.PUT("/telegram/webhook", h.UpdateTelegramWebhookHandler, jsonOnly)
}
