// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 핸들러는 요청을 바인딩하고 검증한 뒤, 인증된 애플리케이션이 해당 채널을 사용할 수 있는지 확인하고
// 알림 서비스를 호출합니다. 서비스 에러는 httputil.FromAppError로 HTTP 상태 코드에 매핑됩니다.
package handler

import (
	"fmt"

	"github.com/darkkaiser/notice-dispatcher/internal/service/api/auth"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler v1 API 요청을 알림 서비스로 연결하는 핸들러입니다.
type Handler struct {
	dispatcher contract.NoticeDispatcher
	operator   contract.ChannelOperator
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(dispatcher contract.NoticeDispatcher, operator contract.ChannelOperator) *Handler {
	if dispatcher == nil {
		panic(constants.PanicMsgNoticeDispatcherRequired)
	}
	if operator == nil {
		panic(constants.PanicMsgChannelOperatorRequired)
	}

	return &Handler{
		dispatcher: dispatcher,
		operator:   operator,
	}
}

// authorizeChannel 인증된 애플리케이션이 channel을 사용할 수 있는지 확인합니다.
func (h *Handler) authorizeChannel(c echo.Context, channel contract.Channel) error {
	app := auth.MustGetApplication(c)
	if app.Allows(channel) {
		return nil
	}

	h.log(c).WithFields(applog.Fields{
		"application_id": app.ID,
		"channel":        channel.String(),
	}).Warn(constants.LogMsgChannelNotAllowed)

	return NewErrChannelForbidden(channel, app.ID)
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   fmt.Sprintf("%s %s", c.Request().Method, c.Path()),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
