package httputil

import (
	"net/http"

	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/model/domain"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/model/response"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환하고,
// 상태 코드에 따라 Error(5xx) 또는 Warn(4xx) 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else if resp, ok := he.Message.(response.ErrorResponse); ok {
			message = resp.Message
		}
	}

	// 404 에러는 사용자 친화적인 한국어 메시지로 통일
	if code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
		message = constants.ErrMsgNotFound
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if app, ok := c.Get(constants.ContextKeyApplication).(*domain.Application); ok {
		fields["application_id"] = app.ID
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// FromAppError 서비스 계층의 에러를 HTTP 에러로 변환합니다.
//
// 에러 체인에서 가장 바깥쪽 AppError의 타입으로 상태 코드를 정하고, 그 메시지를 응답에 사용합니다.
// Internal, System, Unknown 에러는 내부 정보가 노출되지 않도록 일반 메시지로 응답합니다.
func FromAppError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if !apperrors.As(err, &appErr) {
		return newHTTPError(http.StatusInternalServerError, constants.ErrMsgInternalServer, err)
	}

	switch appErr.Type() {
	case apperrors.InvalidInput:
		return newHTTPError(http.StatusBadRequest, appErr.Message(), err)
	case apperrors.Unauthorized:
		return newHTTPError(http.StatusUnauthorized, appErr.Message(), err)
	case apperrors.Forbidden:
		return newHTTPError(http.StatusForbidden, appErr.Message(), err)
	case apperrors.NotFound:
		return newHTTPError(http.StatusNotFound, appErr.Message(), err)
	case apperrors.Conflict:
		return newHTTPError(http.StatusConflict, appErr.Message(), err)
	case apperrors.Unavailable:
		return newHTTPError(http.StatusServiceUnavailable, appErr.Message(), err)
	default:
		return newHTTPError(http.StatusInternalServerError, constants.ErrMsgInternalServer, err)
	}
}

func newHTTPError(code int, message string, internal error) error {
	return NewError(code, message).SetInternal(internal)
}
