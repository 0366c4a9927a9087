package httputil

import (
	"net/http"

	"github.com/darkkaiser/notice-dispatcher/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// msgSuccess 성공 응답의 기본 메시지
const msgSuccess = "성공"

// NewError code 상태와 ErrorResponse 본문을 갖는 HTTP 에러를 생성합니다.
func NewError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

func NewBadRequestError(message string) error {
	return NewError(http.StatusBadRequest, message)
}

func NewUnauthorizedError(message string) error {
	return NewError(http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) error {
	return NewError(http.StatusForbidden, message)
}

func NewTooManyRequestsError(message string) error {
	return NewError(http.StatusTooManyRequests, message)
}

func NewServiceUnavailableError(message string) error {
	return NewError(http.StatusServiceUnavailable, message)
}

// Success {"result_code": 0, "message": "성공"}으로 응답합니다.
func Success(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse{
		ResultCode: 0,
		Message:    msgSuccess,
	})
}
