package middleware

import (
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
)

var (
	// ErrAppKeyRequired X-App-Key 헤더가 없을 때 반환하는 에러입니다.
	ErrAppKeyRequired = httputil.NewUnauthorizedError(constants.ErrMsgAuthAppKeyRequired)

	// ErrApplicationIDRequired X-Application-Id 헤더가 없을 때 반환하는 에러입니다.
	ErrApplicationIDRequired = httputil.NewUnauthorizedError(constants.ErrMsgAuthApplicationIDRequired)

	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

	ErrUnsupportedMediaType = echo.NewHTTPError(http.StatusUnsupportedMediaType, constants.ErrMsgUnsupportedMediaType)
)

// NewErrPanicRecovered 에러가 아닌 값으로 발생한 패닉을 Internal 에러로 감쌉니다.
func NewErrPanicRecovered(r any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
