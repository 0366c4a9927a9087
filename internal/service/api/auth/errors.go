package auth

import (
	"errors"
	"fmt"

	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/httputil"
)

var (
	// ErrApplicationMissingInContext Context에 애플리케이션 정보가 없을 때 반환하는 에러입니다.
	ErrApplicationMissingInContext = errors.New("Context에서 애플리케이션 정보를 찾을 수 없습니다")

	// ErrApplicationTypeMismatch Context에 저장된 객체가 *domain.Application 타입이 아닐 때 반환하는 에러입니다.
	ErrApplicationTypeMismatch = errors.New("Context에 저장된 애플리케이션 정보의 타입이 올바르지 않습니다")
)

// NewErrInvalidApplicationID 등록되지 않은 Application ID로 요청했을 때 반환하는 401 에러를 생성합니다.
func NewErrInvalidApplicationID(id string) error {
	return httputil.NewUnauthorizedError(fmt.Sprintf(constants.ErrMsgUnauthorizedApplicationID, id))
}

// NewErrInvalidAppKey App Key가 일치하지 않을 때 반환하는 401 에러를 생성합니다.
func NewErrInvalidAppKey(id string) error {
	return httputil.NewUnauthorizedError(fmt.Sprintf(constants.ErrMsgUnauthorizedAppKey, id))
}
