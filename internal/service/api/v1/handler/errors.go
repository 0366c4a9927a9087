package handler

import (
	"fmt"

	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/httputil"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
)

// NewErrInvalidBody 요청 본문을 파싱할 수 없을 때 반환하는 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrValidationFailed 요청 값 검증에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrInvalidUserID 경로의 user_id가 정수가 아닐 때 반환하는 에러를 생성합니다.
func NewErrInvalidUserID() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestUserID)
}

// NewErrChannelForbidden 애플리케이션에 허용되지 않은 채널을 요청했을 때 반환하는 에러를 생성합니다.
func NewErrChannelForbidden(channel contract.Channel, applicationID string) error {
	return httputil.NewForbiddenError(fmt.Sprintf(constants.ErrMsgForbiddenChannel, channel, applicationID))
}
