package notification

import (
	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification/notifier"
)

var (
	// ErrServiceNotRunning 서비스가 시작되지 않았거나 종료 절차가 진행 중이어서 요청을 처리할 수 없을 때 반환합니다.
	ErrServiceNotRunning = apperrors.New(apperrors.Unavailable, "Notification 서비스가 실행 중이 아니어서 알림을 보낼 수 없습니다")

	ErrSenderNameRequired = apperrors.New(apperrors.InvalidInput, "발신자 이름을 입력해 주세요")
)

// NewErrUnknownChannel 지원하지 않는 채널로 요청했을 때 반환하는 에러를 생성합니다.
func NewErrUnknownChannel(channel contract.Channel) error {
	return apperrors.Newf(apperrors.NotFound, "지원하지 않는 채널입니다: '%s' (사용 가능: %s)", channel, contract.ChannelNames())
}

// NewErrChannelDisabled 설정에서 비활성화된 채널로 요청했을 때 반환하는 에러를 생성합니다.
func NewErrChannelDisabled(channel contract.Channel) error {
	return apperrors.Newf(apperrors.Unavailable, "'%s' 채널이 비활성화되어 있습니다. 설정 파일을 확인해 주세요", channel)
}

// NewErrSenderInitFailed 발송기 생성 중 에러가 발생했을 때 반환하는 에러를 생성합니다.
func NewErrSenderInitFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "채널 발송기 초기화 중 에러가 발생했습니다")
}

func newErrUnsupported(snd notifier.Sender, feature string) error {
	return apperrors.Newf(apperrors.Internal, "'%s' 채널 발송기가 %s 기능을 지원하지 않습니다", snd.Channel(), feature)
}
