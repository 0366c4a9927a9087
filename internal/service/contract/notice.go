package contract

import (
	"strings"
	"time"

	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
)

var (
	ErrRecipientRequired = apperrors.New(apperrors.InvalidInput, "수신자를 입력해 주세요")
	ErrMessageRequired   = apperrors.New(apperrors.InvalidInput, "메시지 내용을 입력해 주세요")
)

// NoticeRequest 알림 발송 요청입니다.
// Attachments는 email, Flash는 sms, Buttons는 telegram 채널에서만 사용할 수 있습니다.
type NoticeRequest struct {
	Channel     Channel
	Recipient   string
	Message     string
	Attachments []string
	Flash       bool
	Buttons     []string
}

// Validate 수신자와 메시지가 공백이 아닌지, 옵션이 채널에 맞는지 확인합니다.
func (r *NoticeRequest) Validate() error {
	if strings.TrimSpace(r.Recipient) == "" {
		return ErrRecipientRequired
	}
	if strings.TrimSpace(r.Message) == "" {
		return ErrMessageRequired
	}
	return r.CheckOptions()
}

// CheckOptions 다른 채널 전용 옵션이 지정되지 않았는지 확인합니다.
func (r *NoticeRequest) CheckOptions() error {
	if len(r.Attachments) > 0 && r.Channel != ChannelEmail {
		return apperrors.Newf(apperrors.InvalidInput, "첨부 파일은 email 채널에서만 사용할 수 있습니다 (channel=%s)", r.Channel)
	}
	if r.Flash && r.Channel != ChannelSMS {
		return apperrors.Newf(apperrors.InvalidInput, "플래시 모드는 sms 채널에서만 사용할 수 있습니다 (channel=%s)", r.Channel)
	}
	if len(r.Buttons) > 0 && r.Channel != ChannelTelegram {
		return apperrors.Newf(apperrors.InvalidInput, "인라인 버튼은 telegram 채널에서만 사용할 수 있습니다 (channel=%s)", r.Channel)
	}
	return nil
}

// NoticeReceipt 발송이 끝난 알림의 결과입니다.
type NoticeReceipt struct {
	NoticeID  string    `json:"notice_id"`
	Channel   Channel   `json:"channel"`
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`   // 타임스탬프가 붙고 필요하면 잘린 본문
	Output    string    `json:"output"`    // 채널 형식으로 변환된 최종 출력
	Truncated bool      `json:"truncated"` // 채널 최대 길이를 넘어 잘렸는지 여부
	SentAt    time.Time `json:"sent_at"`
}
