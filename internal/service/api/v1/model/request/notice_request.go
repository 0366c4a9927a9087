// Package request v1 API의 요청 본문 모델을 정의합니다.
package request

import (
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
)

// NoticeRequest 알림 발송 요청
type NoticeRequest struct {
	// 발송 채널: email, sms, telegram (대소문자, 구분자 무시. 예: "E-Mail", "TG")
	Channel string `json:"channel" validate:"required" korean:"채널" example:"telegram"`
	// 수신자: 이메일 주소, 전화번호, 텔레그램 채팅 ID 또는 @채널명
	Recipient string `json:"recipient" validate:"required,max=256" korean:"수신자" example:"@ops_alerts"`
	// 알림 메시지 본문. 채널 최대 길이(email 5000, sms 160, telegram 4096자)를 넘으면 잘립니다.
	Message string `json:"message" validate:"required" korean:"메시지" example:"배포가 완료되었습니다"`
	// 첨부 파일 이름 목록 (email 전용)
	Attachments []string `json:"attachments,omitempty" validate:"max=20,dive,max=255" korean:"첨부 파일" example:"report.pdf"`
	// 플래시 메시지 여부 (sms 전용)
	Flash bool `json:"flash,omitempty" korean:"플래시 모드" example:"false"`
	// 인라인 키보드 버튼 라벨 목록 (telegram 전용)
	Buttons []string `json:"buttons,omitempty" validate:"max=100,dive,max=64" korean:"버튼" example:"확인"`
}

// ToNoticeRequest 알림 서비스에 전달할 발송 요청으로 변환합니다.
func (r *NoticeRequest) ToNoticeRequest() (contract.NoticeRequest, error) {
	ch, err := contract.ParseChannel(r.Channel)
	if err != nil {
		return contract.NoticeRequest{}, err
	}

	return contract.NoticeRequest{
		Channel:     ch,
		Recipient:   r.Recipient,
		Message:     r.Message,
		Attachments: r.Attachments,
		Flash:       r.Flash,
		Buttons:     r.Buttons,
	}, nil
}
