// Package response v1 API의 응답 본문 모델을 정의합니다.
package response

import (
	"time"

	apiresponse "github.com/darkkaiser/notice-dispatcher/internal/service/api/model/response"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
)

// NoticeResponse 알림 발송 결과
type NoticeResponse struct {
	// 처리 결과 코드 (0: 성공)
	ResultCode int `json:"result_code" example:"0"`
	// 발송된 알림의 식별자 (UUID)
	NoticeID string `json:"notice_id" example:"0b7c2f7e-4f0e-4f62-9a8e-0c3f0f1f6c1d"`
	// 발송 채널
	Channel string `json:"channel" example:"telegram"`
	// 수신자 (앞뒤 공백 제거)
	Recipient string `json:"recipient" example:"@ops_alerts"`
	// 타임스탬프가 붙고 필요하면 잘린 본문
	Message string `json:"message" example:"[18:30:00] 배포가 완료되었습니다"`
	// 채널 형식으로 변환된 최종 출력
	Output string `json:"output" example:"*[18:30:00] 배포가 완료되었습니다*"`
	// 채널 최대 길이를 넘어 잘렸는지 여부
	Truncated bool `json:"truncated" example:"false"`
	// 발송 시각
	SentAt time.Time `json:"sent_at" example:"2025-12-01T18:30:00Z"`
}

// NewNoticeResponse 발송 결과로 응답 본문을 만듭니다.
func NewNoticeResponse(r *contract.NoticeReceipt) NoticeResponse {
	return NoticeResponse{
		ResultCode: 0,
		NoticeID:   r.NoticeID,
		Channel:    r.Channel.String(),
		Recipient:  r.Recipient,
		Message:    r.Message,
		Output:     r.Output,
		Truncated:  r.Truncated,
		SentAt:     r.SentAt,
	}
}

// BalanceResponse SMS 잔액 조회 결과
type BalanceResponse struct {
	ResultCode int     `json:"result_code" example:"0"`
	UserID     int     `json:"user_id" example:"12345"`
	Balance    float64 `json:"balance" example:"129622.5"`
}

// 공통 응답 모델입니다.
type (
	ErrorResponse   = apiresponse.ErrorResponse
	SuccessResponse = apiresponse.SuccessResponse
)
