package contract

import "context"

// NoticeDispatcher 알림 발송 기능입니다. API, 스케줄러, CLI가 이 인터페이스로 알림 서비스를 사용합니다.
type NoticeDispatcher interface {
	// Dispatch 요청을 검증한 뒤 채널별 발송기로 알림을 보내고 결과를 반환합니다.
	Dispatch(ctx context.Context, req NoticeRequest) (*NoticeReceipt, error)
}

// ChannelOperator 발송 외에 채널별로 제공하는 부가 기능입니다.
type ChannelOperator interface {
	// SetEmailSenderIdentity 이메일 발신자 이름을 바꿉니다.
	SetEmailSenderIdentity(name string) error

	// CheckSMSBalance 사용자의 SMS 잔액을 조회합니다.
	CheckSMSBalance(userID int) (float64, error)

	// UpdateTelegramWebhook 텔레그램 봇의 웹훅 주소를 갱신합니다.
	UpdateTelegramWebhook(url string) error
}

// HealthChecker 서비스가 요청을 처리할 수 있는 상태인지 확인합니다.
type HealthChecker interface {
	Health() error
}
