package constants

// 서비스 로그 메시지
const (
	LogMsgServiceStarting       = "Notification 서비스 시작중..."
	LogMsgServiceStarted        = "Notification 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "Notification 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "Notification 서비스 중지중..."
	LogMsgServiceStopped        = "Notification 서비스 중지됨"
	LogMsgSenderRegistered      = "채널 발송기가 Notification 서비스에 등록됨"
	LogMsgNoticeDispatched      = "알림 발송 완료"
	LogMsgNoticeRejected        = "알림 발송 요청이 거부됨"
	LogMsgButtonsCapped         = "인라인 버튼 수가 상한을 넘어 일부가 제외됨"
)

// 발송기 출력 라인 (채널 시뮬레이션 결과)
const (
	OutMsgTruncated = "경고: 메시지가 최대 길이(%d자)를 초과하여 잘렸습니다"

	OutMsgEmailAttachmentAdded   = "파일 '%s'이(가) 메일에 첨부되었습니다"
	OutMsgEmailAttachmentList    = "첨부 파일: %s"
	OutMsgEmailSend              = "Email 발송 (%s → %s): %s"
	OutMsgEmailSenderIdentitySet = "Email 발신자 이름이 변경되었습니다: %s"

	OutMsgSMSFlashEnabled = "Flash-SMS 모드가 활성화되었습니다"
	OutMsgSMSSend         = "SMS 발송 (%s): %s"
	OutMsgSMSBalance      = "SMS API 응답: 사용자 %d의 잔액 %.2f"

	OutMsgTelegramKeyboardAdded = "인라인 버튼이 추가되었습니다: [%s]"
	OutMsgTelegramButtons       = "[버튼]: %s"
	OutMsgTelegramSend          = "Telegram 발송 (%s): %s"
	OutMsgTelegramWebhook       = "봇 웹훅이 갱신되었습니다: %s"
)
