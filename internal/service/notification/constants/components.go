package constants

// 로그 발생 위치(component 필드) 식별자입니다.
const (
	ComponentService = "notification.service"

	ComponentSender         = "notification.sender"
	ComponentSenderEmail    = "notification.sender.email"
	ComponentSenderSMS      = "notification.sender.sms"
	ComponentSenderTelegram = "notification.sender.telegram"
)
