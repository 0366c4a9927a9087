package constants

// 서비스 구성 단계에서 발생하는 패닉 메시지입니다.
const (
	PanicMsgAppConfigRequired        = "AppConfig는 필수입니다"
	PanicMsgNoticeDispatcherRequired = "NoticeDispatcher는 필수입니다"
	PanicMsgChannelOperatorRequired  = "ChannelOperator는 필수입니다"
	PanicMsgHealthCheckerRequired    = "HealthChecker는 필수입니다"
	PanicMsgAuthenticatorRequired    = "Authenticator는 필수입니다"

	PanicMsgAuthContextApplicationNotFound = "Auth: Context에서 애플리케이션 정보를 가져올 수 없습니다. 인증 미들웨어가 적용되었는지 확인해주세요. (원인: %v)"

	PanicMsgRateLimitRequestsPerSecondInvalid = "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: %d)"
	PanicMsgRateLimitBurstInvalid             = "RateLimiting: burst는 양수여야 합니다 (현재값: %d)"
)
