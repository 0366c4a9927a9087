package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	// DependencyNotificationService 외부 의존성 ID: 알림 서비스
	DependencyNotificationService = "notification_service"

	MsgDepStatusHealthy = "정상 작동 중"
)
