package errors

// ErrorType 에러를 성격별로 분류합니다. API 계층은 이 값으로 HTTP 상태 코드를 결정합니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그)
	Internal

	// System 파일, 네트워크 등 실행 환경 오류
	System

	// Unauthorized 인증 실패
	Unauthorized

	// Forbidden 인증은 되었지만 허용되지 않은 요청
	Forbidden

	// InvalidInput 입력값 검증 실패
	InvalidInput

	// Conflict 현재 상태와 충돌하는 요청
	Conflict

	// NotFound 대상이 존재하지 않음
	NotFound

	// Unavailable 일시적으로 처리할 수 없음 (서비스 미실행, 채널 비활성 등)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:      "Unknown",
	Internal:     "Internal",
	System:       "System",
	Unauthorized: "Unauthorized",
	Forbidden:    "Forbidden",
	InvalidInput: "InvalidInput",
	Conflict:     "Conflict",
	NotFound:     "NotFound",
	Unavailable:  "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(?)"
	}
	return errorTypeNames[t]
}
