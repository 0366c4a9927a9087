// Package middleware 알림 API 서버에서 사용하는 Echo 미들웨어를 제공합니다.
//
// 제공되는 미들웨어:
//
//   - PanicRecovery: 패닉 복구 및 스택 기록
//   - HTTPLogger: 요청 로깅 (민감한 쿼리 파라미터 마스킹)
//   - RateLimiting: IP 기반 요청 속도 제한
//   - ValidateContentType: 요청 본문의 Content-Type 검사
//   - RequireAuthentication: X-Application-Id, X-App-Key 헤더 인증
//
// Logger는 Echo 내부 로그를 애플리케이션 로거로 연결하는 어댑터입니다.
package middleware
