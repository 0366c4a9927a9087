// Package log logrus 기반의 전역 로깅 설정과 컴포넌트 단위 로그 헬퍼를 제공합니다.
//
// 모든 로그 라인에는 발생 위치를 나타내는 "component" 필드가 포함됩니다.
//
//	applog.WithComponent("notification.service").Info("서비스 시작")
//	applog.WithComponentAndFields("api.handler", applog.Fields{"channel": "sms"}).Warn("...")
package log

import (
	"github.com/sirupsen/logrus"
)

// ComponentKey 로그 필드에서 컴포넌트 이름을 담는 키입니다.
const ComponentKey = "component"

// WithComponent component 필드가 설정된 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(ComponentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드가 설정된 Entry를 반환합니다.
// fields에 component 키가 있더라도 인자로 받은 component가 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[ComponentKey] = component

	return logrus.WithFields(merged)
}

// MaskSensitiveData 토큰이나 키를 로그에 남길 때 앞뒤 일부만 남기고 가립니다.
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}

// StandardLogger 전역 logrus 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}
