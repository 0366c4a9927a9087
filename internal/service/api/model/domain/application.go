// Package domain API 서비스가 런타임에 사용하는 도메인 모델을 정의합니다.
package domain

import (
	"slices"

	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
)

// Application 알림 API를 사용하는 클라이언트 애플리케이션입니다.
//
// config.ApplicationConfig에서 AppKey를 제거한 런타임 표현이며,
// AppKey는 Authenticator가 SHA-256 해시로만 보관합니다.
type Application struct {
	ID    string
	Title string

	// AllowedChannels 비어 있으면 모든 채널을 허용합니다.
	AllowedChannels []contract.Channel
}

// Allows 애플리케이션이 channel로 알림을 보낼 수 있는지 확인합니다.
func (a *Application) Allows(channel contract.Channel) bool {
	if len(a.AllowedChannels) == 0 {
		return true
	}
	return slices.Contains(a.AllowedChannels, channel)
}
