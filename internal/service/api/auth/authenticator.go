// Package auth 알림 API를 호출하는 클라이언트 애플리케이션의 인증을 담당합니다.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"sync"

	"github.com/darkkaiser/notice-dispatcher/internal/config"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/model/domain"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
)

type credential struct {
	app        *domain.Application
	appKeyHash [sha256.Size]byte
}

// Authenticator 설정 파일에 등록된 애플리케이션을 Application ID와 App Key로 인증합니다.
//
// App Key는 SHA-256 해시로만 보관하며, 비교는 상수 시간에 수행합니다.
// 여러 고루틴에서 동시에 Authenticate를 호출해도 안전합니다.
type Authenticator struct {
	mu          sync.RWMutex
	credentials map[string]credential
}

// NewAuthenticator 설정에서 애플리케이션을 로드하여 Authenticator를 생성합니다.
func NewAuthenticator(appConfig *config.AppConfig) *Authenticator {
	credentials := make(map[string]credential, len(appConfig.NotifyAPI.Applications))
	for _, ac := range appConfig.NotifyAPI.Applications {
		allowed := make([]contract.Channel, 0, len(ac.AllowedChannels))
		for _, name := range ac.AllowedChannels {
			// 설정 검증을 통과한 값이므로 실패하지 않습니다.
			if ch, err := contract.ParseChannel(name); err == nil {
				allowed = append(allowed, ch)
			}
		}

		credentials[ac.ID] = credential{
			app: &domain.Application{
				ID:              ac.ID,
				Title:           ac.Title,
				AllowedChannels: allowed,
			},
			appKeyHash: sha256.Sum256([]byte(ac.AppKey)),
		}
	}

	return &Authenticator{
		credentials: credentials,
	}
}

// Authenticate 애플리케이션을 찾고 App Key를 검증합니다.
// 실패하면 401 Unauthorized HTTP 에러를 반환합니다.
func (a *Authenticator) Authenticate(applicationID, appKey string) (*domain.Application, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	cred, ok := a.credentials[applicationID]
	if !ok {
		return nil, NewErrInvalidApplicationID(applicationID)
	}

	hash := sha256.Sum256([]byte(appKey))
	if subtle.ConstantTimeCompare(hash[:], cred.appKeyHash[:]) != 1 {
		applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
			"application_id":   applicationID,
			"received_app_key": applog.MaskSensitiveData(appKey),
		}).Warn(constants.LogMsgAppKeyMismatch)

		return nil, NewErrInvalidAppKey(applicationID)
	}

	return cred.app, nil
}
