// Package system 헬스체크, 버전 정보 등 인증이 필요 없는 시스템 엔드포인트를 처리합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/notice-dispatcher/internal/pkg/version"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/model/system"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	healthChecker contract.HealthChecker
	channels      []contract.Channel

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다. channels는 설정에서 활성화된 채널 목록입니다.
func NewHandler(healthChecker contract.HealthChecker, channels []contract.Channel, buildInfo version.Info) *Handler {
	if healthChecker == nil {
		panic(constants.PanicMsgHealthCheckerRequired)
	}

	return &Handler{
		healthChecker: healthChecker,
		channels:      channels,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 알림 서비스의 상태, 활성화된 채널 목록을 반환합니다.
// @Description 인증 없이 호출 가능하며, 모니터링 시스템에서 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	dep := system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: constants.MsgDepStatusHealthy,
	}
	if err := h.healthChecker.Health(); err != nil {
		dep = system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: err.Error(),
		}
	}

	channels := make([]string, 0, len(h.channels))
	for _, ch := range h.channels {
		channels = append(channels, ch.String())
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:   dep.Status,
		Uptime:   int64(time.Since(h.serverStartTime).Seconds()),
		Channels: channels,
		Dependencies: map[string]system.DependencyStatus{
			constants.DependencyNotificationService: dep,
		},
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
	})
}
