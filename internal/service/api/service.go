// Package api 알림 발송 REST API 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/notice-dispatcher/docs"
	"github.com/darkkaiser/notice-dispatcher/internal/config"
	"github.com/darkkaiser/notice-dispatcher/internal/pkg/version"
	apiauth "github.com/darkkaiser/notice-dispatcher/internal/service/api/auth"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/notice-dispatcher/internal/service/api/v1"
	v1handler "github.com/darkkaiser/notice-dispatcher/internal/service/api/v1/handler"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/labstack/echo/v4"
)

// NotificationService API 서버가 사용하는 알림 서비스의 기능입니다.
type NotificationService interface {
	contract.NoticeDispatcher
	contract.ChannelOperator
	contract.HealthChecker
}

// Service 알림 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start()로 시작하면 별도의 고루틴에서 HTTP(S) 서버를 실행하고,
// serviceStopCtx가 취소되면 Graceful Shutdown을 수행합니다.
type Service struct {
	appConfig *config.AppConfig

	notificationService NotificationService

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, notificationService NotificationService, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	return &Service{
		appConfig: appConfig,

		notificationService: notificationService,

		buildInfo: buildInfo,

		running:   false,
		runningMu: sync.Mutex{},
	}
}

// Start API 서비스를 시작합니다. 실제 서버는 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.notificationService == nil {
		defer serviceStopWG.Done()
		return ErrNotificationServiceNotInitialized
	}

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Authenticator, 핸들러, 미들웨어, 라우트가 구성된 Echo 인스턴스를 만듭니다.
func (s *Service) setupServer() *echo.Echo {
	authenticator := apiauth.NewAuthenticator(s.appConfig)

	systemHandler := system.NewHandler(s.notificationService, s.appConfig.Channels.EnabledChannels(), s.buildInfo)
	v1Handler := v1handler.NewHandler(s.notificationService, s.notificationService)

	apiConfig := s.appConfig.NotifyAPI
	e := NewHTTPServer(HTTPServerConfig{
		Debug:             s.appConfig.Debug,
		EnableHSTS:        apiConfig.WS.TLSServer,
		AllowOrigins:      apiConfig.CORS.AllowOrigins,
		RequestsPerSecond: apiConfig.RateLimit.RequestsPerSecond,
		Burst:             apiConfig.RateLimit.Burst,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler, authenticator)

	return e
}

func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	ws := s.appConfig.NotifyAPI.WS
	address := fmt.Sprintf(":%d", ws.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": ws.ListenPort,
		"tls":  ws.TLSServer,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if ws.TLSServer {
		err = e.StartTLS(address, ws.TLSCertFile, ws.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError http.ErrServerClosed는 정상 종료로, 그 외 에러는 치명적 오류로 기록합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.NotifyAPI.WS.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버의 예기치 않은 종료를 기다린 뒤 서비스를 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료됨
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
