package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/notice-dispatcher/internal/config"
	"github.com/darkkaiser/notice-dispatcher/internal/pkg/version"
	"github.com/darkkaiser/notice-dispatcher/internal/service"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification"
	"github.com/darkkaiser/notice-dispatcher/internal/service/scheduler"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/spf13/cobra"
)

const componentMain = "main"

func newServeCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "REST API 서버와 예약 발송 스케줄러를 구동합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configFile)
		},
	}
}

func runServe(configFile string) error {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		return err
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		return err
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(componentMain, applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(componentMain).Warn(warning)
	}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	if err := startServices(serviceStopCtx, cancel, serviceStopWG, newServices(appConfig, buildInfo)); err != nil {
		applog.WithComponentAndFields(componentMain, applog.Fields{
			"error": err,
		}).Error("서비스 초기화 실패로 프로그램을 종료합니다")

		return err
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponent(componentMain).Info("서버 가동 완료")

	sig := <-termC

	applog.WithComponentAndFields(componentMain, applog.Fields{
		"signal": sig.String(),
	}).Info("종료 신호 수신, 서비스를 중지합니다")

	cancel()
	serviceStopWG.Wait()

	applog.WithComponent(componentMain).Info("서버 종료 완료")

	return nil
}

// newServices 시작 순서대로 서비스 목록을 만듭니다.
// 스케줄러와 API 서버가 발송을 위임하므로 알림 서비스가 가장 먼저 시작되어야 합니다.
func newServices(appConfig *config.AppConfig, buildInfo version.Info) []service.Service {
	notificationService := notification.NewService(appConfig, nil)

	services := []service.Service{
		notificationService,
		scheduler.NewService(appConfig.Schedules, notificationService),
	}

	if appConfig.NotifyAPI.Enabled {
		services = append(services, api.NewService(appConfig, notificationService, buildInfo))
	}

	return services
}

// startServices 서비스를 순서대로 시작합니다.
// 하나라도 실패하면 이미 시작된 서비스를 모두 중지시킨 뒤 에러를 반환합니다.
func startServices(serviceStopCtx context.Context, cancel context.CancelFunc, serviceStopWG *sync.WaitGroup, services []service.Service) error {
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			cancel()
			serviceStopWG.Wait()

			return err
		}
	}

	return nil
}
