package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/darkkaiser/notice-dispatcher/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// @title Notice Dispatcher API
// @version 1.0.0
// @description 이메일, SMS, 텔레그램 채널로 알림을 발송하는 REST API 서버입니다.
// @description
// @description ## 인증 방법
// @description 설정 파일(notice-dispatcher.json)의 notify_api.applications에 등록한 애플리케이션 ID와 App Key를
// @description X-Application-Id, X-App-Key 헤더로 전달합니다.
// @description allowed_channels를 지정하면 해당 채널로만 발송할 수 있습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-App-Key
// @description X-Application-Id 헤더와 함께 전달하는 애플리케이션 키

const (
	banner = `
  _   _         _    _              ____   _                     _          _
 | \ | |  ___  | |_ (_)  ___  ___  |  _ \ (_) ___  _ __    __ _ | |_   ___ | |__    ___  _ __
 |  \| | / _ \ | __|| | / __|/ _ \ | | | || |/ __|| '_ \  / _' || __| / __|| '_ \  / _ \| '__|
 | |\  || (_) || |_ | || (__|  __/ | |_| || |\__ \| |_) || (_| || |_ | (__ | | | ||  __/| |
 |_| \_| \___/  \__||_| \___|\___| |____/ |_||___/| .__/  \__,_| \__| \___||_| |_| \___||_|
                                                  |_|                          %s
                                                                   developed by DarkKaiser
--------------------------------------------------------------------------------------------
`
)

const rootLong = `설정 파일에 정의된 채널로 알림을 발송합니다.
인자 없이 실행하면 serve 명령과 같이 REST API 서버와 예약 발송 스케줄러를 구동합니다.`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:          config.AppName,
		Short:        "이메일, SMS, 텔레그램 알림 발송 서버",
		Long:         rootLong,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadDotEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultFilename, "설정 파일 경로")

	rootCmd.AddCommand(newServeCmd(&configFile))
	rootCmd.AddCommand(newSendCmd(&configFile))
	rootCmd.AddCommand(newBalanceCmd(&configFile))
	rootCmd.AddCommand(newWebhookCmd(&configFile))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadDotEnv 현재 디렉토리의 .env 파일을 환경 변수로 읽습니다. 파일이 없으면 무시합니다.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(".env 파일을 읽을 수 없습니다: %w", err)
	}
	return nil
}
