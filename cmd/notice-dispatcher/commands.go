package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/darkkaiser/notice-dispatcher/internal/config"
	"github.com/darkkaiser/notice-dispatcher/internal/pkg/version"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/spf13/cobra"
)

const defaultSendTimeout = 10 * time.Second

const sendExample = `  notice-dispatcher send --channel tg --to @ops_alerts --message "배포 완료" --buttons "확인, 취소"
  notice-dispatcher send --channel email --to team@example.com --message "주간 보고" --attach report.pdf,chart.png`

type sendOptions struct {
	channel     string
	recipient   string
	message     string
	attachments []string
	flash       bool
	buttons     []string
	timeout     time.Duration
}

func newSendCmd(configFile *string) *cobra.Command {
	var opts sendOptions

	cmd := &cobra.Command{
		Use:     "send",
		Short:   "알림 한 건을 발송하고 결과를 JSON으로 출력합니다",
		Example: sendExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNotificationService(*configFile, func(svc *notification.Service) error {
				return runSend(cmd.Context(), svc, opts, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVar(&opts.channel, "channel", "", "발송 채널 (email, sms, telegram)")
	cmd.Flags().StringVar(&opts.recipient, "to", "", "수신자")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "메시지 본문")
	cmd.Flags().StringSliceVar(&opts.attachments, "attach", nil, "첨부 파일 이름, 쉼표로 구분 (email 전용)")
	cmd.Flags().BoolVar(&opts.flash, "flash", false, "플래시 메시지로 발송 (sms 전용)")
	cmd.Flags().StringSliceVar(&opts.buttons, "buttons", nil, "인라인 버튼 라벨, 쉼표로 구분 (telegram 전용)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", defaultSendTimeout, "발송 제한 시간")

	_ = cmd.MarkFlagRequired("channel")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func runSend(ctx context.Context, dispatcher contract.NoticeDispatcher, opts sendOptions, out io.Writer) error {
	ch, err := contract.ParseChannel(opts.channel)
	if err != nil {
		return err
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	receipt, err := dispatcher.Dispatch(ctx, contract.NoticeRequest{
		Channel:     ch,
		Recipient:   opts.recipient,
		Message:     opts.message,
		Attachments: opts.attachments,
		Flash:       opts.flash,
		Buttons:     opts.buttons,
	})
	if err != nil {
		return err
	}

	return writeJSON(out, receipt)
}

func newBalanceCmd(configFile *string) *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "사용자의 SMS 발송 잔액을 조회합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNotificationService(*configFile, func(svc *notification.Service) error {
				return runBalance(svc, userID, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 0, "사용자 ID")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func runBalance(operator contract.ChannelOperator, userID int, out io.Writer) error {
	balance, err := operator.CheckSMSBalance(userID)
	if err != nil {
		return err
	}

	return writeJSON(out, map[string]any{
		"user_id": userID,
		"balance": balance,
	})
}

func newWebhookCmd(configFile *string) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "텔레그램 봇의 웹훅 주소를 갱신합니다 (https만 허용)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNotificationService(*configFile, func(svc *notification.Service) error {
				if err := svc.UpdateTelegramWebhook(url); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "웹훅 주소가 갱신되었습니다")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "https 웹훅 주소")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "버전 정보를 출력합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, version.Get().String())
			return nil
		},
	}
}

// withNotificationService 단발성 명령을 위해 콘솔 로깅과 알림 서비스를 준비한 뒤 fn을 실행합니다.
func withNotificationService(configFile string, fn func(svc *notification.Service) error) error {
	appConfig, err := config.LoadWithFile(configFile)
	if err != nil {
		return err
	}

	appLogCloser, err := applog.Setup(applog.NewConsoleOptions(config.AppName))
	if err != nil {
		return err
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	return runWithNotificationService(appConfig, fn)
}

func runWithNotificationService(appConfig *config.AppConfig, fn func(svc *notification.Service) error) error {
	svc := notification.NewService(appConfig, nil)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}
	defer func() {
		cancel()
		serviceStopWG.Wait()
	}()

	serviceStopWG.Add(1)
	if err := svc.Start(serviceStopCtx, serviceStopWG); err != nil {
		return err
	}

	return fn(svc)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}
