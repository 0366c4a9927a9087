// Package notification 설정에 따라 채널별 발송기를 만들고, 발송 요청을 검증해 해당 발송기로 전달합니다.
package notification

import (
	"context"
	"strings"
	"sync"

	"github.com/darkkaiser/notice-dispatcher/internal/config"
	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification/constants"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification/notifier"
	"github.com/darkkaiser/notice-dispatcher/pkg/concurrency"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/darkkaiser/notice-dispatcher/pkg/strutil"
	"github.com/darkkaiser/notice-dispatcher/pkg/validation"
	"github.com/google/uuid"
)

var (
	_ contract.NoticeDispatcher = (*Service)(nil)
	_ contract.ChannelOperator  = (*Service)(nil)
	_ contract.HealthChecker    = (*Service)(nil)
)

// 채널별 부가 기능. 발송기가 지원하지 않으면 Internal 에러가 됩니다.
type (
	attachmentAdder interface{ AddAttachment(fileName string) }
	flashEnabler    interface{ EnableFlashMode() }
	keyboardAdder   interface{ AddInlineKeyboard(buttons []string) }

	senderIdentitySetter interface{ SetSenderIdentity(name string) }
	balanceChecker       interface{ CheckBalance(userID int) float64 }
	webhookUpdater       interface{ UpdateWebhook(url string) error }
)

type Service struct {
	appConfig *config.AppConfig

	factory     notifier.Factory
	sinkFor     notifier.SinkProvider
	senderOpts  []notifier.Option
	senders     map[contract.Channel]notifier.Sender
	channelLock *concurrency.KeyedMutex

	running   bool
	runningMu sync.Mutex
}

// NewService 새 Notification 서비스를 생성합니다.
// sinkFor가 nil이면 채널별 component 필드가 붙은 로거로 출력합니다.
func NewService(appConfig *config.AppConfig, sinkFor notifier.SinkProvider, opts ...notifier.Option) *Service {
	if sinkFor == nil {
		sinkFor = defaultSinkProvider
	}

	return &Service{
		appConfig: appConfig,

		factory:     notifier.NewDefaultFactory(),
		sinkFor:     sinkFor,
		senderOpts:  opts,
		channelLock: concurrency.NewKeyedMutex(),

		running:   false,
		runningMu: sync.Mutex{},
	}
}

func defaultSinkProvider(channel contract.Channel) notifier.Sink {
	component := constants.ComponentSender
	switch channel {
	case contract.ChannelEmail:
		component = constants.ComponentSenderEmail
	case contract.ChannelSMS:
		component = constants.ComponentSenderSMS
	case contract.ChannelTelegram:
		component = constants.ComponentSenderTelegram
	}

	return applog.WithComponentAndFields(component, applog.Fields{"channel": channel.String()})
}

func (s *Service) SetFactory(factory notifier.Factory) {
	s.factory = factory
}

// Start 설정에서 활성화된 채널의 발송기를 생성하고 서비스를 시작합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	senders, err := s.factory.CreateSenders(&s.appConfig.Channels, s.sinkFor, s.senderOpts...)
	if err != nil {
		defer serviceStopWG.Done()
		return NewErrSenderInitFailed(err)
	}

	s.senders = make(map[contract.Channel]notifier.Sender, len(senders))
	for _, snd := range senders {
		s.senders[snd.Channel()] = snd

		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"channel": snd.Channel().String(),
		}).Debug(constants.LogMsgSenderRegistered)
	}

	go s.waitForShutdown(serviceStopCtx, serviceStopWG)

	s.running = true

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"channels": len(s.senders),
	}).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) waitForShutdown(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	<-serviceStopCtx.Done()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	s.runningMu.Lock()
	s.running = false
	s.senders = nil
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

func (s *Service) Health() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return ErrServiceNotRunning
	}
	return nil
}

// sender 채널의 발송기를 찾습니다. 서비스가 중지되었거나 채널이 비활성화된 경우 에러를 반환합니다.
func (s *Service) sender(channel contract.Channel) (notifier.Sender, error) {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return nil, ErrServiceNotRunning
	}

	if snd, ok := s.senders[channel]; ok {
		return snd, nil
	}

	for _, c := range contract.Channels() {
		if c == channel {
			return nil, NewErrChannelDisabled(channel)
		}
	}
	return nil, NewErrUnknownChannel(channel)
}

func (s *Service) maxButtons() int {
	if n := s.appConfig.Channels.Telegram.MaxButtons; n > 0 {
		return n
	}
	return config.DefaultMaxButtons
}

// Dispatch 요청을 검증하고 채널 발송기로 알림을 보냅니다.
//
// 같은 채널의 요청은 옵션 적용부터 발송까지 한 번에 하나씩 처리되므로,
// 한 요청의 첨부 파일이나 버튼이 다른 요청의 발송에 섞이지 않습니다.
func (s *Service) Dispatch(ctx context.Context, req contract.NoticeRequest) (*contract.NoticeReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "요청이 취소되어 알림을 보내지 않았습니다")
	}

	if err := s.Health(); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		s.logRejected(req, err)
		return nil, err
	}

	snd, err := s.sender(req.Channel)
	if err != nil {
		s.logRejected(req, err)
		return nil, err
	}

	req.Recipient = strings.TrimSpace(req.Recipient)
	req.Attachments = strutil.CompactTrimmed(req.Attachments)
	req.Buttons = strutil.CompactTrimmed(req.Buttons)
	if limit := s.maxButtons(); len(req.Buttons) > limit {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"requested": len(req.Buttons),
			"limit":     limit,
		}).Warn(constants.LogMsgButtonsCapped)

		req.Buttons = req.Buttons[:limit]
	}

	s.channelLock.Lock(req.Channel.String())
	defer s.channelLock.Unlock(req.Channel.String())

	if err := applyOptions(snd, req); err != nil {
		return nil, err
	}

	d := snd.SendNotice(req.Recipient, req.Message)

	receipt := &contract.NoticeReceipt{
		NoticeID:  uuid.NewString(),
		Channel:   d.Channel,
		Recipient: d.Recipient,
		Message:   d.Message,
		Output:    d.Output,
		Truncated: d.Truncated,
		SentAt:    d.SentAt,
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"notice_id": receipt.NoticeID,
		"channel":   receipt.Channel.String(),
		"truncated": receipt.Truncated,
	}).Info(constants.LogMsgNoticeDispatched)

	return receipt, nil
}

// applyOptions 요청의 채널별 옵션을 발송기에 쌓아 둡니다. 옵션은 다음 SendNotice 한 번에 적용됩니다.
func applyOptions(snd notifier.Sender, req contract.NoticeRequest) error {
	if len(req.Attachments) > 0 {
		v, ok := snd.(attachmentAdder)
		if !ok {
			return newErrUnsupported(snd, "첨부 파일")
		}
		for _, f := range req.Attachments {
			v.AddAttachment(f)
		}
	}

	if req.Flash {
		v, ok := snd.(flashEnabler)
		if !ok {
			return newErrUnsupported(snd, "플래시 모드")
		}
		v.EnableFlashMode()
	}

	if len(req.Buttons) > 0 {
		v, ok := snd.(keyboardAdder)
		if !ok {
			return newErrUnsupported(snd, "인라인 버튼")
		}
		v.AddInlineKeyboard(req.Buttons)
	}

	return nil
}

func (s *Service) logRejected(req contract.NoticeRequest, err error) {
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"channel": req.Channel.String(),
		"error":   err,
	}).Warn(constants.LogMsgNoticeRejected)
}

// =============================================================================
// Channel operations
// =============================================================================

func (s *Service) SetEmailSenderIdentity(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrSenderNameRequired
	}

	snd, err := s.sender(contract.ChannelEmail)
	if err != nil {
		return err
	}

	s.channelLock.Lock(contract.ChannelEmail.String())
	defer s.channelLock.Unlock(contract.ChannelEmail.String())

	v, ok := snd.(senderIdentitySetter)
	if !ok {
		return newErrUnsupported(snd, "발신자 이름 변경")
	}
	v.SetSenderIdentity(name)

	return nil
}

func (s *Service) CheckSMSBalance(userID int) (float64, error) {
	snd, err := s.sender(contract.ChannelSMS)
	if err != nil {
		return 0, err
	}

	v, ok := snd.(balanceChecker)
	if !ok {
		return 0, newErrUnsupported(snd, "잔액 조회")
	}
	return v.CheckBalance(userID), nil
}

func (s *Service) UpdateTelegramWebhook(url string) error {
	url = strings.TrimSpace(url)
	if err := validation.ValidateWebhookURL(url); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "웹훅 주소가 올바르지 않습니다")
	}

	snd, err := s.sender(contract.ChannelTelegram)
	if err != nil {
		return err
	}

	v, ok := snd.(webhookUpdater)
	if !ok {
		return newErrUnsupported(snd, "웹훅 갱신")
	}
	return v.UpdateWebhook(url)
}
