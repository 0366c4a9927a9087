package notifier

import (
	"github.com/darkkaiser/notice-dispatcher/internal/config"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
)

// SinkProvider 채널별 출력 대상을 제공합니다.
type SinkProvider func(channel contract.Channel) Sink

// ConfigProcessor 채널 설정을 바탕으로 Sender 목록을 생성하는 함수 타입입니다.
// 담당 채널이 비활성화되어 있으면 빈 목록을 반환합니다.
type ConfigProcessor func(cfg *config.ChannelsConfig, sinkFor SinkProvider, opts ...Option) ([]Sender, error)

// Factory Sender 생성을 담당하는 팩토리 인터페이스입니다.
type Factory interface {
	RegisterProcessor(processor ConfigProcessor)

	CreateSenders(cfg *config.ChannelsConfig, sinkFor SinkProvider, opts ...Option) ([]Sender, error)
}

type defaultFactory struct {
	processors []ConfigProcessor
}

// NewFactory Processor가 하나도 등록되지 않은 Factory를 생성합니다.
func NewFactory() Factory {
	return &defaultFactory{
		processors: make([]ConfigProcessor, 0),
	}
}

// NewDefaultFactory email, sms, telegram Processor가 등록된 Factory를 생성합니다.
func NewDefaultFactory() Factory {
	f := NewFactory()
	f.RegisterProcessor(NewEmailConfigProcessor())
	f.RegisterProcessor(NewSMSConfigProcessor())
	f.RegisterProcessor(NewTelegramConfigProcessor())

	return f
}

func (f *defaultFactory) RegisterProcessor(processor ConfigProcessor) {
	if processor != nil {
		f.processors = append(f.processors, processor)
	}
}

// CreateSenders 등록된 모든 Processor를 실행하여 Sender 목록을 생성합니다.
func (f *defaultFactory) CreateSenders(cfg *config.ChannelsConfig, sinkFor SinkProvider, opts ...Option) ([]Sender, error) {
	var all []Sender

	for _, processor := range f.processors {
		senders, err := processor(cfg, sinkFor, opts...)
		if err != nil {
			return nil, err
		}
		all = append(all, senders...)
	}

	return all, nil
}

func NewEmailConfigProcessor() ConfigProcessor {
	return func(cfg *config.ChannelsConfig, sinkFor SinkProvider, opts ...Option) ([]Sender, error) {
		if !cfg.Email.Enabled {
			return nil, nil
		}
		return []Sender{NewEmailSender(sinkFor(contract.ChannelEmail), cfg.Email.SenderName, opts...)}, nil
	}
}

func NewSMSConfigProcessor() ConfigProcessor {
	return func(cfg *config.ChannelsConfig, sinkFor SinkProvider, opts ...Option) ([]Sender, error) {
		if !cfg.SMS.Enabled {
			return nil, nil
		}
		return []Sender{NewSMSSender(sinkFor(contract.ChannelSMS), cfg.SMS.APIKey, opts...)}, nil
	}
}

func NewTelegramConfigProcessor() ConfigProcessor {
	return func(cfg *config.ChannelsConfig, sinkFor SinkProvider, opts ...Option) ([]Sender, error) {
		if !cfg.Telegram.Enabled {
			return nil, nil
		}
		return []Sender{NewTelegramSender(sinkFor(contract.ChannelTelegram), cfg.Telegram.BotToken, opts...)}, nil
	}
}
