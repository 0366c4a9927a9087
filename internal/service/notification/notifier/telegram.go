package notifier

import (
	"slices"

	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification/constants"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramSender struct {
	*base

	botToken       string
	webhook        *tgbotapi.WebhookConfig
	pendingButtons []string
}

var _ Sender = (*TelegramSender)(nil)

func NewTelegramSender(out Sink, botToken string, opts ...Option) *TelegramSender {
	return &TelegramSender{
		base:     newBase(contract.ChannelTelegram, out, opts...),
		botToken: botToken,
	}
}

// AddInlineKeyboard 다음 발송 한 번에 붙일 버튼 목록을 지정합니다.
// 이전에 지정한 목록은 버려지며, 호출자의 슬라이스는 복사해서 보관합니다.
func (s *TelegramSender) AddInlineKeyboard(buttons []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingButtons = slices.Clone(buttons)
}

// UpdateWebhook 봇의 웹훅 주소를 갱신합니다.
func (s *TelegramSender) UpdateWebhook(url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.InvalidInput, "웹훅 주소를 해석할 수 없습니다 (url=%q)", url)
	}

	s.mu.Lock()
	s.webhook = &wh
	s.mu.Unlock()

	s.out.Infof(constants.OutMsgTelegramWebhook, url)

	return nil
}

// WebhookURL 마지막으로 등록된 웹훅 주소입니다. 등록된 적이 없으면 빈 문자열입니다.
func (s *TelegramSender) WebhookURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.webhook == nil || s.webhook.URL == nil {
		return ""
	}
	return s.webhook.URL.String()
}

func (s *TelegramSender) SendNotice(recipient, message string) Delivery {
	return sendNotice(s.base, recipient, message,
		func(r string) *TelegramNotification {
			return NewTelegramNotification(s.out, r)
		},
		func(n *TelegramNotification) {
			if len(s.pendingButtons) > 0 {
				n.AddInlineKeyboard(s.pendingButtons)
			}
			s.pendingButtons = nil
		},
	)
}
