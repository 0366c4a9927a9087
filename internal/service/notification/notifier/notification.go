package notifier

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification/constants"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// 채널별 메시지 최대 길이(문자 수)
const (
	EmailMaxLength    = 5000
	SMSMaxLength      = 160
	TelegramMaxLength = 4096
)

// Notification 한 번의 발송을 위해 만들어지는 일회용 알림입니다.
type Notification interface {
	Channel() contract.Channel
	Recipient() string
	MaxLength() int

	// Send 메시지를 채널 형식으로 변환해 출력하고, 변환된 문자열을 반환합니다.
	Send(message string) string
}

var (
	_ Notification = (*EmailNotification)(nil)
	_ Notification = (*SMSNotification)(nil)
	_ Notification = (*TelegramNotification)(nil)
)

// =============================================================================
// Email
// =============================================================================

const emailHTMLTemplate = "<html><body><h1>Новое сообщение</h1><p>%s</p></body></html>"

// FormatEmailHTML 메시지를 이메일 본문 HTML 템플릿으로 감쌉니다.
func FormatEmailHTML(message string) string {
	return fmt.Sprintf(emailHTMLTemplate, message)
}

type EmailNotification struct {
	out         Sink
	from        string
	recipient   string
	attachments []string
}

func NewEmailNotification(out Sink, from, recipient string) *EmailNotification {
	return &EmailNotification{out: out, from: from, recipient: recipient}
}

func (n *EmailNotification) Channel() contract.Channel { return contract.ChannelEmail }
func (n *EmailNotification) Recipient() string         { return n.recipient }
func (n *EmailNotification) MaxLength() int            { return EmailMaxLength }

// AddAttachment 첨부 파일을 추가합니다. 빈 이름이나 중복도 그대로 받아들입니다.
func (n *EmailNotification) AddAttachment(fileName string) {
	n.attachments = append(n.attachments, fileName)
	n.out.Infof(constants.OutMsgEmailAttachmentAdded, fileName)
}

func (n *EmailNotification) Attachments() []string {
	return slices.Clone(n.attachments)
}

func (n *EmailNotification) Send(message string) string {
	html := FormatEmailHTML(message)
	if len(n.attachments) > 0 {
		n.out.Infof(constants.OutMsgEmailAttachmentList, strings.Join(n.attachments, ", "))
	}
	n.out.Infof(constants.OutMsgEmailSend, n.from, n.recipient, html)

	return html
}

// =============================================================================
// SMS
// =============================================================================

const smsFlashPrefix = "[FLASH] "

type SMSNotification struct {
	out       Sink
	recipient string
	flash     bool
}

func NewSMSNotification(out Sink, recipient string) *SMSNotification {
	return &SMSNotification{out: out, recipient: recipient}
}

func (n *SMSNotification) Channel() contract.Channel { return contract.ChannelSMS }
func (n *SMSNotification) Recipient() string         { return n.recipient }
func (n *SMSNotification) MaxLength() int            { return SMSMaxLength }
func (n *SMSNotification) IsFlash() bool             { return n.flash }

func (n *SMSNotification) EnableFlashMode() {
	n.flash = true
	n.out.Infof(constants.OutMsgSMSFlashEnabled)
}

func (n *SMSNotification) Send(message string) string {
	text := message
	if n.flash {
		text = smsFlashPrefix + message
	}
	n.out.Infof(constants.OutMsgSMSSend, n.recipient, text)

	return text
}

// =============================================================================
// Telegram
// =============================================================================

// TelegramNotification 마크다운 굵은 글씨로 감싼 메시지와 선택적인 인라인 버튼을 가진 알림입니다.
// Send는 봇 API로 보낼 수 있는 MessageConfig를 만들어 두지만 네트워크 전송은 하지 않습니다.
type TelegramNotification struct {
	out       Sink
	recipient string
	buttons   []string
	message   *tgbotapi.MessageConfig
}

func NewTelegramNotification(out Sink, recipient string) *TelegramNotification {
	return &TelegramNotification{out: out, recipient: recipient}
}

func (n *TelegramNotification) Channel() contract.Channel { return contract.ChannelTelegram }
func (n *TelegramNotification) Recipient() string         { return n.recipient }
func (n *TelegramNotification) MaxLength() int            { return TelegramMaxLength }

// AddInlineKeyboard 버튼 목록을 교체합니다.
func (n *TelegramNotification) AddInlineKeyboard(buttons []string) {
	n.buttons = slices.Clone(buttons)
	n.out.Infof(constants.OutMsgTelegramKeyboardAdded, strings.Join(n.buttons, " | "))
}

func (n *TelegramNotification) Buttons() []string {
	return slices.Clone(n.buttons)
}

// Message 마지막 Send로 만들어진 봇 API 메시지입니다. Send 전에는 nil입니다.
func (n *TelegramNotification) Message() *tgbotapi.MessageConfig {
	return n.message
}

func (n *TelegramNotification) Send(message string) string {
	formatted := "*" + message + "*"

	var msg tgbotapi.MessageConfig
	if chatID, err := strconv.ParseInt(n.recipient, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(chatID, formatted)
	} else {
		msg = tgbotapi.NewMessageToChannel(n.recipient, formatted)
	}
	msg.ParseMode = tgbotapi.ModeMarkdown

	if len(n.buttons) > 0 {
		msg.ReplyMarkup = inlineKeyboard(n.buttons)
		n.out.Infof(constants.OutMsgTelegramButtons, strings.Join(n.buttons, " | "))
	}
	n.message = &msg

	n.out.Infof(constants.OutMsgTelegramSend, n.recipient, formatted)

	return formatted
}

// inlineKeyboard 버튼들을 한 줄짜리 인라인 키보드로 만듭니다.
// 콜백 데이터는 64바이트 제한이 있어 라벨 대신 순번을 사용합니다.
func inlineKeyboard(labels []string) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(labels))
	for i, label := range labels {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, "btn_"+strconv.Itoa(i)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}
