package contract

import (
	"strings"

	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/darkkaiser/notice-dispatcher/pkg/strutil"
)

// Channel 알림이 전달되는 경로입니다.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelTelegram Channel = "telegram"
)

var channelAliases = map[string]Channel{
	"email":    ChannelEmail,
	"e_mail":   ChannelEmail,
	"mail":     ChannelEmail,
	"sms":      ChannelSMS,
	"telegram": ChannelTelegram,
	"tg":       ChannelTelegram,
}

// Channels 지원하는 모든 채널을 반환합니다.
func Channels() []Channel {
	return []Channel{ChannelEmail, ChannelSMS, ChannelTelegram}
}

// ChannelNames "email, sms, telegram"
func ChannelNames() string {
	names := make([]string, 0, 3)
	for _, c := range Channels() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// ParseChannel 대소문자나 구분자 표기와 관계없이 채널 이름을 해석합니다. ("E-Mail", "TG" 등)
func ParseChannel(s string) (Channel, error) {
	if c, ok := channelAliases[strutil.ToSnakeCase(s)]; ok {
		return c, nil
	}
	return "", apperrors.Newf(apperrors.NotFound, "지원하지 않는 채널입니다: '%s' (사용 가능: %s)", s, ChannelNames())
}

func (c Channel) String() string {
	return string(c)
}
