package config

import (
	"fmt"
	"slices"

	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/go-playground/validator/v10"
)

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.Channels.validate(v); err != nil {
		return err
	}
	if err := c.validateSchedules(v); err != nil {
		return err
	}
	if c.NotifyAPI.Enabled {
		if err := c.NotifyAPI.validate(v); err != nil {
			return err
		}
	}
	return nil
}

func (c *ChannelsConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.Email, "Channel['email']"); err != nil {
		return err
	}
	if err := checkStruct(v, c.SMS, "Channel['sms']"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Telegram, "Channel['telegram']"); err != nil {
		return err
	}

	if len(c.EnabledChannels()) == 0 {
		return apperrors.New(apperrors.InvalidInput, "활성화된 알림 채널이 하나도 없습니다")
	}

	return nil
}

// EnabledChannels 활성화된 채널 목록을 email, sms, telegram 순서로 반환합니다.
func (c *ChannelsConfig) EnabledChannels() []contract.Channel {
	var channels []contract.Channel
	if c.Email.Enabled {
		channels = append(channels, contract.ChannelEmail)
	}
	if c.SMS.Enabled {
		channels = append(channels, contract.ChannelSMS)
	}
	if c.Telegram.Enabled {
		channels = append(channels, contract.ChannelTelegram)
	}
	return channels
}

func (c *AppConfig) validateSchedules(v *validator.Validate) error {
	if err := checkUniqueField(v, c.Schedules, "ID", "Schedule"); err != nil {
		return err
	}

	enabled := c.Channels.EnabledChannels()
	for _, s := range c.Schedules {
		contextName := fmt.Sprintf("Schedule['%s']", s.ID)
		if err := checkStruct(v, s, contextName); err != nil {
			return err
		}

		ch, _ := contract.ParseChannel(s.Channel)
		if s.Enabled && !slices.Contains(enabled, ch) {
			return apperrors.Newf(apperrors.InvalidInput, "%s이 비활성화된 채널('%s')을 사용합니다", contextName, ch)
		}

		req := contract.NoticeRequest{
			Channel:     ch,
			Recipient:   s.Recipient,
			Message:     s.Message,
			Attachments: s.Attachments,
			Flash:       s.Flash,
			Buttons:     s.Buttons,
		}
		if err := req.CheckOptions(); err != nil {
			return apperrors.Wrapf(err, apperrors.InvalidInput, "%s의 발송 옵션이 채널과 맞지 않습니다", contextName)
		}
	}

	return nil
}

func (c *NotifyAPIConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.WS, "NotifyAPI.WS"); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, c.RateLimit, "NotifyAPI.RateLimit"); err != nil {
		return err
	}

	if len(c.Applications) == 0 {
		return apperrors.New(apperrors.InvalidInput, "API 서버를 사용하려면 최소 하나의 애플리케이션(applications)이 필요합니다")
	}
	if err := checkUniqueField(v, c.Applications, "ID", "Application"); err != nil {
		return err
	}
	for _, app := range c.Applications {
		if err := checkStruct(v, app, fmt.Sprintf("Application['%s']", app.ID)); err != nil {
			return err
		}
	}

	return nil
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if slices.Contains(c.AllowOrigins, "*") && len(c.AllowOrigins) > 1 {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다")
	}
	return checkStruct(v, c, "NotifyAPI.CORS")
}

// VerifyRecommendations 동작에는 문제가 없지만 권장하지 않는 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.NotifyAPI.Enabled {
		if c.NotifyAPI.WS.ListenPort < 1024 {
			warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 관리자 권한이 필요할 수 있습니다", c.NotifyAPI.WS.ListenPort))
		}
		if !c.NotifyAPI.WS.TLSServer {
			warnings = append(warnings, "API 서버가 TLS 없이 동작합니다. 애플리케이션 키가 평문으로 전송됩니다")
		}
	}

	if c.Channels.Telegram.Enabled && c.Channels.Telegram.MaxButtons > DefaultMaxButtons {
		warnings = append(warnings, fmt.Sprintf("텔레그램 버튼 수 상한(max_buttons=%d)이 기본값(%d)보다 큽니다", c.Channels.Telegram.MaxButtons, DefaultMaxButtons))
	}

	return warnings
}
