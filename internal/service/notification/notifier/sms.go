package notifier

import (
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification/constants"
)

// smsBalanceRate 잔액 조회 API 응답을 흉내 내는 계수입니다. (잔액 = 사용자 ID × 10.5)
const smsBalanceRate = 10.5

type SMSSender struct {
	*base

	apiKey       string
	pendingFlash bool
}

var _ Sender = (*SMSSender)(nil)

// NewSMSSender 새 SMS 발송기를 생성합니다. apiKey는 형식을 검사하지 않고 그대로 보관합니다.
func NewSMSSender(out Sink, apiKey string, opts ...Option) *SMSSender {
	return &SMSSender{
		base:   newBase(contract.ChannelSMS, out, opts...),
		apiKey: apiKey,
	}
}

// EnableFlashMode 다음 발송 한 번을 플래시 SMS로 보냅니다.
func (s *SMSSender) EnableFlashMode() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingFlash = true
}

// CheckBalance 사용자의 잔액을 조회합니다.
func (s *SMSSender) CheckBalance(userID int) float64 {
	balance := float64(userID) * smsBalanceRate
	s.out.Infof(constants.OutMsgSMSBalance, userID, balance)

	return balance
}

func (s *SMSSender) SendNotice(recipient, message string) Delivery {
	return sendNotice(s.base, recipient, message,
		func(r string) *SMSNotification {
			return NewSMSNotification(s.out, r)
		},
		func(n *SMSNotification) {
			if s.pendingFlash {
				n.EnableFlashMode()
			}
			s.pendingFlash = false
		},
	)
}
