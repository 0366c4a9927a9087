package notifier

import (
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification/constants"
)

// DefaultEmailSenderName 발신자 이름을 지정하지 않았을 때 사용하는 값입니다.
const DefaultEmailSenderName = "MyApp"

// EmailSender HTML 본문과 첨부 파일을 지원하는 이메일 발송기입니다.
type EmailSender struct {
	*base

	senderName         string
	pendingAttachments []string
}

var _ Sender = (*EmailSender)(nil)

// NewEmailSender 새 이메일 발송기를 생성합니다. out이 nil이면 panic이 발생합니다.
func NewEmailSender(out Sink, senderName string, opts ...Option) *EmailSender {
	if senderName == "" {
		senderName = DefaultEmailSenderName
	}

	return &EmailSender{
		base:       newBase(contract.ChannelEmail, out, opts...),
		senderName: senderName,
	}
}

// AddAttachment 다음 발송 한 번에 첨부할 파일을 추가합니다.
func (s *EmailSender) AddAttachment(fileName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingAttachments = append(s.pendingAttachments, fileName)
}

// SetSenderIdentity 이후 발송에 사용할 발신자 이름을 바꿉니다.
func (s *EmailSender) SetSenderIdentity(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.senderName = name
	s.out.Infof(constants.OutMsgEmailSenderIdentitySet, name)
}

func (s *EmailSender) SenderName() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.senderName
}

func (s *EmailSender) SendNotice(recipient, message string) Delivery {
	return sendNotice(s.base, recipient, message,
		func(r string) *EmailNotification {
			return NewEmailNotification(s.out, s.senderName, r)
		},
		func(n *EmailNotification) {
			for _, f := range s.pendingAttachments {
				n.AddAttachment(f)
			}
			s.pendingAttachments = nil
		},
	)
}
