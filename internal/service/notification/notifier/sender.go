package notifier

import (
	"sync"
	"time"

	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/darkkaiser/notice-dispatcher/internal/service/notification/constants"
	"github.com/darkkaiser/notice-dispatcher/pkg/strutil"
)

// timestampLayout 메시지 앞에 붙는 "[HH:mm:ss] " 형식입니다.
const timestampLayout = "15:04:05"

// Sender 한 채널의 알림 발송기입니다.
type Sender interface {
	Channel() contract.Channel

	// SendNotice 수신자에게 메시지를 보냅니다.
	// 호출 전에 쌓아 둔 채널별 설정은 이번 발송에만 적용되고 비워집니다.
	SendNotice(recipient, message string) Delivery
}

// Delivery SendNotice 한 번의 결과입니다.
type Delivery struct {
	Channel   contract.Channel
	Recipient string
	Message   string // 타임스탬프가 붙고 필요하면 잘린 메시지
	Output    string // 채널 형식으로 변환된 출력
	Truncated bool
	SentAt    time.Time
}

// base 모든 발송기가 공유하는 상태입니다.
// mu는 발송기별 설정 버퍼와 발송 과정을 보호합니다.
type base struct {
	mu sync.Mutex

	channel contract.Channel
	out     Sink
	clock   Clock
}

func newBase(channel contract.Channel, out Sink, opts ...Option) *base {
	if out == nil {
		panic("notifier: Sink는 nil일 수 없습니다")
	}

	b := &base{
		channel: channel,
		out:     out,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

func (b *base) Channel() contract.Channel {
	return b.channel
}

// sendNotice 모든 채널에 공통인 발송 순서입니다.
// create와 configure만 채널별로 다르며, configure는 b.mu를 잡은 상태로 호출됩니다.
func sendNotice[N Notification](b *base, recipient, message string, create func(string) N, configure func(N)) Delivery {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := create(recipient)
	configure(n)

	now := b.clock()
	validated := "[" + now.Format(timestampLayout) + "] " + message

	validated, truncated := strutil.TruncateChars(validated, n.MaxLength())
	if truncated {
		b.out.Warnf(constants.OutMsgTruncated, n.MaxLength())
	}

	output := n.Send(validated)

	return Delivery{
		Channel:   n.Channel(),
		Recipient: n.Recipient(),
		Message:   validated,
		Output:    output,
		Truncated: truncated,
		SentAt:    now,
	}
}
