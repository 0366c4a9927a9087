// Package notifier 채널별 알림(Notification)과 발송기(Sender)를 구현합니다.
//
// 모든 발송기는 같은 순서로 알림을 처리합니다.
//
//  1. 수신자에 대한 새 알림을 만든다 (채널별)
//  2. 발송기에 쌓여 있던 설정(첨부 파일, 플래시 모드, 인라인 버튼)을 알림에 적용하고 비운다 (채널별)
//  3. 메시지 앞에 "[HH:mm:ss] " 타임스탬프를 붙인다
//  4. 채널 최대 길이를 넘으면 경고를 남기고 자른다
//  5. 알림을 채널 형식으로 변환해 출력한다
//
// 실제 외부 전송은 하지 않으며 모든 결과는 생성 시 주입된 Sink로 출력됩니다.
package notifier

import (
	"time"
)

// Sink 발송기와 알림이 사용자에게 보여줄 라인을 기록하는 출력 대상입니다.
// *logrus.Entry가 이 인터페이스를 만족합니다.
type Sink interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Clock 현재 시각을 반환합니다. 타임스탬프 생성에 사용됩니다.
type Clock func() time.Time

// Option 발송기 생성 옵션입니다.
type Option func(*base)

// WithClock 타임스탬프에 사용할 시계를 지정합니다. 기본값은 time.Now입니다.
func WithClock(clock Clock) Option {
	return func(b *base) {
		if clock != nil {
			b.clock = clock
		}
	}
}
