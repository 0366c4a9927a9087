// Package cronx 애플리케이션 전체에서 공유하는 cron 표현식 규칙을 정의합니다.
package cronx

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 필드를 포함한 6필드 표현식과 "@daily", "@every 1m" 같은 descriptor를 해석하는 파서입니다.
//
//	"0 */5 * * * *"  매 5분 0초
//	"0 0 9 * * MON"  매주 월요일 09:00:00
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate spec이 StandardParser로 해석 가능한지 확인합니다.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("cron 표현식을 해석할 수 없습니다(spec=%q): %w", spec, err)
	}
	return nil
}
