package log

import (
	"fmt"
	"os"
)

// Options 로깅 시스템 초기화 옵션입니다.
type Options struct {
	Name  string // 로그 파일명의 접두어로 사용되는 애플리케이션 이름
	Dir   string // 로그 파일 저장 디렉토리 (빈 값이면 "logs")
	Level Level

	MaxAge     int // 보관 일수 (0: 삭제하지 않음)
	MaxSizeMB  int // 파일 하나의 최대 크기 (0: 기본값)
	MaxBackups int // 보관할 백업 파일 수 (0: 기본값)

	EnableCriticalLog bool // ERROR 이상 로그를 별도 파일에도 기록
	EnableVerboseLog  bool // DEBUG 이하 로그를 별도 파일로 분리
	EnableConsoleLog  bool // 표준 출력에도 기록
	DisableFileLog    bool // 파일 출력을 끄고 콘솔만 사용 (CLI 단발성 실행용)

	ReportCaller     bool
	CallerPathPrefix string // 호출자 함수 경로에서 잘라낼 접두어
}

// Validate 옵션 값의 유효성을 검사합니다.
func (o *Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("애플리케이션 이름(Name)이 비어 있습니다")
	}
	if o.Dir != "" {
		if info, err := os.Stat(o.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 파일입니다", o.Dir)
		}
	}
	if o.MaxAge < 0 || o.MaxSizeMB < 0 || o.MaxBackups < 0 {
		return fmt.Errorf("로테이션 설정값은 음수일 수 없습니다 (MaxAge=%d, MaxSizeMB=%d, MaxBackups=%d)", o.MaxAge, o.MaxSizeMB, o.MaxBackups)
	}
	if o.DisableFileLog && !o.EnableConsoleLog {
		return fmt.Errorf("파일 출력과 콘솔 출력이 모두 비활성화되어 있습니다")
	}

	return nil
}

// NewProductionOptions 서버 실행용 기본 옵션을 반환합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:              appName,
		Level:             InfoLevel,
		MaxAge:            30,
		MaxSizeMB:         100,
		MaxBackups:        20,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		ReportCaller:      true,
		CallerPathPrefix:  "github.com/darkkaiser",
	}
}

// NewDevelopmentOptions 개발 및 디버그 모드용 옵션을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:             appName,
		Level:            TraceLevel,
		MaxAge:           1,
		MaxSizeMB:        50,
		MaxBackups:       5,
		EnableConsoleLog: true,
		ReportCaller:     true,
		CallerPathPrefix: "github.com/darkkaiser",
	}
}

// NewConsoleOptions 파일을 만들지 않고 콘솔에만 출력하는 옵션을 반환합니다.
func NewConsoleOptions(appName string) Options {
	return Options{
		Name:             appName,
		Level:            InfoLevel,
		EnableConsoleLog: true,
		DisableFileLog:   true,
	}
}
