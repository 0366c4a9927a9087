package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	setupOnce      sync.Once
	globalCloser   io.Closer
	globalSetupErr error
)

// Setup 전역 로거를 구성합니다. 프로세스 생애 동안 한 번만 적용되며,
// 이후 호출은 최초 호출의 결과를 그대로 돌려줍니다.
//
// 반환된 Closer는 종료 시점에 반드시 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})

	return globalCloser, globalSetupErr
}

func setup(opts Options) (_ io.Closer, err error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("로그 설정이 올바르지 않습니다: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 실제 기록은 hook이 담당하므로 기본 출력은 버린다.
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)

	h := &hook{formatter: newTextFormatter(opts.CallerPathPrefix)}
	if opts.EnableConsoleLog {
		h.consoleWriter = os.Stdout
	}

	var closers []io.Closer
	defer func() {
		if err != nil {
			for _, c := range closers {
				_ = c.Close()
			}
		}
	}()

	if !opts.DisableFileLog {
		dir := opts.Dir
		if dir == "" {
			dir = defaultDir
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("로그 디렉토리를 만들 수 없습니다: %w", err)
		}

		main := newRotatingWriter(dir, opts.Name, "", opts)
		h.mainWriter = main
		closers = append(closers, main)

		if opts.EnableCriticalLog {
			critical := newRotatingWriter(dir, opts.Name, "critical", opts)
			h.criticalWriter = critical
			closers = append(closers, critical)
		}
		if opts.EnableVerboseLog {
			verbose := newRotatingWriter(dir, opts.Name, "verbose", opts)
			h.verboseWriter = verbose
			closers = append(closers, verbose)
		}
	}

	logrus.AddHook(h)

	c := &closer{closers: closers, hook: h}
	logrus.RegisterExitHandler(func() { _ = c.Close() })

	return c, nil
}

// newRotatingWriter "<name>[.<suffix>].log" 파일에 기록하는 lumberjack 로테이터를 만듭니다.
func newRotatingWriter(dir, name, suffix string, opts Options) *lumberjack.Logger {
	fileName := name + ".log"
	if suffix != "" {
		fileName = name + "." + suffix + ".log"
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, fileName),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     opts.MaxAge,
		LocalTime:  true,
	}
}

func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return function, ""
		},
	}
}

// silentFormatter io.Discard로 버려질 출력을 위해 포맷팅 비용을 치르지 않도록 하는 포맷터입니다.
type silentFormatter struct{}

func (silentFormatter) Format(*logrus.Entry) ([]byte, error) {
	return nil, nil
}

// SetDebugMode 디버그 모드이면 Trace, 아니면 Info 레벨로 전환합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}
