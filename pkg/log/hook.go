package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 출력 대상을 나눕니다.
//
//   - console: 모든 레벨
//   - critical: ERROR 이상 (main에도 함께 기록)
//   - verbose: DEBUG 이하 (main에는 기록하지 않음)
//   - main: INFO 이상
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level {
	return AllLevels
}

func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 콘솔 쓰기 실패는 로깅 전체를 실패시키지 않는다.
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[log] 콘솔 출력 실패: %v\n", err)
		}
	}

	var firstErr error
	write := func(w io.Writer, name string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[log] %s 로그 파일 쓰기 실패: %v\n", name, err)
		}
	}

	if entry.Level >= DebugLevel {
		write(h.verboseWriter, "verbose")
		return firstErr
	}

	if entry.Level <= ErrorLevel {
		write(h.criticalWriter, "critical")
	}
	write(h.mainWriter, "main")

	return firstErr
}

// Close 이후의 모든 기록 요청을 무시하도록 전환합니다. 진행 중인 기록이 끝날 때까지 대기합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
