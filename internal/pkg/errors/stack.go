package errors

import (
	"path/filepath"
	"runtime"
)

// callerSkip runtime.Callers, captureStack, 그리고 공개 생성 함수 자신을 건너뛰어
// 호출자의 위치가 첫 프레임이 되도록 합니다.
const callerSkip = 3

const maxStackDepth = 5

// StackFrame 호출 스택의 한 프레임입니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

func captureStack(skip int) []StackFrame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]StackFrame, 0, n)
	for {
		f, more := frames.Next()
		stack = append(stack, StackFrame{File: filepath.Base(f.File), Line: f.Line, Function: f.Function})
		if !more {
			break
		}
	}

	return stack
}
