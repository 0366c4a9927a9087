// Package errors 타입으로 분류되는 애플리케이션 에러를 제공합니다.
//
// 모든 에러는 ErrorType을 가지며 Wrap으로 원인 에러를 감싸 문맥을 쌓을 수 있습니다.
//
//	if err := sender.UpdateWebhook(url); err != nil {
//	    return errors.Wrap(err, errors.InvalidInput, "웹훅 URL을 적용할 수 없습니다")
//	}
//
//	if errors.Is(err, errors.NotFound) { ... }
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 타입, 메시지, 원인 에러, 생성 위치의 스택을 가진 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

func (e *AppError) Type() ErrorType     { return e.errType }
func (e *AppError) Message() string     { return e.message }
func (e *AppError) Stack() []StackFrame { return e.stack }
func (e *AppError) Unwrap() error       { return e.cause }

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

// Format %+v로 출력하면 원인 체인과 스택을 함께 보여줍니다.
// 스택은 체인의 끝(원인이 없거나 외부 에러를 감싼 AppError)에서만 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

			var inner *AppError
			if (e.cause == nil || !errors.As(e.cause, &inner)) && len(e.stack) > 0 {
				fmt.Fprint(s, "\nStack trace:")
				for _, f := range e.stack {
					fn := f.Function
					if i := strings.LastIndex(fn, "/"); i != -1 {
						fn = fn[i+1:]
					}
					fmt.Fprintf(s, "\n\t%s:%d %s", f.File, f.Line, fn)
				}
			}

			if e.cause != nil {
				fmt.Fprint(s, "\nCaused by:\n")
				if f, ok := e.cause.(fmt.Formatter); ok {
					f.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// New 새 에러를 만듭니다.
func New(errType ErrorType, message string) error {
	return &AppError{errType: errType, message: message, stack: captureStack(callerSkip)}
}

// Newf 포맷 문자열로 새 에러를 만듭니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), stack: captureStack(callerSkip)}
}

// Wrap err을 원인으로 하는 새 에러를 만듭니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: message, cause: err, stack: captureStack(callerSkip)}
}

// Wrapf 포맷 문자열을 사용하는 Wrap입니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), cause: err, stack: captureStack(callerSkip)}
}

// Is 에러 체인 안에 errType의 AppError가 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
	}
	return false
}

// As 표준 errors.As와 같습니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 체인의 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// UnderlyingType 체인에서 가장 안쪽에 있는 AppError의 타입을 반환합니다.
// AppError가 하나도 없으면 Unknown입니다.
//
//	err := Wrap(New(NotFound, "채널 없음"), Internal, "발송 실패")
//	UnderlyingType(err) // NotFound
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
	}
	return t
}
