package scheduler

import (
	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
)

var (
	// ErrDispatcherNotInitialized 서비스 시작 시 NoticeDispatcher가 초기화되지 않았을 때 반환하는 에러입니다.
	ErrDispatcherNotInitialized = apperrors.New(apperrors.Internal, "NoticeDispatcher 객체가 초기화되지 않았습니다")
)

// NewErrInvalidSchedule 스케줄 설정을 해석할 수 없어 등록에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrInvalidSchedule(scheduleID, timeSpec string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "스케줄 등록 실패 (ScheduleID=%s, TimeSpec='%s')", scheduleID, timeSpec)
}
