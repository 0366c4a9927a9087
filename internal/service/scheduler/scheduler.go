// Package scheduler 설정 파일의 schedules 항목을 cron 스케줄에 맞춰 알림으로 발송합니다.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/notice-dispatcher/internal/config"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/darkkaiser/notice-dispatcher/pkg/cronx"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/robfig/cron/v3"
)

const component = "scheduler.service"

// dispatchTimeout 예약 발송 한 번에 허용하는 최대 시간입니다.
const dispatchTimeout = 5 * time.Second

// Scheduler 설정에 정의된 예약 알림을 주기적으로 발송하는 서비스입니다.
type Scheduler struct {
	schedules []config.ScheduleConfig

	cron *cron.Cron

	dispatcher contract.NoticeDispatcher

	running   bool
	runningMu sync.Mutex
}

// NewService 새 Scheduler 서비스를 생성합니다. dispatcher가 nil이면 panic이 발생합니다.
func NewService(schedules []config.ScheduleConfig, dispatcher contract.NoticeDispatcher) *Scheduler {
	if dispatcher == nil {
		panic("NoticeDispatcher는 필수입니다")
	}

	return &Scheduler{
		schedules:  schedules,
		dispatcher: dispatcher,
	}
}

// Start 활성화된 스케줄을 cron 엔진에 등록하고 실행합니다.
// 스케줄 하나라도 등록에 실패하면 아무것도 실행하지 않고 에러를 반환합니다.
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("Scheduler 서비스 시작중...")

	if s.dispatcher == nil {
		serviceStopWG.Done()
		return ErrDispatcherNotInitialized
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 시작됨!!!")
		return nil
	}

	logger := cron.VerbosePrintfLogger(applog.StandardLogger())
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(logger),
		cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		),
	)

	if err := s.registerSchedules(c); err != nil {
		serviceStopWG.Done()
		return err
	}

	s.cron = c
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"registered_schedules": len(s.cron.Entries()),
		"total_schedules":      len(s.schedules),
	}).Info("Scheduler 서비스 시작됨")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.stop()
	}()

	return nil
}

func (s *Scheduler) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("Scheduler 서비스 중지중...")

	// 실행 중인 발송이 끝날 때까지 대기
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 중지됨")
}

func (s *Scheduler) registerSchedules(c *cron.Cron) error {
	for _, sc := range s.schedules {
		if !sc.Enabled {
			continue
		}

		req, err := toNoticeRequest(sc)
		if err != nil {
			return NewErrInvalidSchedule(sc.ID, sc.TimeSpec, err)
		}

		scheduleID := sc.ID
		if _, err := c.AddFunc(sc.TimeSpec, func() { s.dispatch(scheduleID, req) }); err != nil {
			return NewErrInvalidSchedule(sc.ID, sc.TimeSpec, err)
		}
	}

	return nil
}

// dispatch 예약 알림 하나를 발송합니다.
// 발송은 서비스 종료 신호와 무관하게 끝까지 진행되며, cron.Stop()이 이를 기다립니다.
func (s *Scheduler) dispatch(scheduleID string, req contract.NoticeRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	fields := applog.Fields{
		"schedule_id": scheduleID,
		"channel":     req.Channel.String(),
	}

	receipt, err := s.dispatcher.Dispatch(ctx, req)
	if err != nil {
		fields["error"] = err
		applog.WithComponentAndFields(component, fields).Error("예약 알림 발송 실패")
		return
	}

	fields["notice_id"] = receipt.NoticeID
	applog.WithComponentAndFields(component, fields).Info("예약 알림 발송 완료")
}

func toNoticeRequest(sc config.ScheduleConfig) (contract.NoticeRequest, error) {
	ch, err := contract.ParseChannel(sc.Channel)
	if err != nil {
		return contract.NoticeRequest{}, err
	}

	return contract.NoticeRequest{
		Channel:     ch,
		Recipient:   sc.Recipient,
		Message:     sc.Message,
		Attachments: sc.Attachments,
		Flash:       sc.Flash,
		Buttons:     sc.Buttons,
	}, nil
}
