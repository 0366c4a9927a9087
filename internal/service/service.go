// Package service 애플리케이션을 구성하는 서비스의 공통 생명주기를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 메인 프로세스가 시작하고 종료를 기다리는 서비스입니다.
//
// Start는 시작 실패든 종료 완료든 정확히 한 번 serviceStopWG.Done()을 호출해야 하며,
// serviceStopCtx가 취소되면 정리 작업을 수행합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
