// Package mocks contract 인터페이스의 testify Mock 구현체를 제공합니다.
package mocks

import (
	"context"

	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

var (
	_ contract.NoticeDispatcher = (*MockNoticeDispatcher)(nil)
	_ contract.ChannelOperator  = (*MockChannelOperator)(nil)
	_ contract.HealthChecker    = (*MockChannelOperator)(nil)
)

// MockNoticeDispatcher contract.NoticeDispatcher의 Mock 구현체입니다.
type MockNoticeDispatcher struct {
	mock.Mock
}

func (m *MockNoticeDispatcher) Dispatch(ctx context.Context, req contract.NoticeRequest) (*contract.NoticeReceipt, error) {
	args := m.Called(ctx, req)

	receipt, _ := args.Get(0).(*contract.NoticeReceipt)
	return receipt, args.Error(1)
}

// MockChannelOperator contract.ChannelOperator와 contract.HealthChecker의 Mock 구현체입니다.
type MockChannelOperator struct {
	mock.Mock
}

func (m *MockChannelOperator) SetEmailSenderIdentity(name string) error {
	return m.Called(name).Error(0)
}

func (m *MockChannelOperator) CheckSMSBalance(userID int) (float64, error) {
	args := m.Called(userID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockChannelOperator) UpdateTelegramWebhook(url string) error {
	return m.Called(url).Error(0)
}

func (m *MockChannelOperator) Health() error {
	return m.Called().Error(0)
}
