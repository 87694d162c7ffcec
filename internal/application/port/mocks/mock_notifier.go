package mocks

import (
	"context"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of port.Notifier.
type MockNotifier struct {
	mock.Mock
}

type MockNotifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotifier) EXPECT() *MockNotifier_Expecter {
	return &MockNotifier_Expecter{mock: &_m.Mock}
}

func (_m *MockNotifier) Show(ctx context.Context, message string, notifType port.NotificationType) {
	_m.Called(ctx, message, notifType)
}

// MockNotifier_Show_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Show'.
type MockNotifier_Show_Call struct {
	*mock.Call
}

// Show is a helper method to define mock.On call
func (_e *MockNotifier_Expecter) Show(ctx interface{}, message interface{}, notifType interface{}) *MockNotifier_Show_Call {
	return &MockNotifier_Show_Call{Call: _e.mock.On("Show", ctx, message, notifType)}
}

func (_c *MockNotifier_Show_Call) Run(run func(ctx context.Context, message string, notifType port.NotificationType)) *MockNotifier_Show_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(port.NotificationType))
	})
	return _c
}

func (_c *MockNotifier_Show_Call) Return() *MockNotifier_Show_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockNotifier_Show_Call) RunAndReturn(run func(context.Context, string, port.NotificationType)) *MockNotifier_Show_Call {
	_c.Run(run)
	return _c
}

// NewMockNotifier creates a new instance of MockNotifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotifier {
	m := &MockNotifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
