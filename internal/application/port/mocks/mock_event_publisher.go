package mocks

import (
	"github.com/bnema/gridterm/internal/application/port"
	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of port.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

func (_m *MockEventPublisher) Publish(ev port.Event) {
	_m.Called(ev)
}

// MockEventPublisher_Publish_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Publish'.
type MockEventPublisher_Publish_Call struct {
	*mock.Call
}

// Publish is a helper method to define mock.On call
func (_e *MockEventPublisher_Expecter) Publish(ev interface{}) *MockEventPublisher_Publish_Call {
	return &MockEventPublisher_Publish_Call{Call: _e.mock.On("Publish", ev)}
}

func (_c *MockEventPublisher_Publish_Call) Run(run func(ev port.Event)) *MockEventPublisher_Publish_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(port.Event))
	})
	return _c
}

func (_c *MockEventPublisher_Publish_Call) Return() *MockEventPublisher_Publish_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockEventPublisher_Publish_Call) RunAndReturn(run func(port.Event)) *MockEventPublisher_Publish_Call {
	_c.Run(run)
	return _c
}

// NewMockEventPublisher creates a new instance of MockEventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
