package mocks

import (
	"context"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/stretchr/testify/mock"
)

// MockWindowCommander is a mock implementation of port.WindowCommander.
type MockWindowCommander struct {
	mock.Mock
}

type MockWindowCommander_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWindowCommander) EXPECT() *MockWindowCommander_Expecter {
	return &MockWindowCommander_Expecter{mock: &_m.Mock}
}

func (_m *MockWindowCommander) Perform(ctx context.Context, cmd port.WindowCommand) error {
	ret := _m.Called(ctx, cmd)

	if len(ret) == 0 {
		panic("no return value specified for Perform")
	}

	if rf, ok := ret.Get(0).(func(context.Context, port.WindowCommand) error); ok {
		return rf(ctx, cmd)
	}

	return ret.Error(0)
}

// MockWindowCommander_Perform_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Perform'.
type MockWindowCommander_Perform_Call struct {
	*mock.Call
}

// Perform is a helper method to define mock.On call
func (_e *MockWindowCommander_Expecter) Perform(ctx interface{}, cmd interface{}) *MockWindowCommander_Perform_Call {
	return &MockWindowCommander_Perform_Call{Call: _e.mock.On("Perform", ctx, cmd)}
}

func (_c *MockWindowCommander_Perform_Call) Run(run func(ctx context.Context, cmd port.WindowCommand)) *MockWindowCommander_Perform_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(port.WindowCommand))
	})
	return _c
}

func (_c *MockWindowCommander_Perform_Call) Return(_a0 error) *MockWindowCommander_Perform_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWindowCommander_Perform_Call) RunAndReturn(run func(context.Context, port.WindowCommand) error) *MockWindowCommander_Perform_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockWindowCommander creates a new instance of MockWindowCommander. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWindowCommander(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWindowCommander {
	m := &MockWindowCommander{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
