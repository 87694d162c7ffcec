package mocks

import (
	"context"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/stretchr/testify/mock"
)

// MockConfirmer is a mock implementation of port.Confirmer.
type MockConfirmer struct {
	mock.Mock
}

type MockConfirmer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockConfirmer) EXPECT() *MockConfirmer_Expecter {
	return &MockConfirmer_Expecter{mock: &_m.Mock}
}

func (_m *MockConfirmer) Confirm(ctx context.Context, req port.ConfirmRequest, answer func(bool)) {
	_m.Called(ctx, req, answer)
}

// MockConfirmer_Confirm_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Confirm'.
type MockConfirmer_Confirm_Call struct {
	*mock.Call
}

// Confirm is a helper method to define mock.On call
func (_e *MockConfirmer_Expecter) Confirm(ctx interface{}, req interface{}, answer interface{}) *MockConfirmer_Confirm_Call {
	return &MockConfirmer_Confirm_Call{Call: _e.mock.On("Confirm", ctx, req, answer)}
}

func (_c *MockConfirmer_Confirm_Call) Run(run func(ctx context.Context, req port.ConfirmRequest, answer func(bool))) *MockConfirmer_Confirm_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(port.ConfirmRequest), args[2].(func(bool)))
	})
	return _c
}

func (_c *MockConfirmer_Confirm_Call) Return() *MockConfirmer_Confirm_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockConfirmer_Confirm_Call) RunAndReturn(run func(context.Context, port.ConfirmRequest, func(bool))) *MockConfirmer_Confirm_Call {
	_c.Run(run)
	return _c
}

// NewMockConfirmer creates a new instance of MockConfirmer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockConfirmer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockConfirmer {
	m := &MockConfirmer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
