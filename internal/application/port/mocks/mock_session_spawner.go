package mocks

import (
	"context"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockSessionSpawner is a mock implementation of port.SessionSpawner.
type MockSessionSpawner struct {
	mock.Mock
}

type MockSessionSpawner_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSessionSpawner) EXPECT() *MockSessionSpawner_Expecter {
	return &MockSessionSpawner_Expecter{mock: &_m.Mock}
}

func (_m *MockSessionSpawner) Spawn(ctx context.Context, req port.SpawnRequest) (entity.SessionID, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Spawn")
	}

	if rf, ok := ret.Get(0).(func(context.Context, port.SpawnRequest) (entity.SessionID, error)); ok {
		return rf(ctx, req)
	}

	var r0 entity.SessionID
	if v := ret.Get(0); v != nil {
		r0 = v.(entity.SessionID)
	}

	return r0, ret.Error(1)
}

// MockSessionSpawner_Spawn_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Spawn'.
type MockSessionSpawner_Spawn_Call struct {
	*mock.Call
}

// Spawn is a helper method to define mock.On call
func (_e *MockSessionSpawner_Expecter) Spawn(ctx interface{}, req interface{}) *MockSessionSpawner_Spawn_Call {
	return &MockSessionSpawner_Spawn_Call{Call: _e.mock.On("Spawn", ctx, req)}
}

func (_c *MockSessionSpawner_Spawn_Call) Run(run func(ctx context.Context, req port.SpawnRequest)) *MockSessionSpawner_Spawn_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(port.SpawnRequest))
	})
	return _c
}

func (_c *MockSessionSpawner_Spawn_Call) Return(_a0 entity.SessionID, _a1 error) *MockSessionSpawner_Spawn_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSessionSpawner_Spawn_Call) RunAndReturn(run func(context.Context, port.SpawnRequest) (entity.SessionID, error)) *MockSessionSpawner_Spawn_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockSessionSpawner) Terminate(ctx context.Context, id entity.SessionID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Terminate")
	}

	if rf, ok := ret.Get(0).(func(context.Context, entity.SessionID) error); ok {
		return rf(ctx, id)
	}

	return ret.Error(0)
}

// MockSessionSpawner_Terminate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Terminate'.
type MockSessionSpawner_Terminate_Call struct {
	*mock.Call
}

// Terminate is a helper method to define mock.On call
func (_e *MockSessionSpawner_Expecter) Terminate(ctx interface{}, id interface{}) *MockSessionSpawner_Terminate_Call {
	return &MockSessionSpawner_Terminate_Call{Call: _e.mock.On("Terminate", ctx, id)}
}

func (_c *MockSessionSpawner_Terminate_Call) Run(run func(ctx context.Context, id entity.SessionID)) *MockSessionSpawner_Terminate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.SessionID))
	})
	return _c
}

func (_c *MockSessionSpawner_Terminate_Call) Return(_a0 error) *MockSessionSpawner_Terminate_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSessionSpawner_Terminate_Call) RunAndReturn(run func(context.Context, entity.SessionID) error) *MockSessionSpawner_Terminate_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockSessionSpawner) OnExit(id entity.SessionID, fn func(entity.SessionID)) {
	_m.Called(id, fn)
}

// MockSessionSpawner_OnExit_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'OnExit'.
type MockSessionSpawner_OnExit_Call struct {
	*mock.Call
}

// OnExit is a helper method to define mock.On call
func (_e *MockSessionSpawner_Expecter) OnExit(id interface{}, fn interface{}) *MockSessionSpawner_OnExit_Call {
	return &MockSessionSpawner_OnExit_Call{Call: _e.mock.On("OnExit", id, fn)}
}

func (_c *MockSessionSpawner_OnExit_Call) Run(run func(id entity.SessionID, fn func(entity.SessionID))) *MockSessionSpawner_OnExit_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(entity.SessionID), args[1].(func(entity.SessionID)))
	})
	return _c
}

func (_c *MockSessionSpawner_OnExit_Call) Return() *MockSessionSpawner_OnExit_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockSessionSpawner_OnExit_Call) RunAndReturn(run func(entity.SessionID, func(entity.SessionID))) *MockSessionSpawner_OnExit_Call {
	_c.Run(run)
	return _c
}

func (_m *MockSessionSpawner) WorkingDirectory(id entity.SessionID) (string, error) {
	ret := _m.Called(id)

	if len(ret) == 0 {
		panic("no return value specified for WorkingDirectory")
	}

	if rf, ok := ret.Get(0).(func(entity.SessionID) (string, error)); ok {
		return rf(id)
	}

	var r0 string
	if v := ret.Get(0); v != nil {
		r0 = v.(string)
	}

	return r0, ret.Error(1)
}

// MockSessionSpawner_WorkingDirectory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WorkingDirectory'.
type MockSessionSpawner_WorkingDirectory_Call struct {
	*mock.Call
}

// WorkingDirectory is a helper method to define mock.On call
func (_e *MockSessionSpawner_Expecter) WorkingDirectory(id interface{}) *MockSessionSpawner_WorkingDirectory_Call {
	return &MockSessionSpawner_WorkingDirectory_Call{Call: _e.mock.On("WorkingDirectory", id)}
}

func (_c *MockSessionSpawner_WorkingDirectory_Call) Run(run func(id entity.SessionID)) *MockSessionSpawner_WorkingDirectory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(entity.SessionID))
	})
	return _c
}

func (_c *MockSessionSpawner_WorkingDirectory_Call) Return(_a0 string, _a1 error) *MockSessionSpawner_WorkingDirectory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSessionSpawner_WorkingDirectory_Call) RunAndReturn(run func(entity.SessionID) (string, error)) *MockSessionSpawner_WorkingDirectory_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockSessionSpawner) LiveChildCount(id entity.SessionID) (int, error) {
	ret := _m.Called(id)

	if len(ret) == 0 {
		panic("no return value specified for LiveChildCount")
	}

	if rf, ok := ret.Get(0).(func(entity.SessionID) (int, error)); ok {
		return rf(id)
	}

	var r0 int
	if v := ret.Get(0); v != nil {
		r0 = v.(int)
	}

	return r0, ret.Error(1)
}

// MockSessionSpawner_LiveChildCount_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LiveChildCount'.
type MockSessionSpawner_LiveChildCount_Call struct {
	*mock.Call
}

// LiveChildCount is a helper method to define mock.On call
func (_e *MockSessionSpawner_Expecter) LiveChildCount(id interface{}) *MockSessionSpawner_LiveChildCount_Call {
	return &MockSessionSpawner_LiveChildCount_Call{Call: _e.mock.On("LiveChildCount", id)}
}

func (_c *MockSessionSpawner_LiveChildCount_Call) Run(run func(id entity.SessionID)) *MockSessionSpawner_LiveChildCount_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(entity.SessionID))
	})
	return _c
}

func (_c *MockSessionSpawner_LiveChildCount_Call) Return(_a0 int, _a1 error) *MockSessionSpawner_LiveChildCount_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSessionSpawner_LiveChildCount_Call) RunAndReturn(run func(entity.SessionID) (int, error)) *MockSessionSpawner_LiveChildCount_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSessionSpawner creates a new instance of MockSessionSpawner. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSessionSpawner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionSpawner {
	m := &MockSessionSpawner{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
