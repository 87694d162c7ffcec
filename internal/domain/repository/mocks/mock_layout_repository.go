package mocks

import (
	"context"

	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockLayoutRepository is a mock implementation of repository.LayoutRepository.
type MockLayoutRepository struct {
	mock.Mock
}

type MockLayoutRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLayoutRepository) EXPECT() *MockLayoutRepository_Expecter {
	return &MockLayoutRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockLayoutRepository) Save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	ret := _m.Called(ctx, snap)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.LayoutSnapshot) error); ok {
		return rf(ctx, snap)
	}

	return ret.Error(0)
}

// MockLayoutRepository_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'.
type MockLayoutRepository_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
func (_e *MockLayoutRepository_Expecter) Save(ctx interface{}, snap interface{}) *MockLayoutRepository_Save_Call {
	return &MockLayoutRepository_Save_Call{Call: _e.mock.On("Save", ctx, snap)}
}

func (_c *MockLayoutRepository_Save_Call) Run(run func(ctx context.Context, snap *entity.LayoutSnapshot)) *MockLayoutRepository_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.LayoutSnapshot))
	})
	return _c
}

func (_c *MockLayoutRepository_Save_Call) Return(_a0 error) *MockLayoutRepository_Save_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockLayoutRepository_Save_Call) RunAndReturn(run func(context.Context, *entity.LayoutSnapshot) error) *MockLayoutRepository_Save_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockLayoutRepository) FindByName(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for FindByName")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.LayoutSnapshot, error)); ok {
		return rf(ctx, name)
	}

	var r0 *entity.LayoutSnapshot
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.LayoutSnapshot)
	}

	return r0, ret.Error(1)
}

// MockLayoutRepository_FindByName_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByName'.
type MockLayoutRepository_FindByName_Call struct {
	*mock.Call
}

// FindByName is a helper method to define mock.On call
func (_e *MockLayoutRepository_Expecter) FindByName(ctx interface{}, name interface{}) *MockLayoutRepository_FindByName_Call {
	return &MockLayoutRepository_FindByName_Call{Call: _e.mock.On("FindByName", ctx, name)}
}

func (_c *MockLayoutRepository_FindByName_Call) Run(run func(ctx context.Context, name string)) *MockLayoutRepository_FindByName_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockLayoutRepository_FindByName_Call) Return(_a0 *entity.LayoutSnapshot, _a1 error) *MockLayoutRepository_FindByName_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLayoutRepository_FindByName_Call) RunAndReturn(run func(context.Context, string) (*entity.LayoutSnapshot, error)) *MockLayoutRepository_FindByName_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockLayoutRepository) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.LayoutSnapshot, error)); ok {
		return rf(ctx)
	}

	var r0 []*entity.LayoutSnapshot
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entity.LayoutSnapshot)
	}

	return r0, ret.Error(1)
}

// MockLayoutRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'.
type MockLayoutRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
func (_e *MockLayoutRepository_Expecter) List(ctx interface{}) *MockLayoutRepository_List_Call {
	return &MockLayoutRepository_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockLayoutRepository_List_Call) Run(run func(ctx context.Context)) *MockLayoutRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockLayoutRepository_List_Call) Return(_a0 []*entity.LayoutSnapshot, _a1 error) *MockLayoutRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLayoutRepository_List_Call) RunAndReturn(run func(context.Context) ([]*entity.LayoutSnapshot, error)) *MockLayoutRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockLayoutRepository) Delete(ctx context.Context, name string) error {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, name)
	}

	return ret.Error(0)
}

// MockLayoutRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'.
type MockLayoutRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
func (_e *MockLayoutRepository_Expecter) Delete(ctx interface{}, name interface{}) *MockLayoutRepository_Delete_Call {
	return &MockLayoutRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, name)}
}

func (_c *MockLayoutRepository_Delete_Call) Run(run func(ctx context.Context, name string)) *MockLayoutRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockLayoutRepository_Delete_Call) Return(_a0 error) *MockLayoutRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockLayoutRepository_Delete_Call) RunAndReturn(run func(context.Context, string) error) *MockLayoutRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockLayoutRepository creates a new instance of MockLayoutRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockLayoutRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLayoutRepository {
	m := &MockLayoutRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
