package mocks

import (
	"image"

	"github.com/stretchr/testify/mock"
)

// MockBitmapScaler is a mock implementation of port.BitmapScaler.
type MockBitmapScaler struct {
	mock.Mock
}

type MockBitmapScaler_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBitmapScaler) EXPECT() *MockBitmapScaler_Expecter {
	return &MockBitmapScaler_Expecter{mock: &_m.Mock}
}

func (_m *MockBitmapScaler) ScaleBitmap(src image.Image, targetHeight int) image.Image {
	ret := _m.Called(src, targetHeight)

	if len(ret) == 0 {
		panic("no return value specified for ScaleBitmap")
	}

	if rf, ok := ret.Get(0).(func(image.Image, int) image.Image); ok {
		return rf(src, targetHeight)
	}

	var r0 image.Image
	if v := ret.Get(0); v != nil {
		r0 = v.(image.Image)
	}

	return r0
}

// MockBitmapScaler_ScaleBitmap_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ScaleBitmap'.
type MockBitmapScaler_ScaleBitmap_Call struct {
	*mock.Call
}

// ScaleBitmap is a helper method to define mock.On call
func (_e *MockBitmapScaler_Expecter) ScaleBitmap(src interface{}, targetHeight interface{}) *MockBitmapScaler_ScaleBitmap_Call {
	return &MockBitmapScaler_ScaleBitmap_Call{Call: _e.mock.On("ScaleBitmap", src, targetHeight)}
}

func (_c *MockBitmapScaler_ScaleBitmap_Call) Run(run func(src image.Image, targetHeight int)) *MockBitmapScaler_ScaleBitmap_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(image.Image), args[1].(int))
	})
	return _c
}

func (_c *MockBitmapScaler_ScaleBitmap_Call) Return(_a0 image.Image) *MockBitmapScaler_ScaleBitmap_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBitmapScaler_ScaleBitmap_Call) RunAndReturn(run func(image.Image, int) image.Image) *MockBitmapScaler_ScaleBitmap_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockBitmapScaler creates a new instance of MockBitmapScaler. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBitmapScaler(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBitmapScaler {
	m := &MockBitmapScaler{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
