package mocks

import (
	"context"
	"image"

	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockScreenCapturer is a mock implementation of port.ScreenCapturer.
type MockScreenCapturer struct {
	mock.Mock
}

type MockScreenCapturer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockScreenCapturer) EXPECT() *MockScreenCapturer_Expecter {
	return &MockScreenCapturer_Expecter{mock: &_m.Mock}
}

func (_m *MockScreenCapturer) CaptureVisiblePixels(ctx context.Context, area entity.Rect) (image.Image, error) {
	ret := _m.Called(ctx, area)

	if len(ret) == 0 {
		panic("no return value specified for CaptureVisiblePixels")
	}

	if rf, ok := ret.Get(0).(func(context.Context, entity.Rect) (image.Image, error)); ok {
		return rf(ctx, area)
	}

	var r0 image.Image
	if v := ret.Get(0); v != nil {
		r0 = v.(image.Image)
	}

	return r0, ret.Error(1)
}

// MockScreenCapturer_CaptureVisiblePixels_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CaptureVisiblePixels'.
type MockScreenCapturer_CaptureVisiblePixels_Call struct {
	*mock.Call
}

// CaptureVisiblePixels is a helper method to define mock.On call
func (_e *MockScreenCapturer_Expecter) CaptureVisiblePixels(ctx interface{}, area interface{}) *MockScreenCapturer_CaptureVisiblePixels_Call {
	return &MockScreenCapturer_CaptureVisiblePixels_Call{Call: _e.mock.On("CaptureVisiblePixels", ctx, area)}
}

func (_c *MockScreenCapturer_CaptureVisiblePixels_Call) Run(run func(ctx context.Context, area entity.Rect)) *MockScreenCapturer_CaptureVisiblePixels_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Rect))
	})
	return _c
}

func (_c *MockScreenCapturer_CaptureVisiblePixels_Call) Return(_a0 image.Image, _a1 error) *MockScreenCapturer_CaptureVisiblePixels_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockScreenCapturer_CaptureVisiblePixels_Call) RunAndReturn(run func(context.Context, entity.Rect) (image.Image, error)) *MockScreenCapturer_CaptureVisiblePixels_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockScreenCapturer creates a new instance of MockScreenCapturer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockScreenCapturer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockScreenCapturer {
	m := &MockScreenCapturer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
