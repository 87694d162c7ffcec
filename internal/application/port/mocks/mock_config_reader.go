package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockConfigReader is a mock implementation of port.ConfigReader.
type MockConfigReader struct {
	mock.Mock
}

type MockConfigReader_Expecter struct {
	mock *mock.Mock
}

func (_m *MockConfigReader) EXPECT() *MockConfigReader_Expecter {
	return &MockConfigReader_Expecter{mock: &_m.Mock}
}

func (_m *MockConfigReader) GetString(section string, key string) string {
	ret := _m.Called(section, key)

	if len(ret) == 0 {
		panic("no return value specified for GetString")
	}

	if rf, ok := ret.Get(0).(func(string, string) string); ok {
		return rf(section, key)
	}

	var r0 string
	if v := ret.Get(0); v != nil {
		r0 = v.(string)
	}

	return r0
}

// MockConfigReader_GetString_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetString'.
type MockConfigReader_GetString_Call struct {
	*mock.Call
}

// GetString is a helper method to define mock.On call
func (_e *MockConfigReader_Expecter) GetString(section interface{}, key interface{}) *MockConfigReader_GetString_Call {
	return &MockConfigReader_GetString_Call{Call: _e.mock.On("GetString", section, key)}
}

func (_c *MockConfigReader_GetString_Call) Run(run func(section string, key string)) *MockConfigReader_GetString_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string))
	})
	return _c
}

func (_c *MockConfigReader_GetString_Call) Return(_a0 string) *MockConfigReader_GetString_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockConfigReader_GetString_Call) RunAndReturn(run func(string, string) string) *MockConfigReader_GetString_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockConfigReader) GetBool(section string, key string) bool {
	ret := _m.Called(section, key)

	if len(ret) == 0 {
		panic("no return value specified for GetBool")
	}

	if rf, ok := ret.Get(0).(func(string, string) bool); ok {
		return rf(section, key)
	}

	var r0 bool
	if v := ret.Get(0); v != nil {
		r0 = v.(bool)
	}

	return r0
}

// MockConfigReader_GetBool_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBool'.
type MockConfigReader_GetBool_Call struct {
	*mock.Call
}

// GetBool is a helper method to define mock.On call
func (_e *MockConfigReader_Expecter) GetBool(section interface{}, key interface{}) *MockConfigReader_GetBool_Call {
	return &MockConfigReader_GetBool_Call{Call: _e.mock.On("GetBool", section, key)}
}

func (_c *MockConfigReader_GetBool_Call) Run(run func(section string, key string)) *MockConfigReader_GetBool_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string))
	})
	return _c
}

func (_c *MockConfigReader_GetBool_Call) Return(_a0 bool) *MockConfigReader_GetBool_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockConfigReader_GetBool_Call) RunAndReturn(run func(string, string) bool) *MockConfigReader_GetBool_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockConfigReader creates a new instance of MockConfigReader. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockConfigReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockConfigReader {
	m := &MockConfigReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
