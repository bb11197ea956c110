package mocks

import (
	"context"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockArchivedTabRepository is a mock type for the ArchivedTabRepository type
type MockArchivedTabRepository struct {
	mock.Mock
}

type MockArchivedTabRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockArchivedTabRepository) EXPECT() *MockArchivedTabRepository_Expecter {
	return &MockArchivedTabRepository_Expecter{mock: &_m.Mock}
}

// Add provides a mock function with given fields: ctx, tab
func (_m *MockArchivedTabRepository) Add(ctx context.Context, tab *entity.ArchivedTab) error {
	ret := _m.Called(ctx, tab)

	if len(ret) == 0 {
		panic("no return value specified for Add")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.ArchivedTab) error); ok {
		r0 = rf(ctx, tab)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockArchivedTabRepository_Add_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Add'
type MockArchivedTabRepository_Add_Call struct {
	*mock.Call
}

// Add is a helper method to define mock.On call
func (_e *MockArchivedTabRepository_Expecter) Add(ctx interface{}, tab interface{}) *MockArchivedTabRepository_Add_Call {
	return &MockArchivedTabRepository_Add_Call{Call: _e.mock.On("Add", ctx, tab)}
}

func (_c *MockArchivedTabRepository_Add_Call) Run(run func(ctx context.Context, tab *entity.ArchivedTab)) *MockArchivedTabRepository_Add_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.ArchivedTab))
	})
	return _c
}

func (_c *MockArchivedTabRepository_Add_Call) Return(_a0 error) *MockArchivedTabRepository_Add_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockArchivedTabRepository_Add_Call) RunAndReturn(run func(context.Context, *entity.ArchivedTab) error) *MockArchivedTabRepository_Add_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, limit
func (_m *MockArchivedTabRepository) List(ctx context.Context, limit int) ([]*entity.ArchivedTab, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []*entity.ArchivedTab
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]*entity.ArchivedTab, error)); ok {
		return rf(ctx, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []*entity.ArchivedTab); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.ArchivedTab)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockArchivedTabRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockArchivedTabRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
func (_e *MockArchivedTabRepository_Expecter) List(ctx interface{}, limit interface{}) *MockArchivedTabRepository_List_Call {
	return &MockArchivedTabRepository_List_Call{Call: _e.mock.On("List", ctx, limit)}
}

func (_c *MockArchivedTabRepository_List_Call) Run(run func(ctx context.Context, limit int)) *MockArchivedTabRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})
	return _c
}

func (_c *MockArchivedTabRepository_List_Call) Return(_a0 []*entity.ArchivedTab, _a1 error) *MockArchivedTabRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockArchivedTabRepository_List_Call) RunAndReturn(run func(context.Context, int) ([]*entity.ArchivedTab, error)) *MockArchivedTabRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteOlderThan provides a mock function with given fields: ctx, before
func (_m *MockArchivedTabRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	ret := _m.Called(ctx, before)

	if len(ret) == 0 {
		panic("no return value specified for DeleteOlderThan")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) (int64, error)); ok {
		return rf(ctx, before)
	}
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) int64); ok {
		r0 = rf(ctx, before)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, time.Time) error); ok {
		r1 = rf(ctx, before)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockArchivedTabRepository_DeleteOlderThan_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteOlderThan'
type MockArchivedTabRepository_DeleteOlderThan_Call struct {
	*mock.Call
}

// DeleteOlderThan is a helper method to define mock.On call
func (_e *MockArchivedTabRepository_Expecter) DeleteOlderThan(ctx interface{}, before interface{}) *MockArchivedTabRepository_DeleteOlderThan_Call {
	return &MockArchivedTabRepository_DeleteOlderThan_Call{Call: _e.mock.On("DeleteOlderThan", ctx, before)}
}

func (_c *MockArchivedTabRepository_DeleteOlderThan_Call) Run(run func(ctx context.Context, before time.Time)) *MockArchivedTabRepository_DeleteOlderThan_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(time.Time))
	})
	return _c
}

func (_c *MockArchivedTabRepository_DeleteOlderThan_Call) Return(_a0 int64, _a1 error) *MockArchivedTabRepository_DeleteOlderThan_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockArchivedTabRepository_DeleteOlderThan_Call) RunAndReturn(run func(context.Context, time.Time) (int64, error)) *MockArchivedTabRepository_DeleteOlderThan_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteAll provides a mock function with given fields: ctx
func (_m *MockArchivedTabRepository) DeleteAll(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for DeleteAll")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockArchivedTabRepository_DeleteAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteAll'
type MockArchivedTabRepository_DeleteAll_Call struct {
	*mock.Call
}

// DeleteAll is a helper method to define mock.On call
func (_e *MockArchivedTabRepository_Expecter) DeleteAll(ctx interface{}) *MockArchivedTabRepository_DeleteAll_Call {
	return &MockArchivedTabRepository_DeleteAll_Call{Call: _e.mock.On("DeleteAll", ctx)}
}

func (_c *MockArchivedTabRepository_DeleteAll_Call) Run(run func(ctx context.Context)) *MockArchivedTabRepository_DeleteAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockArchivedTabRepository_DeleteAll_Call) Return(_a0 error) *MockArchivedTabRepository_DeleteAll_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockArchivedTabRepository_DeleteAll_Call) RunAndReturn(run func(context.Context) error) *MockArchivedTabRepository_DeleteAll_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockArchivedTabRepository creates a new instance of MockArchivedTabRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockArchivedTabRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockArchivedTabRepository {
	m := &MockArchivedTabRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
