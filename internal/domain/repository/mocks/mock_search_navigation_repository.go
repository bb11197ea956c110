package mocks

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockSearchNavigationRepository is a mock type for the SearchNavigationRepository type
type MockSearchNavigationRepository struct {
	mock.Mock
}

type MockSearchNavigationRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSearchNavigationRepository) EXPECT() *MockSearchNavigationRepository_Expecter {
	return &MockSearchNavigationRepository_Expecter{mock: &_m.Mock}
}

// Save provides a mock function with given fields: ctx, nav
func (_m *MockSearchNavigationRepository) Save(ctx context.Context, nav *entity.SearchNavigation) error {
	ret := _m.Called(ctx, nav)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.SearchNavigation) error); ok {
		r0 = rf(ctx, nav)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSearchNavigationRepository_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'
type MockSearchNavigationRepository_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
func (_e *MockSearchNavigationRepository_Expecter) Save(ctx interface{}, nav interface{}) *MockSearchNavigationRepository_Save_Call {
	return &MockSearchNavigationRepository_Save_Call{Call: _e.mock.On("Save", ctx, nav)}
}

func (_c *MockSearchNavigationRepository_Save_Call) Run(run func(ctx context.Context, nav *entity.SearchNavigation)) *MockSearchNavigationRepository_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.SearchNavigation))
	})
	return _c
}

func (_c *MockSearchNavigationRepository_Save_Call) Return(_a0 error) *MockSearchNavigationRepository_Save_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSearchNavigationRepository_Save_Call) RunAndReturn(run func(context.Context, *entity.SearchNavigation) error) *MockSearchNavigationRepository_Save_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, tabID, index
func (_m *MockSearchNavigationRepository) Delete(ctx context.Context, tabID entity.TabID, index int) error {
	ret := _m.Called(ctx, tabID, index)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.TabID, int) error); ok {
		r0 = rf(ctx, tabID, index)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSearchNavigationRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockSearchNavigationRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
func (_e *MockSearchNavigationRepository_Expecter) Delete(ctx interface{}, tabID interface{}, index interface{}) *MockSearchNavigationRepository_Delete_Call {
	return &MockSearchNavigationRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, tabID, index)}
}

func (_c *MockSearchNavigationRepository_Delete_Call) Run(run func(ctx context.Context, tabID entity.TabID, index int)) *MockSearchNavigationRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.TabID), args[2].(int))
	})
	return _c
}

func (_c *MockSearchNavigationRepository_Delete_Call) Return(_a0 error) *MockSearchNavigationRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSearchNavigationRepository_Delete_Call) RunAndReturn(run func(context.Context, entity.TabID, int) error) *MockSearchNavigationRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteByTab provides a mock function with given fields: ctx, tabID
func (_m *MockSearchNavigationRepository) DeleteByTab(ctx context.Context, tabID entity.TabID) error {
	ret := _m.Called(ctx, tabID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteByTab")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.TabID) error); ok {
		r0 = rf(ctx, tabID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSearchNavigationRepository_DeleteByTab_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteByTab'
type MockSearchNavigationRepository_DeleteByTab_Call struct {
	*mock.Call
}

// DeleteByTab is a helper method to define mock.On call
func (_e *MockSearchNavigationRepository_Expecter) DeleteByTab(ctx interface{}, tabID interface{}) *MockSearchNavigationRepository_DeleteByTab_Call {
	return &MockSearchNavigationRepository_DeleteByTab_Call{Call: _e.mock.On("DeleteByTab", ctx, tabID)}
}

func (_c *MockSearchNavigationRepository_DeleteByTab_Call) Run(run func(ctx context.Context, tabID entity.TabID)) *MockSearchNavigationRepository_DeleteByTab_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.TabID))
	})
	return _c
}

func (_c *MockSearchNavigationRepository_DeleteByTab_Call) Return(_a0 error) *MockSearchNavigationRepository_DeleteByTab_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSearchNavigationRepository_DeleteByTab_Call) RunAndReturn(run func(context.Context, entity.TabID) error) *MockSearchNavigationRepository_DeleteByTab_Call {
	_c.Call.Return(run)
	return _c
}

// ListAll provides a mock function with given fields: ctx
func (_m *MockSearchNavigationRepository) ListAll(ctx context.Context) ([]*entity.SearchNavigation, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListAll")
	}

	var r0 []*entity.SearchNavigation
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.SearchNavigation, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.SearchNavigation); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.SearchNavigation)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockSearchNavigationRepository_ListAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListAll'
type MockSearchNavigationRepository_ListAll_Call struct {
	*mock.Call
}

// ListAll is a helper method to define mock.On call
func (_e *MockSearchNavigationRepository_Expecter) ListAll(ctx interface{}) *MockSearchNavigationRepository_ListAll_Call {
	return &MockSearchNavigationRepository_ListAll_Call{Call: _e.mock.On("ListAll", ctx)}
}

func (_c *MockSearchNavigationRepository_ListAll_Call) Run(run func(ctx context.Context)) *MockSearchNavigationRepository_ListAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockSearchNavigationRepository_ListAll_Call) Return(_a0 []*entity.SearchNavigation, _a1 error) *MockSearchNavigationRepository_ListAll_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSearchNavigationRepository_ListAll_Call) RunAndReturn(run func(context.Context) ([]*entity.SearchNavigation, error)) *MockSearchNavigationRepository_ListAll_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteByTabs provides a mock function with given fields: ctx, tabIDs
func (_m *MockSearchNavigationRepository) DeleteByTabs(ctx context.Context, tabIDs []entity.TabID) error {
	ret := _m.Called(ctx, tabIDs)

	if len(ret) == 0 {
		panic("no return value specified for DeleteByTabs")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []entity.TabID) error); ok {
		r0 = rf(ctx, tabIDs)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSearchNavigationRepository_DeleteByTabs_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteByTabs'
type MockSearchNavigationRepository_DeleteByTabs_Call struct {
	*mock.Call
}

// DeleteByTabs is a helper method to define mock.On call
func (_e *MockSearchNavigationRepository_Expecter) DeleteByTabs(ctx interface{}, tabIDs interface{}) *MockSearchNavigationRepository_DeleteByTabs_Call {
	return &MockSearchNavigationRepository_DeleteByTabs_Call{Call: _e.mock.On("DeleteByTabs", ctx, tabIDs)}
}

func (_c *MockSearchNavigationRepository_DeleteByTabs_Call) Run(run func(ctx context.Context, tabIDs []entity.TabID)) *MockSearchNavigationRepository_DeleteByTabs_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]entity.TabID))
	})
	return _c
}

func (_c *MockSearchNavigationRepository_DeleteByTabs_Call) Return(_a0 error) *MockSearchNavigationRepository_DeleteByTabs_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSearchNavigationRepository_DeleteByTabs_Call) RunAndReturn(run func(context.Context, []entity.TabID) error) *MockSearchNavigationRepository_DeleteByTabs_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSearchNavigationRepository creates a new instance of MockSearchNavigationRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSearchNavigationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSearchNavigationRepository {
	m := &MockSearchNavigationRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
