package mocks

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockHistoryRepository is a mock type for the HistoryRepository type
type MockHistoryRepository struct {
	mock.Mock
}

type MockHistoryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHistoryRepository) EXPECT() *MockHistoryRepository_Expecter {
	return &MockHistoryRepository_Expecter{mock: &_m.Mock}
}

// Save provides a mock function with given fields: ctx, entry
func (_m *MockHistoryRepository) Save(ctx context.Context, entry *entity.HistoryEntry) error {
	ret := _m.Called(ctx, entry)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.HistoryEntry) error); ok {
		r0 = rf(ctx, entry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockHistoryRepository_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'
type MockHistoryRepository_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
func (_e *MockHistoryRepository_Expecter) Save(ctx interface{}, entry interface{}) *MockHistoryRepository_Save_Call {
	return &MockHistoryRepository_Save_Call{Call: _e.mock.On("Save", ctx, entry)}
}

func (_c *MockHistoryRepository_Save_Call) Run(run func(ctx context.Context, entry *entity.HistoryEntry)) *MockHistoryRepository_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.HistoryEntry))
	})
	return _c
}

func (_c *MockHistoryRepository_Save_Call) Return(_a0 error) *MockHistoryRepository_Save_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockHistoryRepository_Save_Call) RunAndReturn(run func(context.Context, *entity.HistoryEntry) error) *MockHistoryRepository_Save_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateTitle provides a mock function with given fields: ctx, url, title
func (_m *MockHistoryRepository) UpdateTitle(ctx context.Context, url string, title string) error {
	ret := _m.Called(ctx, url, title)

	if len(ret) == 0 {
		panic("no return value specified for UpdateTitle")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, url, title)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockHistoryRepository_UpdateTitle_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateTitle'
type MockHistoryRepository_UpdateTitle_Call struct {
	*mock.Call
}

// UpdateTitle is a helper method to define mock.On call
func (_e *MockHistoryRepository_Expecter) UpdateTitle(ctx interface{}, url interface{}, title interface{}) *MockHistoryRepository_UpdateTitle_Call {
	return &MockHistoryRepository_UpdateTitle_Call{Call: _e.mock.On("UpdateTitle", ctx, url, title)}
}

func (_c *MockHistoryRepository_UpdateTitle_Call) Run(run func(ctx context.Context, url string, title string)) *MockHistoryRepository_UpdateTitle_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockHistoryRepository_UpdateTitle_Call) Return(_a0 error) *MockHistoryRepository_UpdateTitle_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockHistoryRepository_UpdateTitle_Call) RunAndReturn(run func(context.Context, string, string) error) *MockHistoryRepository_UpdateTitle_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateFavicon provides a mock function with given fields: ctx, url, faviconURL
func (_m *MockHistoryRepository) UpdateFavicon(ctx context.Context, url string, faviconURL string) error {
	ret := _m.Called(ctx, url, faviconURL)

	if len(ret) == 0 {
		panic("no return value specified for UpdateFavicon")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, url, faviconURL)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockHistoryRepository_UpdateFavicon_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateFavicon'
type MockHistoryRepository_UpdateFavicon_Call struct {
	*mock.Call
}

// UpdateFavicon is a helper method to define mock.On call
func (_e *MockHistoryRepository_Expecter) UpdateFavicon(ctx interface{}, url interface{}, faviconURL interface{}) *MockHistoryRepository_UpdateFavicon_Call {
	return &MockHistoryRepository_UpdateFavicon_Call{Call: _e.mock.On("UpdateFavicon", ctx, url, faviconURL)}
}

func (_c *MockHistoryRepository_UpdateFavicon_Call) Run(run func(ctx context.Context, url string, faviconURL string)) *MockHistoryRepository_UpdateFavicon_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockHistoryRepository_UpdateFavicon_Call) Return(_a0 error) *MockHistoryRepository_UpdateFavicon_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockHistoryRepository_UpdateFavicon_Call) RunAndReturn(run func(context.Context, string, string) error) *MockHistoryRepository_UpdateFavicon_Call {
	_c.Call.Return(run)
	return _c
}

// FindByURL provides a mock function with given fields: ctx, url
func (_m *MockHistoryRepository) FindByURL(ctx context.Context, url string) (*entity.HistoryEntry, error) {
	ret := _m.Called(ctx, url)

	if len(ret) == 0 {
		panic("no return value specified for FindByURL")
	}

	var r0 *entity.HistoryEntry
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.HistoryEntry, error)); ok {
		return rf(ctx, url)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.HistoryEntry); ok {
		r0 = rf(ctx, url)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.HistoryEntry)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, url)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHistoryRepository_FindByURL_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByURL'
type MockHistoryRepository_FindByURL_Call struct {
	*mock.Call
}

// FindByURL is a helper method to define mock.On call
func (_e *MockHistoryRepository_Expecter) FindByURL(ctx interface{}, url interface{}) *MockHistoryRepository_FindByURL_Call {
	return &MockHistoryRepository_FindByURL_Call{Call: _e.mock.On("FindByURL", ctx, url)}
}

func (_c *MockHistoryRepository_FindByURL_Call) Run(run func(ctx context.Context, url string)) *MockHistoryRepository_FindByURL_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockHistoryRepository_FindByURL_Call) Return(_a0 *entity.HistoryEntry, _a1 error) *MockHistoryRepository_FindByURL_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHistoryRepository_FindByURL_Call) RunAndReturn(run func(context.Context, string) (*entity.HistoryEntry, error)) *MockHistoryRepository_FindByURL_Call {
	_c.Call.Return(run)
	return _c
}

// GetRecent provides a mock function with given fields: ctx, limit, offset
func (_m *MockHistoryRepository) GetRecent(ctx context.Context, limit int, offset int) ([]*entity.HistoryEntry, error) {
	ret := _m.Called(ctx, limit, offset)

	if len(ret) == 0 {
		panic("no return value specified for GetRecent")
	}

	var r0 []*entity.HistoryEntry
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) ([]*entity.HistoryEntry, error)); ok {
		return rf(ctx, limit, offset)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []*entity.HistoryEntry); ok {
		r0 = rf(ctx, limit, offset)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.HistoryEntry)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, limit, offset)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHistoryRepository_GetRecent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetRecent'
type MockHistoryRepository_GetRecent_Call struct {
	*mock.Call
}

// GetRecent is a helper method to define mock.On call
func (_e *MockHistoryRepository_Expecter) GetRecent(ctx interface{}, limit interface{}, offset interface{}) *MockHistoryRepository_GetRecent_Call {
	return &MockHistoryRepository_GetRecent_Call{Call: _e.mock.On("GetRecent", ctx, limit, offset)}
}

func (_c *MockHistoryRepository_GetRecent_Call) Run(run func(ctx context.Context, limit int, offset int)) *MockHistoryRepository_GetRecent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int), args[2].(int))
	})
	return _c
}

func (_c *MockHistoryRepository_GetRecent_Call) Return(_a0 []*entity.HistoryEntry, _a1 error) *MockHistoryRepository_GetRecent_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHistoryRepository_GetRecent_Call) RunAndReturn(run func(context.Context, int, int) ([]*entity.HistoryEntry, error)) *MockHistoryRepository_GetRecent_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockHistoryRepository creates a new instance of MockHistoryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockHistoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHistoryRepository {
	m := &MockHistoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
