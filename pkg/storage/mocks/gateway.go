// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rmedeiros/mediastore/pkg/storage"
)

// MockGateway is a mock implementation of the storage.Gateway interface
type MockGateway struct {
	mock.Mock
}

// Upload provides a mock function with given fields: ctx, keys
func (m *MockGateway) Upload(ctx context.Context, keys ...string) ([]storage.Result, error) {
	args := make([]interface{}, 0, len(keys)+1)
	args = append(args, ctx)
	for _, k := range keys {
		args = append(args, k)
	}
	ret := m.Called(args...)

	var r0 []storage.Result
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]storage.Result)
	}

	return r0, ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, keys
func (m *MockGateway) Delete(ctx context.Context, keys ...string) ([]storage.Result, error) {
	args := make([]interface{}, 0, len(keys)+1)
	args = append(args, ctx)
	for _, k := range keys {
		args = append(args, k)
	}
	ret := m.Called(args...)

	var r0 []storage.Result
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]storage.Result)
	}

	return r0, ret.Error(1)
}

// PresignedURL provides a mock function with given fields: ctx, key
func (m *MockGateway) PresignedURL(ctx context.Context, key string) (string, error) {
	ret := m.Called(ctx, key)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0, ret.Error(1)
}

// Close provides a mock function with given fields:
func (m *MockGateway) Close() error {
	ret := m.Called()

	return ret.Error(0)
}

// NewMockGateway creates a new instance of MockGateway
func NewMockGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGateway {
	mock_1 := &MockGateway{}
	mock_1.Mock.Test(t)

	t.Cleanup(func() { mock_1.AssertExpectations(t) })

	return mock_1
}
