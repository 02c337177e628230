// Package mockstorage holds gomock doubles for the storage interfaces. They keep
// mockgen's layout so `go generate` can replace them.
package mockstorage

import (
	context "context"
	reflect "reflect"
	storage "tracker/pkg/storage"

	gomock "go.uber.org/mock/gomock"
)

// MockAllStorage is a mock of AllStorage interface.
type MockAllStorage struct {
	ctrl     *gomock.Controller
	recorder *MockAllStorageMockRecorder
	isgomock struct{}
}

// MockAllStorageMockRecorder is the mock recorder for MockAllStorage.
type MockAllStorageMockRecorder struct {
	mock *MockAllStorage
}

// NewMockAllStorage creates a new mock instance.
func NewMockAllStorage(ctrl *gomock.Controller) *MockAllStorage {
	mock := &MockAllStorage{ctrl: ctrl}
	mock.recorder = &MockAllStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAllStorage) EXPECT() *MockAllStorageMockRecorder {
	return m.recorder
}

// DeleteLocalitiesBySource mocks base method.
func (m *MockAllStorage) DeleteLocalitiesBySource(ctx context.Context, source storage.Source) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteLocalitiesBySource", ctx, source)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteLocalitiesBySource indicates an expected call of DeleteLocalitiesBySource.
func (mr *MockAllStorageMockRecorder) DeleteLocalitiesBySource(ctx, source any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteLocalitiesBySource", reflect.TypeOf((*MockAllStorage)(nil).DeleteLocalitiesBySource), ctx, source)
}

// LocalitiesByKeys mocks base method.
func (m *MockAllStorage) LocalitiesByKeys(ctx context.Context, keys ...string) (map[string]storage.LocalityRecord, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range keys {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "LocalitiesByKeys", varargs...)
	ret0, _ := ret[0].(map[string]storage.LocalityRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LocalitiesByKeys indicates an expected call of LocalitiesByKeys.
func (mr *MockAllStorageMockRecorder) LocalitiesByKeys(ctx any, keys ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, keys...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LocalitiesByKeys", reflect.TypeOf((*MockAllStorage)(nil).LocalitiesByKeys), varargs...)
}

// StoreLocalities mocks base method.
func (m *MockAllStorage) StoreLocalities(ctx context.Context, records ...storage.LocalityRecord) (int64, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range records {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreLocalities", varargs...)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreLocalities indicates an expected call of StoreLocalities.
func (mr *MockAllStorageMockRecorder) StoreLocalities(ctx any, records ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, records...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreLocalities", reflect.TypeOf((*MockAllStorage)(nil).StoreLocalities), varargs...)
}

// MockLocalityStorage is a mock of LocalityStorage interface.
type MockLocalityStorage struct {
	ctrl     *gomock.Controller
	recorder *MockLocalityStorageMockRecorder
	isgomock struct{}
}

// MockLocalityStorageMockRecorder is the mock recorder for MockLocalityStorage.
type MockLocalityStorageMockRecorder struct {
	mock *MockLocalityStorage
}

// NewMockLocalityStorage creates a new mock instance.
func NewMockLocalityStorage(ctrl *gomock.Controller) *MockLocalityStorage {
	mock := &MockLocalityStorage{ctrl: ctrl}
	mock.recorder = &MockLocalityStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLocalityStorage) EXPECT() *MockLocalityStorageMockRecorder {
	return m.recorder
}

// DeleteLocalitiesBySource mocks base method.
func (m *MockLocalityStorage) DeleteLocalitiesBySource(ctx context.Context, source storage.Source) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteLocalitiesBySource", ctx, source)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteLocalitiesBySource indicates an expected call of DeleteLocalitiesBySource.
func (mr *MockLocalityStorageMockRecorder) DeleteLocalitiesBySource(ctx, source any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteLocalitiesBySource", reflect.TypeOf((*MockLocalityStorage)(nil).DeleteLocalitiesBySource), ctx, source)
}

// LocalitiesByKeys mocks base method.
func (m *MockLocalityStorage) LocalitiesByKeys(ctx context.Context, keys ...string) (map[string]storage.LocalityRecord, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range keys {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "LocalitiesByKeys", varargs...)
	ret0, _ := ret[0].(map[string]storage.LocalityRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LocalitiesByKeys indicates an expected call of LocalitiesByKeys.
func (mr *MockLocalityStorageMockRecorder) LocalitiesByKeys(ctx any, keys ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, keys...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LocalitiesByKeys", reflect.TypeOf((*MockLocalityStorage)(nil).LocalitiesByKeys), varargs...)
}

// StoreLocalities mocks base method.
func (m *MockLocalityStorage) StoreLocalities(ctx context.Context, records ...storage.LocalityRecord) (int64, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range records {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreLocalities", varargs...)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreLocalities indicates an expected call of StoreLocalities.
func (mr *MockLocalityStorageMockRecorder) StoreLocalities(ctx any, records ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, records...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreLocalities", reflect.TypeOf((*MockLocalityStorage)(nil).StoreLocalities), varargs...)
}

// MockStorage is a mock of Storage interface.
type MockStorage struct {
	ctrl     *gomock.Controller
	recorder *MockStorageMockRecorder
	isgomock struct{}
}

// MockStorageMockRecorder is the mock recorder for MockStorage.
type MockStorageMockRecorder struct {
	mock *MockStorage
}

// NewMockStorage creates a new mock instance.
func NewMockStorage(ctrl *gomock.Controller) *MockStorage {
	mock := &MockStorage{ctrl: ctrl}
	mock.recorder = &MockStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorage) EXPECT() *MockStorageMockRecorder {
	return m.recorder
}

// Begin mocks base method.
func (m *MockStorage) Begin(ctx context.Context) (storage.TxStorage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin", ctx)
	ret0, _ := ret[0].(storage.TxStorage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Begin indicates an expected call of Begin.
func (mr *MockStorageMockRecorder) Begin(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockStorage)(nil).Begin), ctx)
}

// Close mocks base method.
func (m *MockStorage) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockStorageMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockStorage)(nil).Close))
}

// DeleteLocalitiesBySource mocks base method.
func (m *MockStorage) DeleteLocalitiesBySource(ctx context.Context, source storage.Source) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteLocalitiesBySource", ctx, source)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteLocalitiesBySource indicates an expected call of DeleteLocalitiesBySource.
func (mr *MockStorageMockRecorder) DeleteLocalitiesBySource(ctx, source any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteLocalitiesBySource", reflect.TypeOf((*MockStorage)(nil).DeleteLocalitiesBySource), ctx, source)
}

// LocalitiesByKeys mocks base method.
func (m *MockStorage) LocalitiesByKeys(ctx context.Context, keys ...string) (map[string]storage.LocalityRecord, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range keys {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "LocalitiesByKeys", varargs...)
	ret0, _ := ret[0].(map[string]storage.LocalityRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LocalitiesByKeys indicates an expected call of LocalitiesByKeys.
func (mr *MockStorageMockRecorder) LocalitiesByKeys(ctx any, keys ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, keys...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LocalitiesByKeys", reflect.TypeOf((*MockStorage)(nil).LocalitiesByKeys), varargs...)
}

// StoreLocalities mocks base method.
func (m *MockStorage) StoreLocalities(ctx context.Context, records ...storage.LocalityRecord) (int64, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range records {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreLocalities", varargs...)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreLocalities indicates an expected call of StoreLocalities.
func (mr *MockStorageMockRecorder) StoreLocalities(ctx any, records ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, records...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreLocalities", reflect.TypeOf((*MockStorage)(nil).StoreLocalities), varargs...)
}

// WithTx mocks base method.
func (m *MockStorage) WithTx(ctx context.Context, cb func(storage.AllStorage) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", ctx, cb)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockStorageMockRecorder) WithTx(ctx, cb any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockStorage)(nil).WithTx), ctx, cb)
}

// MockTxStorage is a mock of TxStorage interface.
type MockTxStorage struct {
	ctrl     *gomock.Controller
	recorder *MockTxStorageMockRecorder
	isgomock struct{}
}

// MockTxStorageMockRecorder is the mock recorder for MockTxStorage.
type MockTxStorageMockRecorder struct {
	mock *MockTxStorage
}

// NewMockTxStorage creates a new mock instance.
func NewMockTxStorage(ctrl *gomock.Controller) *MockTxStorage {
	mock := &MockTxStorage{ctrl: ctrl}
	mock.recorder = &MockTxStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxStorage) EXPECT() *MockTxStorageMockRecorder {
	return m.recorder
}

// Commit mocks base method.
func (m *MockTxStorage) Commit() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Commit")
	ret0, _ := ret[0].(error)
	return ret0
}

// Commit indicates an expected call of Commit.
func (mr *MockTxStorageMockRecorder) Commit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockTxStorage)(nil).Commit))
}

// DeleteLocalitiesBySource mocks base method.
func (m *MockTxStorage) DeleteLocalitiesBySource(ctx context.Context, source storage.Source) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteLocalitiesBySource", ctx, source)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteLocalitiesBySource indicates an expected call of DeleteLocalitiesBySource.
func (mr *MockTxStorageMockRecorder) DeleteLocalitiesBySource(ctx, source any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteLocalitiesBySource", reflect.TypeOf((*MockTxStorage)(nil).DeleteLocalitiesBySource), ctx, source)
}

// LocalitiesByKeys mocks base method.
func (m *MockTxStorage) LocalitiesByKeys(ctx context.Context, keys ...string) (map[string]storage.LocalityRecord, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range keys {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "LocalitiesByKeys", varargs...)
	ret0, _ := ret[0].(map[string]storage.LocalityRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LocalitiesByKeys indicates an expected call of LocalitiesByKeys.
func (mr *MockTxStorageMockRecorder) LocalitiesByKeys(ctx any, keys ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, keys...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LocalitiesByKeys", reflect.TypeOf((*MockTxStorage)(nil).LocalitiesByKeys), varargs...)
}

// Rollback mocks base method.
func (m *MockTxStorage) Rollback() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rollback")
	ret0, _ := ret[0].(error)
	return ret0
}

// Rollback indicates an expected call of Rollback.
func (mr *MockTxStorageMockRecorder) Rollback() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rollback", reflect.TypeOf((*MockTxStorage)(nil).Rollback))
}

// StoreLocalities mocks base method.
func (m *MockTxStorage) StoreLocalities(ctx context.Context, records ...storage.LocalityRecord) (int64, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range records {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreLocalities", varargs...)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreLocalities indicates an expected call of StoreLocalities.
func (mr *MockTxStorageMockRecorder) StoreLocalities(ctx any, records ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, records...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreLocalities", reflect.TypeOf((*MockTxStorage)(nil).StoreLocalities), varargs...)
}
