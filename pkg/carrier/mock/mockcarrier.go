// Package mockcarrier holds gomock doubles for carrier.Normalizer. They keep
// mockgen's layout so `go generate` can replace them.
package mockcarrier

import (
	context "context"
	reflect "reflect"
	carrier "tracker/pkg/carrier"
	domain "tracker/pkg/domain"

	gomock "go.uber.org/mock/gomock"
)

// MockNormalizer is a mock of Normalizer interface.
type MockNormalizer struct {
	ctrl     *gomock.Controller
	recorder *MockNormalizerMockRecorder
	isgomock struct{}
}

// MockNormalizerMockRecorder is the mock recorder for MockNormalizer.
type MockNormalizerMockRecorder struct {
	mock *MockNormalizer
}

// NewMockNormalizer creates a new mock instance.
func NewMockNormalizer(ctrl *gomock.Controller) *MockNormalizer {
	mock := &MockNormalizer{ctrl: ctrl}
	mock.recorder = &MockNormalizerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNormalizer) EXPECT() *MockNormalizerMockRecorder {
	return m.recorder
}

// Carrier mocks base method.
func (m *MockNormalizer) Carrier() domain.Carrier {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Carrier")
	ret0, _ := ret[0].(domain.Carrier)
	return ret0
}

// Carrier indicates an expected call of Carrier.
func (mr *MockNormalizerMockRecorder) Carrier() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Carrier", reflect.TypeOf((*MockNormalizer)(nil).Carrier))
}

// Provider mocks base method.
func (m *MockNormalizer) Provider() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Provider")
	ret0, _ := ret[0].(string)
	return ret0
}

// Provider indicates an expected call of Provider.
func (mr *MockNormalizerMockRecorder) Provider() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Provider", reflect.TypeOf((*MockNormalizer)(nil).Provider))
}

// Track mocks base method.
func (m *MockNormalizer) Track(ctx context.Context, trackingNumber string, opts carrier.Options) (*domain.TrackResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Track", ctx, trackingNumber, opts)
	ret0, _ := ret[0].(*domain.TrackResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Track indicates an expected call of Track.
func (mr *MockNormalizerMockRecorder) Track(ctx, trackingNumber, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Track", reflect.TypeOf((*MockNormalizer)(nil).Track), ctx, trackingNumber, opts)
}
