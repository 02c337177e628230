// Package mocktracker holds gomock doubles for tracker.Tracker. They keep
// mockgen's layout so `go generate` can replace them.
package mocktracker

import (
	context "context"
	reflect "reflect"
	tracker "tracker/internal/tracker"
	domain "tracker/pkg/domain"

	gomock "go.uber.org/mock/gomock"
)

// MockTracker is a mock of Tracker interface.
type MockTracker struct {
	ctrl     *gomock.Controller
	recorder *MockTrackerMockRecorder
	isgomock struct{}
}

// MockTrackerMockRecorder is the mock recorder for MockTracker.
type MockTrackerMockRecorder struct {
	mock *MockTracker
}

// NewMockTracker creates a new mock instance.
func NewMockTracker(ctrl *gomock.Controller) *MockTracker {
	mock := &MockTracker{ctrl: ctrl}
	mock.recorder = &MockTrackerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTracker) EXPECT() *MockTrackerMockRecorder {
	return m.recorder
}

// Identify mocks base method.
func (m *MockTracker) Identify(trackingNumber string) []domain.Carrier {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Identify", trackingNumber)
	ret0, _ := ret[0].([]domain.Carrier)
	return ret0
}

// Identify indicates an expected call of Identify.
func (mr *MockTrackerMockRecorder) Identify(trackingNumber any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Identify", reflect.TypeOf((*MockTracker)(nil).Identify), trackingNumber)
}

// Track mocks base method.
func (m *MockTracker) Track(ctx context.Context, req tracker.Request) (*domain.TrackResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Track", ctx, req)
	ret0, _ := ret[0].(*domain.TrackResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Track indicates an expected call of Track.
func (mr *MockTrackerMockRecorder) Track(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Track", reflect.TypeOf((*MockTracker)(nil).Track), ctx, req)
}
