// Package mocktimezone holds gomock doubles for timezone.Geocoder. They keep
// mockgen's layout so `go generate` can replace them.
package mocktimezone

import (
	context "context"
	reflect "reflect"
	timezone "tracker/pkg/timezone"

	gomock "go.uber.org/mock/gomock"
)

// MockGeocoder is a mock of Geocoder interface.
type MockGeocoder struct {
	ctrl     *gomock.Controller
	recorder *MockGeocoderMockRecorder
	isgomock struct{}
}

// MockGeocoderMockRecorder is the mock recorder for MockGeocoder.
type MockGeocoderMockRecorder struct {
	mock *MockGeocoder
}

// NewMockGeocoder creates a new mock instance.
func NewMockGeocoder(ctrl *gomock.Controller) *MockGeocoder {
	mock := &MockGeocoder{ctrl: ctrl}
	mock.recorder = &MockGeocoderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGeocoder) EXPECT() *MockGeocoderMockRecorder {
	return m.recorder
}

// Geocode mocks base method.
func (m *MockGeocoder) Geocode(ctx context.Context, text string) (timezone.Locality, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Geocode", ctx, text)
	ret0, _ := ret[0].(timezone.Locality)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Geocode indicates an expected call of Geocode.
func (mr *MockGeocoderMockRecorder) Geocode(ctx, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Geocode", reflect.TypeOf((*MockGeocoder)(nil).Geocode), ctx, text)
}
