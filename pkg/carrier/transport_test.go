package carrier_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
	"tracker/pkg/carrier"
	"tracker/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func TestDo_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   serrors.Kind
	}{
		{status: http.StatusUnauthorized, kind: serrors.ErrUnauthorized},
		{status: http.StatusForbidden, kind: serrors.ErrUnauthorized},
		{status: http.StatusNotFound, kind: serrors.ErrNotFound},
		{status: http.StatusTooManyRequests, kind: serrors.ErrRateLimited},
		{status: http.StatusGatewayTimeout, kind: serrors.ErrTimeout},
		{status: http.StatusBadRequest, kind: serrors.ErrBadRequest},
		{status: http.StatusInternalServerError, kind: serrors.ErrUnavailable},
		{status: http.StatusServiceUnavailable, kind: serrors.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := &http.Client{Transport: respond(tt.status, `{"error":"x"}`)}
			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://carrier.test/track", nil)
			require.NoError(t, err)

			resp, err := carrier.Do(client, req)
			require.ErrorIs(t, err, tt.kind)
			require.NotNil(t, resp)
			require.Equal(t, tt.status, resp.StatusCode)
			require.JSONEq(t, `{"error":"x"}`, string(resp.Body))
		})
	}
}

func TestDo_Success(t *testing.T) {
	client := &http.Client{Transport: respond(http.StatusOK, `{"ok":true}`)}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://carrier.test/track", nil)
	require.NoError(t, err)

	resp, err := carrier.Do(client, req)
	require.NoError(t, err)

	var body struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, carrier.DecodeJSON(resp, &body))
	require.True(t, body.OK)
	require.Equal(t, "application/json", resp.Raw().ContentType)
}

func TestDo_NetworkError(t *testing.T) {
	client := &http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset")
	})}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://carrier.test/track", nil)
	require.NoError(t, err)

	resp, err := carrier.Do(client, req)
	require.Nil(t, resp)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestDo_Deadline(t *testing.T) {
	client := &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		<-r.Context().Done()

		return nil, r.Context().Err()
	})}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://carrier.test/track", nil)
	require.NoError(t, err)

	_, err = carrier.Do(client, req)
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestDecode_Malformed(t *testing.T) {
	resp := &carrier.Response{Body: []byte(`{not json`)}
	var v map[string]any
	require.ErrorIs(t, carrier.DecodeJSON(resp, &v), serrors.ErrUnavailable)

	resp = &carrier.Response{Body: []byte(`<unclosed>`)}
	var x struct{}
	require.ErrorIs(t, carrier.DecodeXML(resp, &x), serrors.ErrUnavailable)
}
