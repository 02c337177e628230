package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"tracker/internal/api/handler/v1handler"

	"tracker/pkg/logger"
	"tracker/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.With(serrors.ErrBadRequest, "tracking number 123 matches no known carrier")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "tracking number 123 matches no known carrier", res.Response.Message)
}

func TestNewError_UpstreamKinds(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	tests := []struct {
		kind   serrors.Kind
		status int
	}{
		{kind: serrors.ErrUnauthorized, status: 502},
		{kind: serrors.ErrTimeout, status: 504},
		{kind: serrors.ErrUnavailable, status: 503},
		{kind: serrors.ErrRateLimited, status: 503},
	}

	for _, tc := range tests {
		t.Run(tc.kind.Error(), func(t *testing.T) {
			// upstream details stay in the logs
			err := fmt.Errorf("tracking failed: %w",
				serrors.With(tc.kind, "GET /track/v1/details/1Z: status 500: secret upstream body"))
			res := h.NewError(context.Background(), err)
			require.Equal(t, tc.status, res.StatusCode)
			require.Equal(t, tc.kind.Error(), res.Response.Code)
			require.NotContains(t, res.Response.Message, "secret")
		})
	}
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}
