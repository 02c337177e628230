package carrier

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
)

// maxBodySize caps how much of an upstream reply is read.
const maxBodySize = 8 << 20

// Response is an upstream reply read into memory.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Raw returns the reply as an opaque passthrough payload.
func (r *Response) Raw() domain.Raw {
	if r == nil {
		return domain.Raw{}
	}

	return domain.Raw{ContentType: r.Header.Get("Content-Type"), Body: r.Body}
}

// Do sends req and classifies the outcome into serrors kinds:
//
//	network error, 5xx     ErrUnavailable
//	deadline exceeded      ErrTimeout
//	401, 403               ErrUnauthorized
//	404                    ErrNotFound
//	429                    ErrRateLimited
//	other 4xx              ErrBadRequest
//
// For non-2xx replies the read response is returned alongside the error so
// callers can recognize carrier-specific "not found" bodies.
func Do(client *http.Client, req *http.Request) (*Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, classifyTransportError(req.Context(), err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, classifyTransportError(req.Context(), fmt.Errorf("could not read response body: %w", err))
	}
	out := &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return out, nil
	}

	msg := fmt.Sprintf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, snippet(b))

	return out, serrors.With(serrors.FromHTTPStatus(resp.StatusCode), "%s", msg)
}

func classifyTransportError(ctx context.Context, err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &ne) && ne.Timeout()) {
		return serrors.Wrap(serrors.ErrTimeout, err, "request timed out")
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 256 {
		s = s[:256] + "..."
	}

	return s
}

// DecodeJSON unmarshals a JSON reply. Malformed payloads are transport failures.
func DecodeJSON(resp *Response, v any) error {
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not decode response")
	}

	return nil
}

// DecodeXML unmarshals an XML reply. Malformed payloads are transport failures.
func DecodeXML(resp *Response, v any) error {
	if err := xml.Unmarshal(resp.Body, v); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not decode response")
	}

	return nil
}
