package superrest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Request builds and dispatches a single HTTP request against the
// application under test and runs the configured assertions on the
// response. It is the core operation that every CRUD alias forwards to.
//
// method is case-insensitive and defaults to GET when empty. The verb is
// validated against the supported set before anything is dispatched; an
// unsupported verb yields a Response whose Err names it, with no request
// issued.
//
// body may be nil (no body), a string, []byte or io.Reader (attached
// verbatim), or any other value, which is JSON-encoded with a matching
// Content-Type header.
func (h *Helper) Request(method, path string, body any, opts ...RequestOption) *Response {
	rc := resolveRequestConfig(h.cfg, opts)

	verb, err := resolveMethod(method)
	if err != nil {
		return failedResponse(err)
	}

	reader, contentType, err := encodeBody(body)
	if err != nil {
		return failedResponse(err)
	}

	req, err := http.NewRequest(verb, rc.resolvePath(path, h.cfg.pathPrefix), reader)
	if err != nil {
		return failedResponse(fmt.Errorf("building request: %w", err))
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	if req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}
	for _, hook := range h.cfg.hooks {
		hook.HookRequest(req)
	}

	h.cfg.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.String()).
		Str("request_id", req.Header.Get("X-Request-Id")).
		Msg("dispatching request")

	start := time.Now()
	raw, err := h.cfg.dispatcher.Dispatch(req)
	if err != nil {
		return failedResponse(fmt.Errorf("dispatch %s %s: %w", req.Method, req.URL, err))
	}

	resp, err := newResponse(req, raw)
	if err != nil {
		return failedResponse(err)
	}

	h.cfg.logger.Debug().
		Str("request_id", req.Header.Get("X-Request-Id")).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("received response")

	assertions := make([]Assertion, 0, 1+len(h.cfg.assertions)+len(rc.assertions))
	assertions = append(assertions, BaseAssertion(Expectation{Status: rc.status, ContentType: rc.contentType}))
	assertions = append(assertions, h.cfg.assertions...)
	assertions = append(assertions, rc.assertions...)
	if err := ComposeAssertions(assertions...).Assert(resp); err != nil {
		resp.fail(err)
	}
	return resp
}

// encodeBody turns the caller-supplied body into a reader plus the
// Content-Type to send with it, if the encoding implies one.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		return b, "", nil
	case string:
		return bytes.NewBufferString(b), "", nil
	case []byte:
		return bytes.NewBuffer(b), "", nil
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("marshalling request body: %w", err)
		}
		return bytes.NewBuffer(encoded), "application/json", nil
	}
}
