package superrest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Response is the result of a dispatched request: the underlying response
// with its body read and buffered, plus the outcome of every assertion run
// so far. Further assertions can be chained on it; once one fails, the
// remaining chained assertions are skipped and Err returns the failure.
type Response struct {
	req  *http.Request
	raw  *http.Response
	body []byte
	err  error
}

func newResponse(req *http.Request, raw *http.Response) (*Response, error) {
	defer raw.Body.Close()
	body, err := io.ReadAll(raw.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return &Response{req: req, raw: raw, body: body}, nil
}

// failedResponse wraps an error that occurred before or during dispatch, so
// that it propagates through the same Err/Require path as assertion
// failures.
func failedResponse(err error) *Response {
	return &Response{err: err}
}

// Err returns the first failure recorded on this response, or nil. It is
// the terminal accessor of an assertion chain.
func (r *Response) Err() error {
	return r.err
}

// Require fails the test immediately when the response carries a failure.
// It returns the response so accessors can be chained after it.
func (r *Response) Require(t T) *Response {
	t.Helper()
	if r.err != nil {
		t.Fatal(r.err.Error())
	}
	return r
}

// StatusCode returns the response's status code, or 0 when the request
// never produced a response.
func (r *Response) StatusCode() int {
	if r.raw == nil {
		return 0
	}
	return r.raw.StatusCode
}

// Header returns the response headers. It is never nil.
func (r *Response) Header() http.Header {
	if r.raw == nil {
		return http.Header{}
	}
	return r.raw.Header
}

// ContentType returns the response's Content-Type header value.
func (r *Response) ContentType() string {
	return r.Header().Get("Content-Type")
}

// contentTypeHeader reports the header value together with whether the
// header was present at all, which pattern expectations distinguish from an
// empty value.
func (r *Response) contentTypeHeader() (string, bool) {
	values, present := r.Header()[http.CanonicalHeaderKey("Content-Type")]
	if !present || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Body returns the buffered response body.
func (r *Response) Body() []byte {
	return r.body
}

// BodyString returns the buffered response body as a string.
func (r *Response) BodyString() string {
	return string(r.body)
}

// JSON decodes the buffered body into target. A failure recorded earlier on
// the response is returned instead of decoding.
func (r *Response) JSON(target any) error {
	if r.err != nil {
		return r.err
	}
	if err := json.Unmarshal(r.body, target); err != nil {
		return fmt.Errorf("unmarshalling response body %q: %w", r.bodyExcerpt(), err)
	}
	return nil
}

func (r *Response) bodyExcerpt() string {
	if len(r.body) > 100 {
		return string(r.body[:100]) + "..."
	}
	return string(r.body)
}

func (r *Response) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// ExpectStatus chains an additional status check onto the response.
func (r *Response) ExpectStatus(code int) *Response {
	if r.err != nil {
		return r
	}
	if r.StatusCode() != code {
		r.fail(fmt.Errorf("Expected HTTP status code %d to equal %d", r.StatusCode(), code))
	}
	return r
}

// ExpectHeader chains a header equality check onto the response.
func (r *Response) ExpectHeader(key, value string) *Response {
	if r.err != nil {
		return r
	}
	if actual := r.Header().Get(key); actual != value {
		r.fail(fmt.Errorf("Expected HTTP %s header %q to equal %q", key, actual, value))
	}
	return r
}

// ExpectBodyContains chains a body substring check onto the response.
func (r *Response) ExpectBodyContains(substr string) *Response {
	if r.err != nil {
		return r
	}
	if !strings.Contains(r.BodyString(), substr) {
		r.fail(fmt.Errorf("Expected HTTP body %q to contain %q", r.bodyExcerpt(), substr))
	}
	return r
}
