package superrest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

// ErrUnsupportedMethod is returned when a request names an HTTP verb the
// dispatcher has no capability for. It is detected before any dispatch.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

var supportedMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// resolveMethod canonicalizes a verb name case-insensitively and validates
// it against the supported set. An empty method defaults to GET.
func resolveMethod(method string) (string, error) {
	if method == "" {
		return http.MethodGet, nil
	}
	canonical := strings.ToUpper(method)
	if _, ok := supportedMethods[canonical]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnsupportedMethod, method)
	}
	return canonical, nil
}

// Dispatcher performs the actual HTTP exchange for a built request.
// The Helper knows nothing about transports beyond this interface.
type Dispatcher interface {
	Dispatch(req *http.Request) (*http.Response, error)
}

// HandlerDispatcher dispatches requests in-process against an http.Handler
// using httptest's recorder. It is the default dispatcher.
type HandlerDispatcher struct {
	Handler http.Handler
}

func (d HandlerDispatcher) Dispatch(req *http.Request) (*http.Response, error) {
	if d.Handler == nil {
		return nil, errors.New("no application handler configured")
	}
	recorder := httptest.NewRecorder()
	d.Handler.ServeHTTP(recorder, req)
	return recorder.Result(), nil
}

// ClientDispatcher dispatches requests over the network against a base URL,
// e.g. an httptest.Server. A nil Client falls back to http.DefaultClient.
type ClientDispatcher struct {
	BaseURL string
	Client  *http.Client
}

func (d ClientDispatcher) Dispatch(req *http.Request) (*http.Response, error) {
	u, err := url.Parse(d.BaseURL + req.URL.String())
	if err != nil {
		return nil, fmt.Errorf("invalid request URL: %w", err)
	}
	req.URL = u
	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	return client.Do(req)
}
