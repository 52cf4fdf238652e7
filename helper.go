package superrest

import (
	"net/http"
	"regexp"

	"github.com/rs/zerolog"
)

type config struct {
	dispatcher   Dispatcher
	contentType  ContentTypeExpectation
	pathPrefix   string
	updateMethod string
	hooks        []RequestHook
	assertions   []Assertion
	logger       zerolog.Logger
}

// Option can be used to customize Helper behaviour. See With* functions to find customization options.
type Option func(*config)

// WithContentType sets the default content-type expectation for every
// request issued by the helper: the response's Content-Type header must
// equal the given value exactly. Overridable per call with ExpectContentType.
func WithContentType(value string) Option {
	return func(c *config) {
		c.contentType = ExactContentType(value)
	}
}

// WithContentTypePattern sets the default content-type expectation to a
// pattern match: the response's Content-Type header must be present and
// match the given regexp. Overridable per call with ExpectContentTypeMatch.
func WithContentTypePattern(re *regexp.Regexp) Option {
	return func(c *config) {
		c.contentType = ContentTypePattern(re)
	}
}

// WithPathPrefix sets a prefix that is prepended to every request path.
// A per-call WithPrefix overrides it and NoPrefix disables it for one call.
func WithPathPrefix(prefix string) Option {
	return func(c *config) {
		c.pathPrefix = prefix
	}
}

// WithUpdateMethod sets the HTTP verb used by Update. Defaults to PUT.
func WithUpdateMethod(method string) Option {
	return func(c *config) {
		c.updateMethod = method
	}
}

// WithDispatcher replaces the default in-process dispatcher. Use
// ClientDispatcher to run the same tests against a live server.
func WithDispatcher(d Dispatcher) Option {
	return func(c *config) {
		c.dispatcher = d
	}
}

// WithRequestHook registers a hook that can mutate every outgoing request
// before it is dispatched, e.g. to inject an auth header on every call.
// Hooks run in registration order.
func WithRequestHook(h RequestHook) Option {
	return func(c *config) {
		c.hooks = append(c.hooks, h)
	}
}

// WithAssertion registers an extra response assertion that runs after the
// built-in status and content-type checks on every request. Assertions run
// in registration order and stop at the first failure.
func WithAssertion(a Assertion) Option {
	return func(c *config) {
		c.assertions = append(c.assertions, a)
	}
}

// WithLogger enables structured logging of dispatched requests and their
// responses. Logging is off by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Helper issues HTTP requests against an application under test and runs
// configured assertions on the responses. Its configuration is immutable
// after New returns; construct a second Helper for different defaults.
type Helper struct {
	cfg config
}

// New returns a Helper that dispatches requests in-process against the
// given handler. It provides sane defaults that can be adjusted using
// Option arguments. The handler may be nil if WithDispatcher is used.
//
// No validation happens here; misconfigured expectations surface later as
// assertion failures on the affected request.
func New(handler http.Handler, opts ...Option) *Helper {
	cfg := config{
		updateMethod: http.MethodPut,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.dispatcher == nil {
		cfg.dispatcher = HandlerDispatcher{Handler: handler}
	}
	return &Helper{cfg: cfg}
}

// T is a subset of testing.T interface that is used by superrest's functions.
// A custom T implementation can be used to e.g. make logs silent or stop failing on errors.
type T interface {
	Helper()
	Name() string
	Log(args ...any)
	Logf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
}
