package superrest

import (
	"regexp"
	"strings"
)

type prefixMode int

const (
	prefixInherit prefixMode = iota
	prefixOverride
	prefixDisabled
)

// requestConfig is the fully resolved configuration of a single request,
// produced by layering per-call options over the Helper's defaults.
// Nothing in it survives the request.
type requestConfig struct {
	status         int
	contentType    ContentTypeExpectation
	prefixMode     prefixMode
	prefix         string
	methodOverride string
	assertions     []Assertion
}

// RequestOption customizes a single request. Per-call options always win
// over the Helper's instance defaults.
type RequestOption func(*requestConfig)

// ExpectStatus sets the status code the response must have. Defaults to
// 200, or 201 for Create.
func ExpectStatus(code int) RequestOption {
	return func(rc *requestConfig) {
		rc.status = code
	}
}

// ExpectContentType requires the response's Content-Type header to equal
// value exactly, overriding the Helper's default expectation for this call.
func ExpectContentType(value string) RequestOption {
	return func(rc *requestConfig) {
		rc.contentType = ExactContentType(value)
	}
}

// ExpectContentTypeMatch requires the response's Content-Type header to be
// present and match re, overriding the Helper's default expectation for
// this call.
func ExpectContentTypeMatch(re *regexp.Regexp) RequestOption {
	return func(rc *requestConfig) {
		rc.contentType = ContentTypePattern(re)
	}
}

// WithPrefix prepends the given prefix to this request's path, overriding
// any prefix configured on the Helper.
func WithPrefix(prefix string) RequestOption {
	return func(rc *requestConfig) {
		rc.prefixMode = prefixOverride
		rc.prefix = prefix
	}
}

// NoPrefix disables path prefixing for this request, even when the Helper
// has a prefix configured.
func NoPrefix() RequestOption {
	return func(rc *requestConfig) {
		rc.prefixMode = prefixDisabled
	}
}

// ViaMethod overrides the HTTP verb used by Update for this call. It takes
// priority over the Helper's WithUpdateMethod setting. Other operations
// ignore it.
func ViaMethod(method string) RequestOption {
	return func(rc *requestConfig) {
		rc.methodOverride = method
	}
}

// AssertWith runs an extra assertion on this request's response, after the
// built-in checks and the Helper's WithAssertion assertions.
func AssertWith(a Assertion) RequestOption {
	return func(rc *requestConfig) {
		rc.assertions = append(rc.assertions, a)
	}
}

// resolveRequestConfig layers per-call options over the instance defaults
// and returns the effective configuration for one request.
func resolveRequestConfig(cfg config, opts []RequestOption) requestConfig {
	rc := requestConfig{status: 200}
	for _, opt := range opts {
		opt(&rc)
	}
	if !rc.contentType.isSet() {
		rc.contentType = cfg.contentType
	}
	return rc
}

// resolvePath applies the prefix precedence: per-call prefix, then the
// instance prefix unless explicitly disabled, then the bare path.
func (rc requestConfig) resolvePath(path, instancePrefix string) string {
	switch rc.prefixMode {
	case prefixOverride:
		if rc.prefix != "" {
			return rc.prefix + path
		}
		return path
	case prefixDisabled:
		return path
	default:
		return instancePrefix + path
	}
}

// methodOverride extracts a ViaMethod value from per-call options without
// resolving the rest, so Update can pick its verb before building.
func methodOverride(opts []RequestOption) string {
	var rc requestConfig
	for _, opt := range opts {
		opt(&rc)
	}
	return strings.TrimSpace(rc.methodOverride)
}
