package superrest

import (
	"fmt"
	"regexp"
)

type contentTypeKind int

const (
	contentTypeUnset contentTypeKind = iota
	contentTypeExact
	contentTypePattern
)

// ContentTypeExpectation describes what the response's Content-Type header
// should look like. The zero value means no expectation: the header is not
// checked at all. Construct non-zero values with ExactContentType or
// ContentTypePattern.
type ContentTypeExpectation struct {
	kind    contentTypeKind
	exact   string
	pattern *regexp.Regexp
}

// ExactContentType expects the Content-Type header to equal value exactly.
// A missing header is compared as the empty string.
func ExactContentType(value string) ContentTypeExpectation {
	return ContentTypeExpectation{kind: contentTypeExact, exact: value}
}

// ContentTypePattern expects the Content-Type header to be present and
// match re.
func ContentTypePattern(re *regexp.Regexp) ContentTypeExpectation {
	return ContentTypeExpectation{kind: contentTypePattern, pattern: re}
}

func (e ContentTypeExpectation) isSet() bool {
	return e.kind != contentTypeUnset
}

// check validates the actual header value against the expectation.
// present reports whether the header existed on the response at all, which
// matters for pattern expectations only.
func (e ContentTypeExpectation) check(actual string, present bool) error {
	switch e.kind {
	case contentTypeExact:
		if actual != e.exact {
			return fmt.Errorf("Expected HTTP Content-Type header %q to equal %q", actual, e.exact)
		}
	case contentTypePattern:
		if !present {
			return fmt.Errorf("Expected missing HTTP Content-Type header to match %s", e.pattern)
		}
		if !e.pattern.MatchString(actual) {
			return fmt.Errorf("Expected HTTP Content-Type header %q to match %s", actual, e.pattern)
		}
	}
	return nil
}
