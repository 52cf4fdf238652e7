package superrest

import (
	"fmt"
)

// Assertion validates a dispatched response. Implementations should return
// an error carrying the literal actual and expected values, so the message
// can be used as a test-failure message without further formatting.
type Assertion interface {
	Assert(resp *Response) error
}

// AssertionFunc is a helper type for a function that implements the Assertion interface.
type AssertionFunc func(resp *Response) error

func (f AssertionFunc) Assert(resp *Response) error {
	return f(resp)
}

// ComposeAssertions composes multiple assertions into a single one that
// stops at the first failure.
func ComposeAssertions(assertions ...Assertion) Assertion {
	return AssertionFunc(func(resp *Response) error {
		for _, a := range assertions {
			if err := a.Assert(resp); err != nil {
				return err
			}
		}
		return nil
	})
}

// Expectation holds the resolved per-request expectations that the base
// assertion validates.
type Expectation struct {
	Status      int
	ContentType ContentTypeExpectation
}

// BaseAssertion returns the assertion that every request runs first: the
// status code gate followed by the content-type gate. Extensions that layer
// additional checks should compose with it rather than replace it:
//
//	superrest.ComposeAssertions(superrest.BaseAssertion(exp), myAssertion)
func BaseAssertion(exp Expectation) Assertion {
	return AssertionFunc(func(resp *Response) error {
		if resp.StatusCode() != exp.Status {
			return fmt.Errorf("Expected HTTP status code %d to equal %d", resp.StatusCode(), exp.Status)
		}
		actual, present := resp.contentTypeHeader()
		return exp.ContentType.check(actual, present)
	})
}
