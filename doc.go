// Package superrest reduces boilerplate in REST API integration tests.
// It wraps an application handler and dispatches requests against it
// in-process, asserting status codes and content types with descriptive
// failure messages, and provides short aliases for the usual CRUD verbs.
//
// Quickstart: pass your http.Handler to New, then call Create, Read,
// Update, Patch or Delete and inspect the returned *Response.
//
// See the examples directory for a complete sample against a real router.
package superrest
