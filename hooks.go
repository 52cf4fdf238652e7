package superrest

import (
	"encoding/base64"
	"net/http"
)

// RequestHook mutates an outgoing request before it is dispatched.
// It is allowed to modify the request in place; the same *http.Request is
// then handed to the dispatcher.
type RequestHook interface {
	HookRequest(req *http.Request)
}

// RequestHookFunc is a helper type for a function that implements the RequestHook interface.
type RequestHookFunc func(req *http.Request)

func (f RequestHookFunc) HookRequest(req *http.Request) {
	f(req)
}

// ComposeRequestHooks composes multiple hooks into a single one, applied in order.
func ComposeRequestHooks(hooks ...RequestHook) RequestHook {
	return RequestHookFunc(func(req *http.Request) {
		for _, h := range hooks {
			h.HookRequest(req)
		}
	})
}

// SetHeader returns a hook that sets a header on every outgoing request.
func SetHeader(key, value string) RequestHook {
	return RequestHookFunc(func(req *http.Request) {
		req.Header.Set(key, value)
	})
}

// BearerAuth returns a hook that sets an Authorization: Bearer header on
// every outgoing request.
func BearerAuth(token string) RequestHook {
	return SetHeader("Authorization", "Bearer "+token)
}

// BasicAuth returns a hook that sets an Authorization: Basic header on
// every outgoing request.
func BasicAuth(username, password string) RequestHook {
	auth := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return SetHeader("Authorization", "Basic "+auth)
}
