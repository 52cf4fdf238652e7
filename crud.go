package superrest

import "net/http"

// Create issues a POST request with the given body and expects status 201
// unless an ExpectStatus option says otherwise.
func (h *Helper) Create(path string, body any, opts ...RequestOption) *Response {
	merged := append([]RequestOption{ExpectStatus(http.StatusCreated)}, opts...)
	return h.Request(http.MethodPost, path, body, merged...)
}

// Read issues a GET request without a body.
func (h *Helper) Read(path string, opts ...RequestOption) *Response {
	return h.Request(http.MethodGet, path, nil, opts...)
}

// Retrieve is a synonym for Read.
func (h *Helper) Retrieve(path string, opts ...RequestOption) *Response {
	return h.Read(path, opts...)
}

// Update issues a request with the Helper's update method, which defaults
// to PUT. A per-call ViaMethod option takes priority over the instance
// setting.
func (h *Helper) Update(path string, body any, opts ...RequestOption) *Response {
	method := h.cfg.updateMethod
	if override := methodOverride(opts); override != "" {
		method = override
	}
	return h.Request(method, path, body, opts...)
}

// Patch issues a PATCH request with the given body.
func (h *Helper) Patch(path string, body any, opts ...RequestOption) *Response {
	return h.Request(http.MethodPatch, path, body, opts...)
}

// Delete issues a DELETE request. body may be nil.
func (h *Helper) Delete(path string, body any, opts ...RequestOption) *Response {
	return h.Request(http.MethodDelete, path, body, opts...)
}

// Destroy is a synonym for Delete.
func (h *Helper) Destroy(path string, body any, opts ...RequestOption) *Response {
	return h.Delete(path, body, opts...)
}
