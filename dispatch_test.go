package superrest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMethod(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		want    string
		wantErr bool
	}{
		{name: "empty defaults to GET", method: "", want: http.MethodGet},
		{name: "lowercase is canonicalized", method: "delete", want: http.MethodDelete},
		{name: "mixed case is canonicalized", method: "PaTcH", want: http.MethodPatch},
		{name: "uppercase passes through", method: "POST", want: http.MethodPost},
		{name: "unknown verb is rejected", method: "UNKNOWN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveMethod(tt.method)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedMethod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandlerDispatcher(t *testing.T) {
	d := HandlerDispatcher{Handler: fixedHandler(http.StatusTeapot, "text/plain", "short and stout")}
	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)

	resp, err := d.Dispatch(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}

func TestHandlerDispatcher_NilHandler(t *testing.T) {
	d := HandlerDispatcher{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := d.Dispatch(req)

	require.Error(t, err)
}

func TestClientDispatcher_AgainstLiveServer(t *testing.T) {
	srv := httptest.NewServer(echoHandler())
	defer srv.Close()

	h := New(nil, WithDispatcher(ClientDispatcher{BaseURL: srv.URL, Client: srv.Client()}))

	resp := h.Read("/users")

	require.NoError(t, resp.Err())
	assert.Equal(t, "/users", decodeEcho(t, resp).Path)
}
