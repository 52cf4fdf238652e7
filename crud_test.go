package superrest_test

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KimGenius/superrest"
)

// served describes the request a test handler saw.
type served struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Body   string `json:"body"`
}

func describeHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(served{Method: r.Method, Path: r.URL.Path, Body: string(body)})
	})
}

func describe(t *testing.T, resp *superrest.Response) served {
	t.Helper()
	var s served
	require.NoError(t, resp.JSON(&s))
	return s
}

func TestCreate_DefaultsTo201(t *testing.T) {
	h := superrest.New(describeHandler(http.StatusCreated))

	resp := h.Create("/users", map[string]string{"name": "Jo"})

	require.NoError(t, resp.Err())
	s := describe(t, resp)
	assert.Equal(t, http.MethodPost, s.Method)
	assert.JSONEq(t, `{"name":"Jo"}`, s.Body)
}

func TestCreate_RejectsNon201(t *testing.T) {
	h := superrest.New(describeHandler(http.StatusOK))

	err := h.Create("/users", map[string]string{"name": "Jo"}).Err()

	require.Error(t, err)
	assert.Equal(t, "Expected HTTP status code 200 to equal 201", err.Error())
}

func TestCreate_CallerStatusWins(t *testing.T) {
	h := superrest.New(describeHandler(http.StatusAccepted))

	resp := h.Create("/users", "{}", superrest.ExpectStatus(http.StatusAccepted))

	require.NoError(t, resp.Err())
}

func TestRead_And_Retrieve_AreIdentical(t *testing.T) {
	h := superrest.New(describeHandler(http.StatusOK))

	read := describe(t, h.Read("/users").Require(t))
	retrieve := describe(t, h.Retrieve("/users").Require(t))

	assert.Equal(t, read, retrieve)
	assert.Equal(t, http.MethodGet, read.Method)
	assert.Empty(t, read.Body)
}

func TestUpdate_MethodPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		opts       []superrest.Option
		callOpts   []superrest.RequestOption
		wantMethod string
	}{
		{
			name:       "defaults to PUT",
			wantMethod: http.MethodPut,
		},
		{
			name:       "instance update method",
			opts:       []superrest.Option{superrest.WithUpdateMethod(http.MethodPatch)},
			wantMethod: http.MethodPatch,
		},
		{
			name:       "per-call override wins over instance",
			opts:       []superrest.Option{superrest.WithUpdateMethod(http.MethodPatch)},
			callOpts:   []superrest.RequestOption{superrest.ViaMethod(http.MethodPost)},
			wantMethod: http.MethodPost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := superrest.New(describeHandler(http.StatusOK), tt.opts...)

			resp := h.Update("/users/1", "{}", tt.callOpts...)

			require.NoError(t, resp.Err())
			assert.Equal(t, tt.wantMethod, describe(t, resp).Method)
		})
	}
}

func TestPatch(t *testing.T) {
	h := superrest.New(describeHandler(http.StatusOK))

	resp := h.Patch("/users/1", map[string]string{"name": "Flo"})

	require.NoError(t, resp.Err())
	assert.Equal(t, http.MethodPatch, describe(t, resp).Method)
}

func TestDelete_And_Destroy_AreIdentical(t *testing.T) {
	h := superrest.New(describeHandler(http.StatusOK))

	del := describe(t, h.Delete("/users/1", nil).Require(t))
	destroy := describe(t, h.Destroy("/users/1", nil).Require(t))

	assert.Equal(t, del, destroy)
	assert.Equal(t, http.MethodDelete, del.Method)
}

func TestDelete_OptionalBody(t *testing.T) {
	h := superrest.New(describeHandler(http.StatusOK))

	resp := h.Delete("/users", map[string][]int{"ids": {1, 2}})

	require.NoError(t, resp.Err())
	assert.JSONEq(t, `{"ids":[1,2]}`, describe(t, resp).Body)
}

func TestScenario_ReadUsers(t *testing.T) {
	h := superrest.New(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"resource":"ok"}`)
	}))

	resp := h.Read("/users")

	require.NoError(t, resp.Err())
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	var body map[string]string
	require.NoError(t, resp.JSON(&body))
	assert.Equal(t, "ok", body["resource"])
}

func TestScenario_ContentTypePatternMismatch(t *testing.T) {
	h := superrest.New(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = io.WriteString(w, "<html></html>")
		}),
		superrest.WithContentTypePattern(regexp.MustCompile(`^application/json`)),
	)

	err := h.Read("/users").Err()

	require.Error(t, err)
	assert.Equal(t, `Expected HTTP Content-Type header "text/html" to match ^application/json`, err.Error())
}

func TestScenario_PerCallContentTypeOverridesInstance(t *testing.T) {
	h := superrest.New(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/csv")
			_, _ = io.WriteString(w, "a,b\n")
		}),
		superrest.WithContentType("application/json"),
	)

	require.Error(t, h.Read("/export").Err())
	require.NoError(t, h.Read("/export", superrest.ExpectContentType("text/csv")).Err())
}

func TestScenario_NoPrefixEscapesInstancePrefix(t *testing.T) {
	h := superrest.New(describeHandler(http.StatusOK), superrest.WithPathPrefix("/api"))

	prefixed := describe(t, h.Read("/users").Require(t))
	bare := describe(t, h.Read("/users", superrest.NoPrefix()).Require(t))

	assert.Equal(t, "/api/users", prefixed.Path)
	assert.Equal(t, "/users", bare.Path)
}

func TestScenario_UnsupportedVerb(t *testing.T) {
	h := superrest.New(describeHandler(http.StatusOK))

	err := h.Request("UNKNOWN", "/x", nil).Err()

	require.Error(t, err)
	assert.ErrorIs(t, err, superrest.ErrUnsupportedMethod)
	assert.Contains(t, err.Error(), "UNKNOWN")
}
