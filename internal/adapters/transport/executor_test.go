package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/shopassist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorSuccessSendsHeadersAndBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cart/add", r.URL.Path)
		assert.Equal(t, "b2c_10010_vi", r.Header.Get("Store"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "sku-1", payload["sku"])

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	executor := &Executor{BaseURL: server.URL + "/api"}
	result := executor.Execute(context.Background(), Request{
		Endpoint: "/cart/add",
		Method:   http.MethodPost,
		Body:     map[string]any{"sku": "sku-1"},
		Token:    "tok-1",
	})

	require.True(t, result.OK(), result.Message)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, 1, result.Attempts)

	var decoded struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, result.Decode(&decoded))
	assert.True(t, decoded.OK)
	assert.NoError(t, result.Err())
}

func TestExecutorOmitsAuthorizationWithoutToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "custom_store", r.Header.Get("Store"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	executor := &Executor{BaseURL: server.URL, StoreCode: "custom_store"}
	result := executor.Execute(context.Background(), Request{Endpoint: "/ping"})
	require.True(t, result.OK())
	assert.Equal(t, http.MethodGet, result.Method)
}

func TestExecutorClassifiesAPIErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "with body", status: http.StatusBadRequest, body: "cart not found", wantMessage: "cart not found"},
		{name: "empty body", status: http.StatusInternalServerError, body: "", wantMessage: "No error details"},
		{name: "whitespace body", status: http.StatusBadGateway, body: "  \n", wantMessage: "No error details"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			executor := &Executor{BaseURL: server.URL}
			result := executor.Execute(context.Background(), Request{Endpoint: "/cart/1"})

			assert.Equal(t, KindAPIError, result.Kind)
			assert.Equal(t, tc.status, result.StatusCode)
			assert.Equal(t, tc.wantMessage, result.Message)

			err := result.Err()
			require.ErrorIs(t, err, domain.ErrAPIRejected)
			assert.False(t, domain.IsConnectivityError(err))
		})
	}
}

func TestExecutorClassifiesTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	executor := &Executor{BaseURL: server.URL}
	result := executor.Execute(context.Background(), Request{Endpoint: "/slow", Timeout: 30 * time.Millisecond})

	assert.Equal(t, KindTimeout, result.Kind)
	require.ErrorIs(t, result.Err(), domain.ErrRequestTimeout)
}

func TestExecutorClassifiesNetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	executor := &Executor{BaseURL: baseURL}
	result := executor.Execute(context.Background(), Request{Endpoint: "/ping"})

	assert.Equal(t, KindNetwork, result.Kind)
	assert.NotEmpty(t, result.Message)
	require.ErrorIs(t, result.Err(), domain.ErrNetworkUnavailable)
}

func TestExecutorTreatsCallerCancellationAsNetwork(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	executor := &Executor{BaseURL: server.URL}
	result := executor.Execute(ctx, Request{Endpoint: "/slow", Timeout: time.Second})
	assert.Equal(t, KindNetwork, result.Kind)
}

func TestExecutorRejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	executor := &Executor{BaseURL: "ftp://example.com"}
	result := executor.Execute(context.Background(), Request{Endpoint: "/ping"})
	assert.Equal(t, KindNetwork, result.Kind)
	assert.Contains(t, result.Message, "http or https")
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	got, err := resolveURL("https://api.example.com/v1/", "/cart/abc")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1/cart/abc", got)

	got, err = resolveURL("https://api.example.com/graphql", "")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/graphql", got)

	got, err = resolveURL("", "https://other.example.com/graphql")
	require.NoError(t, err)
	assert.Equal(t, "https://other.example.com/graphql", got)

	_, err = resolveURL("", "/ping")
	require.Error(t, err)
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	timeout := &Error{Kind: KindTimeout, Method: "GET", Endpoint: "/cart/1", Attempts: 3}
	assert.Equal(t, "GET /cart/1: request timed out after 3 attempt(s)", timeout.Error())

	apiErr := &Error{Kind: KindAPIError, Method: "POST", Endpoint: "/login", StatusCode: 401, Message: "bad credentials"}
	assert.Equal(t, "POST /login: api error 401: bad credentials", apiErr.Error())
}
