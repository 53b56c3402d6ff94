package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedDoer struct {
	results []Result
	calls   atomic.Int32
	seen    []Request
}

func (d *scriptedDoer) Execute(_ context.Context, req Request) Result {
	index := int(d.calls.Add(1)) - 1
	d.seen = append(d.seen, req)
	if index >= len(d.results) {
		index = len(d.results) - 1
	}

	result := d.results[index]
	result.Endpoint = req.Endpoint
	result.Method = req.Method
	return result
}

func newTestRetrier(doer Doer, cfg RetryConfig) *Retrier {
	logger, _ := logtest.NewNullLogger()
	return NewRetrier(doer, cfg, logger)
}

func TestRetrierRetriesTimeoutsThenSucceeds(t *testing.T) {
	t.Parallel()

	doer := &scriptedDoer{results: []Result{{Kind: KindTimeout}, {Kind: KindSuccess, Body: []byte(`{}`)}}}
	retrier := newTestRetrier(doer, RetryConfig{Timeout: time.Second, MaxRetries: 2, RetryDelay: time.Millisecond})

	result := retrier.Execute(context.Background(), Request{Endpoint: "/cart/create", Method: http.MethodPost})

	require.True(t, result.OK())
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, int32(2), doer.calls.Load())
	assert.Equal(t, time.Second, doer.seen[0].Timeout)
}

func TestRetrierStopsAfterMaxRetriesAndWaitsBetweenAttempts(t *testing.T) {
	t.Parallel()

	doer := &scriptedDoer{results: []Result{{Kind: KindTimeout}}}
	delay := 25 * time.Millisecond
	retrier := newTestRetrier(doer, RetryConfig{Timeout: time.Second, MaxRetries: 2, RetryDelay: delay})

	started := time.Now()
	result := retrier.Execute(context.Background(), Request{Endpoint: "/cart/1"})
	elapsed := time.Since(started)

	assert.Equal(t, KindTimeout, result.Kind)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, int32(3), doer.calls.Load())
	assert.GreaterOrEqual(t, elapsed, 2*delay)
}

func TestRetrierDoesNotRetryAPIOrNetworkErrors(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindAPIError, KindNetwork} {
		t.Run(kind.String(), func(t *testing.T) {
			doer := &scriptedDoer{results: []Result{{Kind: kind, Message: "nope"}}}
			retrier := newTestRetrier(doer, RetryConfig{MaxRetries: 5, RetryDelay: time.Millisecond})

			result := retrier.Execute(context.Background(), Request{Endpoint: "/login"})

			assert.Equal(t, kind, result.Kind)
			assert.Equal(t, 1, result.Attempts)
			assert.Equal(t, int32(1), doer.calls.Load())
		})
	}
}

func TestRetrierZeroRetriesMakesSingleAttempt(t *testing.T) {
	t.Parallel()

	doer := &scriptedDoer{results: []Result{{Kind: KindTimeout}}}
	retrier := newTestRetrier(doer, RetryConfig{MaxRetries: 0, RetryDelay: time.Millisecond})

	result := retrier.Execute(context.Background(), Request{Endpoint: "/ping"})
	assert.Equal(t, KindTimeout, result.Kind)
	assert.Equal(t, 1, result.Attempts)
}

func TestRetrierOverHTTPRetriesSlowServer(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
			return
		}
		_, _ = w.Write([]byte(`{"cart_id":"c-1"}`))
	}))
	defer server.Close()

	retrier := newTestRetrier(&Executor{BaseURL: server.URL}, RetryConfig{
		Timeout:    40 * time.Millisecond,
		MaxRetries: 2,
		RetryDelay: 5 * time.Millisecond,
	})

	result := retrier.Execute(context.Background(), Request{Endpoint: "/cart/create", Method: http.MethodPost})
	require.True(t, result.OK(), result.Message)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, int32(3), hits.Load())
}
