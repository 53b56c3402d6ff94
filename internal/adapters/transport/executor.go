package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultStoreCode = "b2c_10010_vi"
	DefaultTimeout   = 20 * time.Second

	storeHeader      = "Store"
	maxResponseBytes = 4 << 20
	noErrorDetails   = "No error details"
)

type Request struct {
	// Endpoint is a path relative to the executor base URL or an absolute URL.
	Endpoint string
	Method   string
	Body     any
	Token    string
	Timeout  time.Duration
}

// Doer executes a request and classifies the outcome. It never returns a Go
// error; failures are described by the Result.
type Doer interface {
	Execute(ctx context.Context, req Request) Result
}

type Executor struct {
	BaseURL    string
	StoreCode  string
	HTTPClient *http.Client
	Log        logrus.FieldLogger
}

var _ Doer = (*Executor)(nil)

func (e *Executor) Execute(ctx context.Context, req Request) Result {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}
	result := Result{Endpoint: req.Endpoint, Method: method, Attempts: 1}

	target, err := resolveURL(e.BaseURL, req.Endpoint)
	if err != nil {
		return networkFailure(result, err)
	}

	var body io.Reader
	if req.Body != nil && (method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch) {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return networkFailure(result, fmt.Errorf("encode request body: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	requestCtx, cancel := requestContext(ctx, req.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, method, target, body)
	if err != nil {
		return networkFailure(result, fmt.Errorf("create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(storeHeader, e.storeCode())
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	resp, err := e.httpClient().Do(httpReq)
	if err != nil {
		if timedOut(ctx, requestCtx) {
			result.Kind = KindTimeout
			result.Message = "request timed out"
			return result
		}
		return networkFailure(result, err)
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		result.Kind = KindAPIError
		result.Body = data
		result.Message = noErrorDetails
		if readErr == nil {
			if text := strings.TrimSpace(string(data)); text != "" {
				result.Message = text
			}
		}
		return result
	}

	if readErr != nil {
		if timedOut(ctx, requestCtx) {
			result.Kind = KindTimeout
			result.Message = "request timed out"
			return result
		}
		return networkFailure(result, fmt.Errorf("read response: %w", readErr))
	}

	result.Kind = KindSuccess
	result.Body = data
	e.logger().WithFields(logrus.Fields{
		"method":   method,
		"endpoint": req.Endpoint,
		"status":   resp.StatusCode,
	}).Debug("request completed")

	return result
}

func (e *Executor) storeCode() string {
	if e.StoreCode != "" {
		return e.StoreCode
	}
	return DefaultStoreCode
}

func (e *Executor) httpClient() *http.Client {
	if e.HTTPClient != nil {
		return e.HTTPClient
	}
	return http.DefaultClient
}

func (e *Executor) logger() logrus.FieldLogger {
	if e.Log != nil {
		return e.Log
	}
	return logrus.StandardLogger()
}

func requestContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

// timedOut is true when the per-request timer fired and the caller did not
// cancel or expire the parent context.
func timedOut(parent context.Context, requestCtx context.Context) bool {
	return parent.Err() == nil && errors.Is(requestCtx.Err(), context.DeadlineExceeded)
}

func networkFailure(result Result, err error) Result {
	result.Kind = KindNetwork
	result.Message = err.Error()
	return result
}

func resolveURL(baseURL string, endpoint string) (string, error) {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return validateURL(endpoint)
	}

	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	base, err := validateURL(baseURL)
	if err != nil {
		return "", err
	}

	path := strings.TrimLeft(endpoint, "/")
	if path == "" {
		return base, nil
	}

	return strings.TrimRight(base, "/") + "/" + path, nil
}

func validateURL(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api url host is required")
	}

	return parsed.String(), nil
}
