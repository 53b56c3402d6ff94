package transport

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/shopassist/internal/domain"
)

type Kind int

const (
	KindSuccess Kind = iota
	KindAPIError
	KindTimeout
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindAPIError:
		return "api_error"
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the outcome of a request. Exactly one Kind applies.
type Result struct {
	Kind       Kind
	StatusCode int
	Body       []byte
	Message    string
	Endpoint   string
	Method     string
	Attempts   int
}

func (r Result) OK() bool {
	return r.Kind == KindSuccess
}

func (r Result) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode %s %s response: %w", r.Method, r.Endpoint, err)
	}

	return nil
}

// Err converts a non-success result into an *Error. It returns nil on success.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}

	return &Error{
		Kind:       r.Kind,
		StatusCode: r.StatusCode,
		Message:    r.Message,
		Endpoint:   r.Endpoint,
		Method:     r.Method,
		Attempts:   r.Attempts,
	}
}

type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Endpoint   string
	Method     string
	Attempts   int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTimeout:
		return fmt.Sprintf("%s %s: request timed out after %d attempt(s)", e.Method, e.Endpoint, e.Attempts)
	case KindAPIError:
		return fmt.Sprintf("%s %s: api error %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s %s: network error: %s", e.Method, e.Endpoint, e.Message)
	}
}

func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindTimeout:
		return target == domain.ErrRequestTimeout
	case KindNetwork:
		return target == domain.ErrNetworkUnavailable
	case KindAPIError:
		return target == domain.ErrAPIRejected
	default:
		return false
	}
}
