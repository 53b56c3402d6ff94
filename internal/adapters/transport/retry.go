package transport

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

type RetryConfig struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Timeout:    DefaultTimeout,
		MaxRetries: 2,
		RetryDelay: time.Second,
	}
}

// Retrier re-issues requests that timed out. API and network errors are
// returned after the first attempt.
type Retrier struct {
	doer Doer
	cfg  RetryConfig
	log  logrus.FieldLogger
}

var _ Doer = (*Retrier)(nil)

var errAttemptTimedOut = errors.New("attempt timed out")

func NewRetrier(doer Doer, cfg RetryConfig, log logrus.FieldLogger) *Retrier {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Retrier{doer: doer, cfg: cfg, log: log}
}

func (r *Retrier) Execute(ctx context.Context, req Request) Result {
	return r.ExecuteWithConfig(ctx, req, r.cfg)
}

// ExecuteWithConfig makes at most cfg.MaxRetries+1 attempts. The delay
// between attempts is not interrupted by ctx.
func (r *Retrier) ExecuteWithConfig(ctx context.Context, req Request, cfg RetryConfig) Result {
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	req.Timeout = cfg.Timeout

	var (
		last     Result
		attempts int
	)
	operation := func() error {
		attemptID := ulid.Make().String()
		attempts++
		last = r.doer.Execute(ctx, req)

		entry := r.log.WithFields(logrus.Fields{
			"attempt_id": attemptID,
			"attempt":    attempts,
			"method":     last.Method,
			"endpoint":   last.Endpoint,
			"outcome":    last.Kind.String(),
		})
		switch last.Kind {
		case KindSuccess:
			entry.Debug("request attempt succeeded")
			return nil
		case KindTimeout:
			entry.Warn("request attempt timed out")
			return errAttemptTimedOut
		default:
			entry.Debug("request attempt failed without retry")
			return backoff.Permanent(last.Err())
		}
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(cfg.RetryDelay), uint64(maxRetries))
	_ = backoff.Retry(operation, policy)

	last.Attempts = attempts
	return last
}
