package application

import (
	"context"
	"time"

	"github.com/bnema/shopassist/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	DefaultProbeTimeout = 5 * time.Second
	DefaultProbeDelay   = 2 * time.Second
)

type ConnectivityMonitor struct {
	prober ports.Prober
	log    logrus.FieldLogger
}

func NewConnectivityMonitor(prober ports.Prober, log logrus.FieldLogger) *ConnectivityMonitor {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &ConnectivityMonitor{prober: prober, log: log}
}

func (m *ConnectivityMonitor) Probe(ctx context.Context, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	if err := m.prober.Ping(ctx, timeout); err != nil {
		m.log.WithError(err).Debug("backend probe failed")
		return false
	}

	return true
}

// CheckAfter waits for delay and then probes. It returns false without
// probing if ctx ends first.
func (m *ConnectivityMonitor) CheckAfter(ctx context.Context, delay time.Duration, timeout time.Duration) bool {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
	}

	return m.Probe(ctx, timeout)
}

// Watch probes immediately and then every interval until ctx ends, calling
// onChange with the first result and on every change after that.
func (m *ConnectivityMonitor) Watch(ctx context.Context, interval time.Duration, timeout time.Duration, onChange func(reachable bool)) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	reachable := m.Probe(ctx, timeout)
	if ctx.Err() != nil {
		return
	}
	onChange(reachable)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			next := m.Probe(ctx, timeout)
			if ctx.Err() != nil {
				return
			}
			if next != reachable {
				reachable = next
				onChange(reachable)
			}
		}
	}
}
