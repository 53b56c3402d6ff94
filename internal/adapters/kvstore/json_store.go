package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/ports"
	"github.com/sirupsen/logrus"
)

// JSONStore encodes values as JSON on top of a KVStore. Every backend or
// codec failure is logged and reported as a false return.
type JSONStore struct {
	backend ports.KVStore
	log     logrus.FieldLogger
}

var _ ports.StateStore = (*JSONStore)(nil)

func NewJSONStore(backend ports.KVStore, log logrus.FieldLogger) *JSONStore {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &JSONStore{backend: backend, log: log}
}

func (s *JSONStore) Load(ctx context.Context, key string, dst any) bool {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.log.WithError(err).WithField("key", key).Warn("state read failed")
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("state entry is not valid json")
		return false
	}

	return true
}

func (s *JSONStore) Save(ctx context.Context, key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("state encode failed")
		return false
	}

	if err := s.backend.Put(ctx, key, string(data)); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("state write failed")
		return false
	}

	return true
}

func (s *JSONStore) Remove(ctx context.Context, key string) bool {
	if err := s.backend.Delete(ctx, key); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("state delete failed")
		return false
	}

	return true
}
