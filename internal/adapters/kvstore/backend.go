package kvstore

import (
	"fmt"
	"path/filepath"
	"strings"

	filestore "github.com/bnema/shopassist/internal/adapters/kvstore/file"
	sqlitestore "github.com/bnema/shopassist/internal/adapters/kvstore/sqlite"
	tomlstore "github.com/bnema/shopassist/internal/adapters/kvstore/toml"
	"github.com/bnema/shopassist/internal/ports"
)

const (
	BackendTOML   = "toml"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// OpenBackend returns the named store rooted at dir and a func that
// releases it.
func OpenBackend(kind string, dir string) (ports.KVStore, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", BackendTOML:
		store, err := tomlstore.NewStore(filepath.Join(dir, "state.toml"))
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case BackendFile:
		return filestore.NewStore(filepath.Join(dir, "state")), noop, nil
	case BackendSQLite:
		store, err := sqlitestore.Open(filepath.Join(dir, "state.db"))
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown state backend %q", kind)
	}
}
