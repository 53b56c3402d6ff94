package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/shopassist/internal/adapters/kvstore"
	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/ports"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

func newTestState(t *testing.T) ports.StateStore {
	t.Helper()

	backend, closeFn, err := kvstore.OpenBackend(kvstore.BackendTOML, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	logger, _ := logtest.NewNullLogger()
	return kvstore.NewJSONStore(backend, logger)
}

type staticToken string

func (s staticToken) AuthToken() string {
	return string(s)
}

// fakeCartBackend is an in-memory cart gateway that records how it is used.
type fakeCartBackend struct {
	mu         sync.Mutex
	carts      map[string][]domain.LineItem
	tokens     map[string]string
	nextID     int
	failSKUs   map[string]bool
	createErr  error
	inFlight   map[string]int
	maxFlight  int
	creates    atomic.Int32
	adds       atomic.Int32
	gets       atomic.Int32
	getStarted chan struct{}
	getRelease chan struct{}
}

func newFakeCartBackend() *fakeCartBackend {
	return &fakeCartBackend{
		carts:    map[string][]domain.LineItem{},
		tokens:   map[string]string{},
		failSKUs: map[string]bool{},
		inFlight: map[string]int{},
	}
}

var _ ports.CartGateway = (*fakeCartBackend)(nil)

func (f *fakeCartBackend) CreateCart(_ context.Context, token string) (string, error) {
	f.creates.Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return "", f.createErr
	}

	f.nextID++
	prefix := "guest-"
	if token != "" {
		prefix = "auth-"
	}
	id := prefix + strconv.Itoa(f.nextID)
	f.carts[id] = nil
	f.tokens[id] = token
	return id, nil
}

func (f *fakeCartBackend) GetCart(_ context.Context, cartID string, _ string) (domain.Cart, error) {
	f.gets.Add(1)
	if f.getStarted != nil {
		select {
		case f.getStarted <- struct{}{}:
		default:
		}
	}
	if f.getRelease != nil {
		<-f.getRelease
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	items, ok := f.carts[cartID]
	if !ok {
		return domain.Cart{}, fmt.Errorf("cart %s: %w", cartID, domain.ErrAPIRejected)
	}

	return domain.Cart{ID: cartID, Items: append([]domain.LineItem(nil), items...)}, nil
}

func (f *fakeCartBackend) AddItem(_ context.Context, cartID string, sku string, quantity int, _ string) error {
	f.adds.Add(1)

	f.mu.Lock()
	f.inFlight[cartID]++
	if f.inFlight[cartID] > f.maxFlight {
		f.maxFlight = f.inFlight[cartID]
	}
	f.mu.Unlock()

	time.Sleep(2 * time.Millisecond)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight[cartID]--

	if f.failSKUs[sku] {
		return fmt.Errorf("%w: %s is out of stock", domain.ErrCartRejected, sku)
	}
	items, ok := f.carts[cartID]
	if !ok {
		return errors.New("unknown cart")
	}
	for i := range items {
		if items[i].SKU == sku {
			items[i].Quantity += quantity
			f.carts[cartID] = items
			return nil
		}
	}
	f.carts[cartID] = append(items, domain.LineItem{SKU: sku, ProductName: "Product " + sku, Quantity: quantity})
	return nil
}

func (f *fakeCartBackend) itemsOf(cartID string) []domain.LineItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.LineItem(nil), f.carts[cartID]...)
}
