package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/ports/mocks"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartService(t *testing.T, backend *fakeCartBackend, token string) *CartService {
	t.Helper()

	logger, _ := logtest.NewNullLogger()
	return NewCartService(backend, newTestState(t), staticToken(token), logger)
}

func TestCartAddItemCreatesGuestCartOnFirstAdd(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	service := newTestCartService(t, backend, "")

	cart, err := service.AddItem(context.Background(), AddItemCommand{SKU: "rice-5", Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, "guest-1", cart.ID)
	assert.Equal(t, domain.CartKindGuest, cart.Kind)
	assert.Equal(t, 2, cart.ItemCount())
	assert.Equal(t, "guest-1", service.CartID())
	assert.Equal(t, "guest-1", service.GuestCartID())
	assert.Equal(t, 2, service.ItemCount())
	assert.Equal(t, int32(1), backend.creates.Load())
}

func TestCartAddItemUsesAuthenticatedCartWhenSignedIn(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	service := newTestCartService(t, backend, "tok")

	cart, err := service.AddItem(context.Background(), AddItemCommand{SKU: "milk", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "auth-1", cart.ID)
	assert.Equal(t, domain.CartKindAuthenticated, cart.Kind)
	assert.Empty(t, service.GuestCartID())
}

func TestCartAddItemRejectsInvalidQuantityWithoutBackendCall(t *testing.T) {
	t.Parallel()

	gateway := mocks.NewMockCartGateway(t)
	logger, _ := logtest.NewNullLogger()
	service := NewCartService(gateway, newTestState(t), staticToken(""), logger)

	for _, quantity := range []int{0, -1, 100} {
		_, err := service.AddItem(context.Background(), AddItemCommand{SKU: "rice", Quantity: quantity})
		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}

	_, err := service.AddItem(context.Background(), AddItemCommand{SKU: " ", Quantity: 1})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCartAddItemSurfacesBackendRejection(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	backend.failSKUs["gone"] = true
	service := newTestCartService(t, backend, "")

	_, err := service.AddItem(context.Background(), AddItemCommand{SKU: "gone", Quantity: 1})
	require.ErrorIs(t, err, domain.ErrCartRejected)
	assert.Equal(t, 0, service.ItemCount())
}

func TestCartConcurrentAddsAreSerializedPerCart(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	service := newTestCartService(t, backend, "")
	ctx := context.Background()

	_, err := service.CreateGuestCart(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.AddItem(ctx, AddItemCommand{SKU: "egg", Quantity: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, backend.maxFlight)
	assert.Equal(t, int32(10), backend.adds.Load())
	assert.Equal(t, int32(1), backend.creates.Load())

	cart, err := service.FetchCart(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 10, cart.ItemCount())
}

func TestCartConcurrentFirstAddsCreateSingleCart(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	service := newTestCartService(t, backend, "")

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.AddItem(context.Background(), AddItemCommand{SKU: "salt", Quantity: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), backend.creates.Load())
	assert.Equal(t, 5, backend.itemsOf(service.CartID())[0].Quantity)
}

func TestCartConcurrentFetchesShareOneCall(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	service := newTestCartService(t, backend, "")
	ctx := context.Background()

	_, err := service.CreateGuestCart(ctx)
	require.NoError(t, err)

	backend.getStarted = make(chan struct{}, 1)
	backend.getRelease = make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.FetchCart(ctx, "")
			assert.NoError(t, err)
		}()
	}

	<-backend.getStarted
	time.Sleep(50 * time.Millisecond)
	close(backend.getRelease)
	wg.Wait()

	assert.Equal(t, int32(1), backend.gets.Load())
}

// snapshotThenWaitBackend reads the cart before blocking, so a held read
// returns contents from before any later add.
type snapshotThenWaitBackend struct {
	*fakeCartBackend
	started chan struct{}
	release chan struct{}
}

func (b *snapshotThenWaitBackend) GetCart(ctx context.Context, cartID string, token string) (domain.Cart, error) {
	cart, err := b.fakeCartBackend.GetCart(ctx, cartID, token)
	select {
	case b.started <- struct{}{}:
	default:
	}
	<-b.release

	return cart, err
}

func TestCartConcurrentAddsEachSeeTheirOwnItem(t *testing.T) {
	t.Parallel()

	backend := &snapshotThenWaitBackend{
		fakeCartBackend: newFakeCartBackend(),
		started:         make(chan struct{}, 1),
		release:         make(chan struct{}),
	}
	logger, _ := logtest.NewNullLogger()
	service := NewCartService(backend, newTestState(t), staticToken(""), logger)
	ctx := context.Background()

	_, err := service.CreateGuestCart(ctx)
	require.NoError(t, err)

	first := make(chan domain.Cart, 1)
	go func() {
		cart, err := service.AddItem(ctx, AddItemCommand{SKU: "rice", Quantity: 1})
		assert.NoError(t, err)
		first <- cart
	}()
	<-backend.started

	second := make(chan domain.Cart, 1)
	go func() {
		cart, err := service.AddItem(ctx, AddItemCommand{SKU: "rice", Quantity: 1})
		assert.NoError(t, err)
		second <- cart
	}()

	time.Sleep(20 * time.Millisecond)
	close(backend.release)

	assert.Equal(t, 1, (<-first).ItemCount())
	assert.Equal(t, 2, (<-second).ItemCount())
	assert.Equal(t, 2, service.ItemCount())
	assert.Equal(t, 2, backend.itemsOf(service.CartID())[0].Quantity)
}

func TestCartFetchWithoutActiveCart(t *testing.T) {
	t.Parallel()

	service := newTestCartService(t, newFakeCartBackend(), "")

	_, err := service.FetchCart(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrNoActiveCart)
}

func TestCartFetchOfOtherCartLeavesActiveCartUntouched(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	service := newTestCartService(t, backend, "")
	ctx := context.Background()

	_, err := service.AddItem(ctx, AddItemCommand{SKU: "a", Quantity: 1})
	require.NoError(t, err)

	otherID, err := backend.CreateCart(ctx, "")
	require.NoError(t, err)
	require.NoError(t, backend.AddItem(ctx, otherID, "b", 4, ""))

	other, err := service.FetchCart(ctx, otherID)
	require.NoError(t, err)
	assert.Equal(t, 4, other.ItemCount())
	assert.Equal(t, 1, service.ItemCount())
}

func TestCartTransferItemsReportsPartialFailure(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	service := newTestCartService(t, backend, "")
	ctx := context.Background()

	guestID, err := backend.CreateCart(ctx, "")
	require.NoError(t, err)
	require.NoError(t, backend.AddItem(ctx, guestID, "ok-1", 2, ""))
	require.NoError(t, backend.AddItem(ctx, guestID, "gone", 1, ""))
	require.NoError(t, backend.AddItem(ctx, guestID, "ok-2", 3, ""))
	backend.failSKUs["gone"] = true

	targetID, err := backend.CreateCart(ctx, "tok")
	require.NoError(t, err)

	report, err := service.TransferItems(ctx, guestID, targetID)
	require.NoError(t, err)
	assert.False(t, report.Complete())
	require.Len(t, report.Transferred, 2)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "gone", report.Failed[0].Item.SKU)
	assert.ErrorIs(t, report.Failed[0].Err, domain.ErrCartRejected)

	items := backend.itemsOf(targetID)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 3, items[1].Quantity)
}

func TestCartTransferFailsWhenSourceUnreadable(t *testing.T) {
	t.Parallel()

	gateway := mocks.NewMockCartGateway(t)
	logger, _ := logtest.NewNullLogger()
	service := NewCartService(gateway, newTestState(t), staticToken("tok"), logger)

	gateway.EXPECT().GetCart(mockAnyContext(), "guest-1", "tok").Return(domain.Cart{}, fmt.Errorf("proxy: %w", domain.ErrNetworkUnavailable)).Once()

	_, err := service.TransferItems(context.Background(), "guest-1", "auth-1")
	require.ErrorIs(t, err, domain.ErrNetworkUnavailable)
}

func TestCartLoadRestoresPersistedIDs(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	state := newTestState(t)
	logger, _ := logtest.NewNullLogger()
	first := NewCartService(backend, state, staticToken(""), logger)

	_, err := first.AddItem(context.Background(), AddItemCommand{SKU: "a", Quantity: 1})
	require.NoError(t, err)

	second := NewCartService(backend, state, staticToken(""), logger)
	second.Load(context.Background())
	assert.Equal(t, first.CartID(), second.CartID())
	assert.Equal(t, first.GuestCartID(), second.GuestCartID())

	cart, err := second.FetchCart(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount())
}

func TestCartResetForgetsCarts(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	service := newTestCartService(t, backend, "")
	ctx := context.Background()

	_, err := service.AddItem(ctx, AddItemCommand{SKU: "a", Quantity: 1})
	require.NoError(t, err)

	service.Reset(ctx)
	assert.Empty(t, service.CartID())
	assert.Empty(t, service.GuestCartID())
	assert.Equal(t, 0, service.ItemCount())

	service.Load(ctx)
	assert.Empty(t, service.CartID())
}

func TestCartCreateGuestCartPropagatesFailure(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	backend.createErr = errors.New("both transports down")
	service := newTestCartService(t, backend, "")

	_, err := service.AddItem(context.Background(), AddItemCommand{SKU: "a", Quantity: 1})
	require.Error(t, err)
	assert.ErrorContains(t, err, "create guest cart")
	assert.Empty(t, service.CartID())
}

func TestCartRepeatedFetchIsStable(t *testing.T) {
	t.Parallel()

	backend := newFakeCartBackend()
	service := newTestCartService(t, backend, "")
	ctx := context.Background()

	_, err := service.AddItem(ctx, AddItemCommand{SKU: "SKU123", Quantity: 3})
	require.NoError(t, err)

	first, err := service.FetchCart(ctx, "")
	require.NoError(t, err)
	second, err := service.FetchCart(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, 3, first.ItemCount())
	assert.Equal(t, first.ItemCount(), second.ItemCount())
	assert.Equal(t, first.Items, second.Items)
}
