package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ramenku/ramenku/internal/account"
	"github.com/ramenku/ramenku/internal/cart"
	"github.com/ramenku/ramenku/internal/catalog"
	"github.com/ramenku/ramenku/internal/order"
	"github.com/ramenku/ramenku/internal/storage"
)

func checkoutFixture(t *testing.T) (order.Service, *order.Ledger, *account.Session, *cart.Ledger) {
	t.Helper()

	orders := order.NewLedger(storage.NewMemory())
	svc := order.NewService(orders, 0)

	sess := &account.Session{
		ID:    mustUUID(t),
		Name:  "Budi Santoso",
		Email: "budi@example.com",
		Role:  account.RoleUser,
	}

	menu := catalog.New()
	entry, ok := menu.ByID("shoyu-classic")
	require.True(t, ok)

	item, err := cart.NewLineItem(entry, 2, "Sedang", []string{"nori"}, "extra kuah")
	require.NoError(t, err)

	ledger := cart.NewLedger()
	ledger.Add(item)

	return svc, orders, sess, ledger
}

// brokenStore fails every write, standing in for a backend outage.
type brokenStore struct {
	storage.Store
}

func (brokenStore) Update(context.Context, string, storage.UpdateFunc) error {
	return errors.New("store is down")
}

// hookedStore runs a callback before each write, giving tests a window to
// interleave another actor between the snapshot and the cart consumption.
type hookedStore struct {
	storage.Store
	beforeUpdate func()
}

func (s hookedStore) Update(ctx context.Context, key string, fn storage.UpdateFunc) error {
	if s.beforeUpdate != nil {
		s.beforeUpdate()
	}
	return s.Store.Update(ctx, key, fn)
}

func TestService_CheckoutEmptyCart(t *testing.T) {
	svc, _, sess, _ := checkoutFixture(t)

	_, err := svc.Checkout(context.Background(), sess, cart.NewLedger(), "E-Wallet")
	require.ErrorIs(t, err, order.ErrEmptyCart)
}

func TestService_CheckoutUnknownPaymentMethod(t *testing.T) {
	svc, _, sess, ledger := checkoutFixture(t)

	_, err := svc.Checkout(context.Background(), sess, ledger, "Cek Kosong")
	require.ErrorIs(t, err, order.ErrUnknownPaymentMethod)
	require.Equal(t, 1, ledger.Len(), "a rejected checkout must not touch the cart")
}

func TestService_CheckoutPlacesPendingOrder(t *testing.T) {
	svc, orders, sess, ledger := checkoutFixture(t)

	// shoyu-classic 45000 + nori 5000, twice.
	require.Equal(t, int64(100000), ledger.Total())

	placed, err := svc.Checkout(context.Background(), sess, ledger, "Transfer Bank")
	require.NoError(t, err)

	require.Equal(t, order.StatusPending, placed.Status)
	require.Equal(t, sess.ID, placed.UserID)
	require.Equal(t, sess.Name, placed.UserName)
	require.Equal(t, "Transfer Bank", placed.PaymentMethod)
	require.Equal(t, int64(100000), placed.TotalPrice)
	require.Len(t, placed.Items, 1)
	require.False(t, placed.CreatedAt.IsZero())

	listed, err := orders.ListFor(context.Background(), sess.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, placed.ID, listed[0].ID)
}

func TestService_CheckoutClearsTheCart(t *testing.T) {
	svc, _, sess, ledger := checkoutFixture(t)

	_, err := svc.Checkout(context.Background(), sess, ledger, "Bayar di Tempat")
	require.NoError(t, err)
	require.Equal(t, 0, ledger.Len())
	require.Equal(t, int64(0), ledger.Total())
}

func TestService_CheckoutKeepsTheCartWhenRecordingFails(t *testing.T) {
	sess := &account.Session{ID: mustUUID(t), Name: "Budi Santoso", Role: account.RoleUser}

	entry, ok := catalog.New().ByID("shoyu-classic")
	require.True(t, ok)
	item, err := cart.NewLineItem(entry, 1, "Sedang", nil, "")
	require.NoError(t, err)

	ledger := cart.NewLedger()
	ledger.Add(item)

	svc := order.NewService(order.NewLedger(brokenStore{}), 0)

	_, err = svc.Checkout(context.Background(), sess, ledger, "E-Wallet")
	require.Error(t, err)
	require.Equal(t, 1, ledger.Len(), "a failed checkout must leave the cart intact")
}

func TestService_CheckoutKeepsItemsAddedDuringPayment(t *testing.T) {
	sess := &account.Session{ID: mustUUID(t), Name: "Budi Santoso", Role: account.RoleUser}

	menu := catalog.New()
	entry, ok := menu.ByID("shoyu-classic")
	require.True(t, ok)

	paid, err := cart.NewLineItem(entry, 1, "Sedang", nil, "paid")
	require.NoError(t, err)
	late, err := cart.NewLineItem(entry, 1, "Pedas", nil, "late")
	require.NoError(t, err)

	ledger := cart.NewLedger()
	ledger.Add(paid)

	// The late item lands while the checkout is mid-flight, after the
	// snapshot was taken.
	store := hookedStore{
		Store:        storage.NewMemory(),
		beforeUpdate: func() { ledger.Add(late) },
	}
	orders := order.NewLedger(store)
	svc := order.NewService(orders, 0)

	placed, err := svc.Checkout(context.Background(), sess, ledger, "E-Wallet")
	require.NoError(t, err)

	require.Len(t, placed.Items, 1)
	require.Equal(t, "paid", placed.Items[0].Notes)

	remaining := ledger.Items()
	require.Len(t, remaining, 1)
	require.Equal(t, "late", remaining[0].Notes, "an item added during payment must stay in the cart")
}

func TestService_CheckoutTwiceStacksNewestFirst(t *testing.T) {
	svc, orders, sess, ledger := checkoutFixture(t)

	first, err := svc.Checkout(context.Background(), sess, ledger, "E-Wallet")
	require.NoError(t, err)

	entry, ok := catalog.New().ByID("tonkotsu-special")
	require.True(t, ok)
	item, err := cart.NewLineItem(entry, 1, "Tidak Pedas", nil, "")
	require.NoError(t, err)
	ledger.Add(item)

	second, err := svc.Checkout(context.Background(), sess, ledger, "E-Wallet")
	require.NoError(t, err)

	listed, err := orders.ListFor(context.Background(), sess.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, second.ID, listed[0].ID)
	require.Equal(t, first.ID, listed[1].ID)
}
