package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ramenku/ramenku/internal/cart"
	"github.com/ramenku/ramenku/internal/catalog"
	"github.com/ramenku/ramenku/internal/order"
	"github.com/ramenku/ramenku/internal/storage"
)

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewV4()
	require.NoError(t, err)
	return id
}

func testOrder(t *testing.T, userID uuid.UUID, createdAt time.Time) *order.Order {
	t.Helper()

	entry, ok := catalog.New().ByID("shoyu-classic")
	require.True(t, ok)

	item, err := cart.NewLineItem(entry, 2, "Sedang", []string{"nori"}, "")
	require.NoError(t, err)

	return &order.Order{
		ID:            mustUUID(t),
		UserID:        userID,
		UserName:      "Budi Santoso",
		Items:         []cart.LineItem{item},
		TotalPrice:    item.Total(),
		PaymentMethod: "E-Wallet",
		Status:        order.StatusPending,
		CreatedAt:     createdAt,
	}
}

func TestLedger_RecordThenListFor(t *testing.T) {
	ledger := order.NewLedger(storage.NewMemory())
	userID := mustUUID(t)

	placed := testOrder(t, userID, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, ledger.Record(context.Background(), placed))

	orders, err := ledger.ListFor(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Empty(t, cmp.Diff(*placed, orders[0]), "the listed order must deep-equal the recorded one")
}

func TestLedger_RecordPrependsNewestFirst(t *testing.T) {
	ledger := order.NewLedger(storage.NewMemory())
	userID := mustUUID(t)

	older := testOrder(t, userID, time.Now().UTC().Add(-time.Hour).Truncate(time.Second))
	newer := testOrder(t, userID, time.Now().UTC().Truncate(time.Second))

	require.NoError(t, ledger.Record(context.Background(), older))
	require.NoError(t, ledger.Record(context.Background(), newer))

	orders, err := ledger.ListFor(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, newer.ID, orders[0].ID)
	require.Equal(t, older.ID, orders[1].ID)
}

func TestLedger_ListForUnknownUserIsEmpty(t *testing.T) {
	ledger := order.NewLedger(storage.NewMemory())

	orders, err := ledger.ListFor(context.Background(), mustUUID(t))
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestLedger_CreatedAtSurvivesTheRoundTrip(t *testing.T) {
	ledger := order.NewLedger(storage.NewMemory())
	userID := mustUUID(t)

	createdAt := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)
	placed := testOrder(t, userID, createdAt)
	require.NoError(t, ledger.Record(context.Background(), placed))

	orders, err := ledger.ListFor(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, orders[0].CreatedAt.Equal(createdAt))
}

func TestLedger_UpdateStatusReplacesOnlyStatus(t *testing.T) {
	ledger := order.NewLedger(storage.NewMemory())
	userID := mustUUID(t)

	placed := testOrder(t, userID, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, ledger.Record(context.Background(), placed))

	require.NoError(t, ledger.UpdateStatus(context.Background(), placed.ID, userID, order.StatusConfirmed))

	orders, err := ledger.ListFor(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, order.StatusConfirmed, orders[0].Status)

	expected := *placed
	expected.Status = order.StatusConfirmed
	require.Empty(t, cmp.Diff(expected, orders[0]), "every field but status must be untouched")
}

func TestLedger_UpdateStatusValidatesAgainstStoredStatus(t *testing.T) {
	ledger := order.NewLedger(storage.NewMemory())
	userID := mustUUID(t)

	placed := testOrder(t, userID, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, ledger.Record(context.Background(), placed))

	// The stored order is pending; jumping straight to delivered must abort
	// the update without touching the persisted sequence.
	err := ledger.UpdateStatus(context.Background(), placed.ID, userID, order.StatusDelivered)
	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)

	orders, err := ledger.ListFor(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(*placed, orders[0]))
}

func TestLedger_UpdateStatusChecksTheCurrentStatusNotACachedOne(t *testing.T) {
	ledger := order.NewLedger(storage.NewMemory())
	userID := mustUUID(t)

	placed := testOrder(t, userID, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, ledger.Record(context.Background(), placed))

	// First writer confirms the order; a second writer still holding the
	// pending view now retries the same step and must be rejected against
	// the stored status.
	require.NoError(t, ledger.UpdateStatus(context.Background(), placed.ID, userID, order.StatusConfirmed))

	err := ledger.UpdateStatus(context.Background(), placed.ID, userID, order.StatusConfirmed)
	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)

	orders, err := ledger.ListFor(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, order.StatusConfirmed, orders[0].Status)
}

func TestLedger_UpdateStatusUnknownOrderIsANoOp(t *testing.T) {
	ledger := order.NewLedger(storage.NewMemory())
	userID := mustUUID(t)

	placed := testOrder(t, userID, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, ledger.Record(context.Background(), placed))

	before, err := ledger.ListFor(context.Background(), userID)
	require.NoError(t, err)

	require.NoError(t, ledger.UpdateStatus(context.Background(), mustUUID(t), userID, order.StatusConfirmed))

	after, err := ledger.ListFor(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(before, after), "an unknown order id must leave the ledger unchanged")
}

func TestLedger_OrdersNeverMoveBetweenUsers(t *testing.T) {
	ledger := order.NewLedger(storage.NewMemory())
	alice := mustUUID(t)
	bob := mustUUID(t)

	placed := testOrder(t, alice, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, ledger.Record(context.Background(), placed))

	// Updating under the wrong owner finds nothing and changes nothing.
	require.NoError(t, ledger.UpdateStatus(context.Background(), placed.ID, bob, order.StatusConfirmed))

	orders, err := ledger.ListFor(context.Background(), alice)
	require.NoError(t, err)
	require.Equal(t, order.StatusPending, orders[0].Status)

	bobOrders, err := ledger.ListFor(context.Background(), bob)
	require.NoError(t, err)
	require.Empty(t, bobOrders)
}
