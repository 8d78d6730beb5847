package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ramenku/ramenku/internal/storage"
)

const orderKeyPrefix = "ramen-orders-"

func orderKey(userID uuid.UUID) string {
	return orderKeyPrefix + userID.String()
}

// Ledger is the append-only, per-user persisted order collection. Each user's
// orders live under their own storage key, newest first; that prepend order is
// the durable, observable one.
type Ledger struct {
	store storage.Store
}

func NewLedger(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Record prepends the order to its owner's sequence in one atomic step.
func (l *Ledger) Record(ctx context.Context, o *Order) error {
	err := l.store.Update(ctx, orderKey(o.UserID), func(old []byte) ([]byte, error) {
		existing, err := decodeOrders(old)
		if err != nil {
			return nil, err
		}
		return json.Marshal(append([]Order{*o}, existing...))
	})
	if err != nil {
		return fmt.Errorf("order: failed to record order %s: %w", o.ID, err)
	}

	log.Info().Stringer("order_id", o.ID).Stringer("user_id", o.UserID).Int64("total", o.TotalPrice).Msg("Recorded order")
	return nil
}

// ListFor returns the user's orders newest first. A user with no orders gets
// an empty sequence, not an error.
func (l *Ledger) ListFor(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	raw, err := l.store.Get(ctx, orderKey(userID))
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("order: failed to read orders for user %s: %w", userID, err)
	}

	orders, err := decodeOrders(raw)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus replaces the status of one order in place, leaving every other
// field untouched. The transition is validated against the stored status
// inside the same atomic update, so a concurrent change cannot slip an
// illegal step through. An unknown order id leaves the sequence unmodified;
// not found is a no-op here, as everywhere else in this design.
func (l *Ledger) UpdateStatus(ctx context.Context, orderID, userID uuid.UUID, newStatus Status) error {
	err := l.store.Update(ctx, orderKey(userID), func(old []byte) ([]byte, error) {
		orders, err := decodeOrders(old)
		if err != nil {
			return nil, err
		}

		found := false
		for i := range orders {
			if orders[i].ID == orderID {
				if !CanTransition(orders[i].Status, newStatus) {
					return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, orders[i].Status, newStatus)
				}
				orders[i].Status = newStatus
				found = true
				break
			}
		}
		if !found {
			log.Warn().Stringer("order_id", orderID).Stringer("user_id", userID).Msg("Order not found for status update")
			return old, nil
		}
		return json.Marshal(orders)
	})
	if errors.Is(err, ErrInvalidStatusTransition) {
		return err
	}
	if err != nil {
		return fmt.Errorf("order: failed to update status of order %s: %w", orderID, err)
	}
	return nil
}

func decodeOrders(raw []byte) ([]Order, error) {
	if raw == nil {
		return nil, nil
	}
	var orders []Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("order: failed to decode order sequence: %w", err)
	}
	return orders, nil
}
