package admin

import (
	"context"
	"fmt"
	"sort"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ramenku/ramenku/internal/account"
	"github.com/ramenku/ramenku/internal/order"
)

// Stats aggregates the global order view. The processing bucket counts
// confirmed and processing orders, the completed bucket counts completed and
// delivered ones, matching the original dashboard. Revenue ignores pending
// orders: money is not counted until an order is confirmed.
type Stats struct {
	Total           int   `json:"total"`
	PendingCount    int   `json:"pendingCount"`
	ProcessingCount int   `json:"processingCount"`
	CompletedCount  int   `json:"completedCount"`
	Revenue         int64 `json:"revenue"`
}

type Service interface {
	ListAll(ctx context.Context) ([]order.Order, error)
	ListByStatus(ctx context.Context, status order.Status) ([]order.Order, error)
	SetStatus(ctx context.Context, orderID, userID uuid.UUID, newStatus order.Status) error
	Statistics(ctx context.Context) (Stats, error)
}

type service struct {
	accounts account.Service
	orders   *order.Ledger
}

func NewService(accounts account.Service, orders *order.Ledger) Service {
	return &service{accounts: accounts, orders: orders}
}

// ListAll unions every registered account's order ledger, newest first. The
// sort is stable, so orders created at the same instant keep their insertion
// order within their own user's sequence.
func (s *service) ListAll(ctx context.Context) ([]order.Order, error) {
	accs, err := s.accounts.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin: failed to list accounts: %w", err)
	}

	var all []order.Order
	for _, acc := range accs {
		userOrders, err := s.orders.ListFor(ctx, acc.ID)
		if err != nil {
			return nil, fmt.Errorf("admin: failed to list orders for user %s: %w", acc.ID, err)
		}
		all = append(all, userOrders...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (s *service) ListByStatus(ctx context.Context, status order.Status) ([]order.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", order.ErrUnknownStatus, status)
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]order.Order, 0, len(all))
	for _, o := range all {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// SetStatus applies one admin-driven transition to a specific user's order.
// The ledger validates the step against the stored status inside its atomic
// update; an unknown order is a no-op there. Callers re-pull ListAll
// afterwards; refreshes are pull-based throughout.
func (s *service) SetStatus(ctx context.Context, orderID, userID uuid.UUID, newStatus order.Status) error {
	if !newStatus.Valid() {
		return fmt.Errorf("%w: %q", order.ErrUnknownStatus, newStatus)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, userID, newStatus); err != nil {
		return err
	}

	log.Info().
		Stringer("order_id", orderID).
		Str("to", newStatus.String()).
		Msg("Order status updated")
	return nil
}

// Statistics is a pure aggregation over ListAll.
func (s *service) Statistics(ctx context.Context) (Stats, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: len(all)}
	for _, o := range all {
		switch o.Status {
		case order.StatusPending:
			stats.PendingCount++
		case order.StatusConfirmed, order.StatusProcessing:
			stats.ProcessingCount++
		case order.StatusCompleted, order.StatusDelivered:
			stats.CompletedCount++
		}
		if o.Status != order.StatusPending {
			stats.Revenue += o.TotalPrice
		}
	}
	return stats, nil
}
