package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ramenku/ramenku/internal/account"
	"github.com/ramenku/ramenku/internal/cart"
)

var (
	ErrEmptyCart            = errors.New("order: cart is empty")
	ErrUnknownPaymentMethod = errors.New("order: unknown payment method")
)

// PaymentMethods are the labels the original storefront offered. Payment
// itself is mocked: checkout waits the configured delay, then succeeds.
var PaymentMethods = []string{"Transfer Bank", "E-Wallet", "Bayar di Tempat"}

func validPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

type Service interface {
	Checkout(ctx context.Context, sess *account.Session, ledger *cart.Ledger, paymentMethod string) (*Order, error)
}

type service struct {
	orders       *Ledger
	paymentDelay time.Duration
}

func NewService(orders *Ledger, paymentDelay time.Duration) Service {
	return &service{orders: orders, paymentDelay: paymentDelay}
}

// Checkout snapshots the cart into a new pending order, records it, and then
// consumes exactly the snapshotted items, so anything added to the cart while
// the payment was in flight survives for the next checkout. The payment wait
// has no cancellation path: once initiated it always completes and always
// succeeds.
func (s *service) Checkout(ctx context.Context, sess *account.Session, ledger *cart.Ledger, paymentMethod string) (*Order, error) {
	items := ledger.Snapshot()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if !validPaymentMethod(paymentMethod) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, paymentMethod)
	}

	// Simulated payment latency.
	time.Sleep(s.paymentDelay)

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("order: failed to generate order id: %w", err)
	}

	var total int64
	for _, item := range items {
		total += item.Total()
	}

	o := &Order{
		ID:            id,
		UserID:        sess.ID,
		UserName:      sess.Name,
		Items:         items,
		TotalPrice:    total,
		PaymentMethod: paymentMethod,
		Status:        StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orders.Record(ctx, o); err != nil {
		return nil, err
	}

	ledger.Consume(len(items))

	log.Info().Stringer("order_id", o.ID).Str("payment_method", paymentMethod).Msg("Checkout completed")
	return o, nil
}
