package order

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/ramenku/ramenku/internal/cart"
)

// Order is a finalized checkout. Items are a value-copy snapshot of the cart
// and TotalPrice is computed once at creation; only Status changes afterwards.
// UserName is captured at creation and never re-derived. CreatedAt round-trips
// through RFC 3339 in the stored JSON.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	UserName      string          `json:"userName"`
	Items         []cart.LineItem `json:"items"`
	TotalPrice    int64           `json:"totalPrice"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}
