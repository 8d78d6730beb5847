package cart

import (
	"sync"

	"github.com/gofrs/uuid"
)

// Registry hands out one ledger per user, created lazily. Ledgers live in
// process memory only.
type Registry struct {
	mu      sync.Mutex
	ledgers map[uuid.UUID]*Ledger
}

func NewRegistry() *Registry {
	return &Registry{ledgers: make(map[uuid.UUID]*Ledger)}
}

func (r *Registry) For(userID uuid.UUID) *Ledger {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, ok := r.ledgers[userID]
	if !ok {
		ledger = NewLedger()
		r.ledgers[userID] = ledger
	}
	return ledger
}
