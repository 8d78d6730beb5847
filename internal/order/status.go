package order

import "errors"

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusDelivered  Status = "delivered"
)

var (
	ErrUnknownStatus           = errors.New("order: unknown status")
	ErrInvalidStatusTransition = errors.New("order: invalid status transition")
)

// Every order starts pending and walks the chain one step at a time, driven
// by the admin board. pending -> pending is the "reject" button: a reset that
// keeps the order waiting for confirmation.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusPending:   true,
	},
	StatusConfirmed: {
		StatusProcessing: true,
	},
	StatusProcessing: {
		StatusCompleted: true,
	},
	StatusCompleted: {
		StatusDelivered: true,
	},
	StatusDelivered: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func CanTransition(from, to Status) bool {
	return allowedTransitions[from][to]
}
