package models

import "time"

type Status string

const (
	StatusPending             Status = "pending"
	StatusWaitingConfirmation Status = "waiting_confirmation"
	StatusProcessing          Status = "processing"
	StatusArbitrage           Status = "arbitrage"
	StatusCompleted           Status = "completed"
	StatusCanceled            Status = "canceled"
)

var Statuses = []Status{
	StatusPending,
	StatusWaitingConfirmation,
	StatusProcessing,
	StatusArbitrage,
	StatusCompleted,
	StatusCanceled,
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}

	return false
}

func (s Status) ToString() string {
	return string(s)
}

// transitions is the single table of allowed status moves for both books.
//
// NOTE: completed and canceled are not terminal here. Orders can be moved
// back into active states from either of them. This matches current
// product behaviour and must not be tightened without product sign-off.
// arbitrage has no row, so nothing leaves it.
var transitions = map[Status][]Status{
	StatusPending:             {StatusProcessing, StatusCanceled, StatusCompleted},
	StatusProcessing:          {StatusCompleted, StatusArbitrage, StatusWaitingConfirmation},
	StatusWaitingConfirmation: {StatusCompleted, StatusArbitrage},
	StatusCompleted:           {StatusCanceled, StatusProcessing, StatusPending, StatusArbitrage, StatusWaitingConfirmation},
	StatusCanceled:            {StatusCompleted, StatusProcessing, StatusPending, StatusArbitrage, StatusWaitingConfirmation},
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}

	return false
}

// AllowedTransitions returns a copy of the targets reachable from s.
func AllowedTransitions(s Status) []Status {
	out := make([]Status, len(transitions[s]))
	copy(out, transitions[s])

	return out
}

// Transition moves the order to the requested status when the table allows
// it. On rejection the order is left untouched.
func (o *Order) Transition(to Status, now time.Time) error {
	if !CanTransition(o.Status, to) {
		return &InvalidTransitionError{From: o.Status, To: to}
	}

	o.Status = to
	o.UpdatedAt = now

	return nil
}

// Cancel is the owner-initiated cancel. It is guarded only by the
// completed/canceled check, not by the transition table.
func (o *Order) Cancel(now time.Time) error {
	if o.Status == StatusCompleted || o.Status == StatusCanceled {
		return &CancelNotAllowedError{OrderID: o.ID, Status: o.Status}
	}

	o.Status = StatusCanceled
	o.UpdatedAt = now

	return nil
}
