package domain

import "slices"

var orderStateTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {OrderStatusRefunded},
	OrderStatusCancelled: {},
	OrderStatusRefunded:  {},
}

var cancellableStatuses = []OrderStatus{OrderStatusPending, OrderStatusConfirmed}

// AllowedTransitions returns the statuses reachable from current in one step.
// ok is false when current is not a known status.
func AllowedTransitions(current OrderStatus) (next []OrderStatus, ok bool) {
	next, ok = orderStateTransitions[current]
	if !ok {
		return nil, false
	}
	return slices.Clone(next), true
}

// CheckTransition validates current -> target. A status is never reachable from itself.
func CheckTransition(current, target OrderStatus) error {
	next, ok := AllowedTransitions(current)
	if !ok {
		return ErrUnknownOrderStatus
	}
	if !slices.Contains(next, target) {
		return &TransitionError{From: current, To: target, Allowed: next}
	}
	return nil
}

// CanBeCancelledByBuyer reports whether the buyer may still abort an order in this status.
func CanBeCancelledByBuyer(status OrderStatus) bool {
	return slices.Contains(cancellableStatuses, status)
}
