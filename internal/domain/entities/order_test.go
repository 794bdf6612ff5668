package entities

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	legal := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPending, OrderStatusPaymentPending},
		{OrderStatusPending, OrderStatusInProgress},
		{OrderStatusPaymentPending, OrderStatusPaymentConfirmed},
		{OrderStatusPaymentConfirmed, OrderStatusInProgress},
		{OrderStatusInProgress, OrderStatusReview},
		{OrderStatusReview, OrderStatusRevisionRequested},
		{OrderStatusReview, OrderStatusCompleted},
		{OrderStatusRevisionRequested, OrderStatusInProgress},
	}
	for _, tr := range legal {
		if !tr.from.CanTransitionTo(tr.to) {
			t.Errorf("expected %s -> %s to be legal", tr.from, tr.to)
		}
	}

	illegal := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPending, OrderStatusCompleted},
		{OrderStatusPending, OrderStatusReview},
		{OrderStatusPaymentPending, OrderStatusInProgress},
		{OrderStatusInProgress, OrderStatusCompleted},
		{OrderStatusReview, OrderStatusPending},
		{OrderStatusCompleted, OrderStatusInProgress},
		{OrderStatusCancelled, OrderStatusPending},
		{OrderStatusCompleted, OrderStatusCancelled},
	}
	for _, tr := range illegal {
		if tr.from.CanTransitionTo(tr.to) {
			t.Errorf("expected %s -> %s to be illegal", tr.from, tr.to)
		}
	}
}

func TestOrderStatusCancellableFromEveryNonTerminalState(t *testing.T) {
	nonTerminal := []OrderStatus{
		OrderStatusPending,
		OrderStatusPaymentPending,
		OrderStatusPaymentConfirmed,
		OrderStatusInProgress,
		OrderStatusReview,
		OrderStatusRevisionRequested,
	}
	for _, from := range nonTerminal {
		if !from.CanTransitionTo(OrderStatusCancelled) {
			t.Errorf("expected %s -> cancelled to be legal", from)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled} {
		if !s.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusReview, OrderStatusRevisionRequested} {
		if s.IsTerminal() {
			t.Errorf("expected %s to be non-terminal", s)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	if !OrderStatusRevisionRequested.Valid() {
		t.Fatalf("expected revision_requested to be valid")
	}
	if OrderStatus("floating").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}
