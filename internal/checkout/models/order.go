// Package models defines orders and checkout results.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	id "policycore/pkg/domain"
	"policycore/pkg/platform/sentinel"
)

// Status is the lifecycle state of an order. The set is closed: an order is
// either open or paid. A rejected payment leaves the order open.
type Status string

const (
	StatusOpen Status = "open"
	StatusPaid Status = "paid"
)

func (s Status) String() string {
	return string(s)
}

// Order is a customer's purchase. Status changes only through MarkPaid.
type Order struct {
	ID           id.OrderID
	CustomerName string
	Total        decimal.Decimal
	status       Status
}

// NewOrder creates an open order with a fresh ID.
func NewOrder(customerName string, total decimal.Decimal) *Order {
	return &Order{
		ID:           id.NewOrderID(),
		CustomerName: strings.TrimSpace(customerName),
		Total:        total,
		status:       StatusOpen,
	}
}

// Status returns the current state. The zero Order reports open.
func (o *Order) Status() Status {
	if o.status == "" {
		return StatusOpen
	}
	return o.status
}

// IsOpen reports whether the order still awaits payment.
func (o *Order) IsOpen() bool {
	return o.Status() == StatusOpen
}

// MarkPaid moves an open order to paid. Any other starting state is
// rejected with sentinel.ErrInvalidState.
func (o *Order) MarkPaid() error {
	if !o.IsOpen() {
		return fmt.Errorf("mark order %s paid from %s: %w", o.ID, o.Status(), sentinel.ErrInvalidState)
	}
	o.status = StatusPaid
	return nil
}
