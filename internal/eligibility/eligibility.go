// Package eligibility decides whether seat selection is offered for an order.
//
// The dashboard and the order list disagree on whether the order must be
// confirmed. Both rules are kept as named variants.
package eligibility

import (
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
)

type Variant string

const (
	// StrictConfirmedOnly is the dashboard rule.
	StrictConfirmedOnly Variant = "strictConfirmedOnly"
	// AnyActiveStatus is the order-list rule; status is not checked.
	AnyActiveStatus Variant = "anyActiveStatus"
)

type Predicate struct {
	variant Variant
}

func New(v Variant) Predicate {
	return Predicate{variant: v}
}

func (p Predicate) Variant() Variant {
	return p.variant
}

// IsSeatSelectable is true when the flight date lies strictly after now's
// calendar date, the seat is unassigned, and the variant's status rule holds.
func (p Predicate) IsSeatSelectable(order models.Order, now time.Time) bool {
	if p.variant == StrictConfirmedOnly && order.Status != models.OrderStatusConfirmed {
		return false
	}
	if !afterDay(order.Date, now) {
		return false
	}
	return order.Seat.IsUnassigned()
}

// First returns the index of the first selectable order, or -1.
func (p Predicate) First(orders []models.Order, now time.Time) int {
	for i, o := range orders {
		if p.IsSeatSelectable(o, now) {
			return i
		}
	}
	return -1
}

// afterDay compares UTC calendar days, the calendar order dates are stored in.
func afterDay(date, now time.Time) bool {
	dy, dm, dd := date.UTC().Date()
	ny, nm, nd := now.UTC().Date()
	d := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	n := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return d.After(n)
}
