package models

import (
	"strings"
	"time"
)

// Order represents a booking record held in the order store
type Order struct {
	ID           string         `json:"id"`
	FlightNumber string         `json:"flightNumber"`
	Route        Route          `json:"route"`
	Date         time.Time      `json:"date"`
	Time         TimeRange      `json:"time"`
	Passengers   int            `json:"passengers"`
	FareClass    FareClass      `json:"class"`
	Price        float64        `json:"price"`
	Status       OrderStatus    `json:"status"`
	BookingDate  time.Time      `json:"bookingDate"`
	Seat         SeatAssignment `json:"seat"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// StatusFilterAll matches every order status.
const StatusFilterAll = "all"

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Route is an origin/destination pair
type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

func (r Route) String() string {
	return r.Origin + " → " + r.Destination
}

// TimeRange holds departure and arrival clock times, e.g. "14:20" and "17:35"
type TimeRange struct {
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
}

func (t TimeRange) String() string {
	return t.Departure + " - " + t.Arrival
}

type FareClass string

const (
	FareClassEconomy  FareClass = "Economy"
	FareClassBusiness FareClass = "Business"
	FareClassFirst    FareClass = "First"
)

// Seat placeholders used when an order carries no seat codes.
const (
	SeatPlaceholderUnassigned = "unassigned"
	SeatPlaceholderVoided     = "voided"
)

// SeatAssignment is either unset, one seat code, several codes for a
// multi-passenger order, or a placeholder.
type SeatAssignment struct {
	Codes       []string `json:"codes,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// SingleSeat assigns exactly one seat code.
func SingleSeat(code string) SeatAssignment {
	return SeatAssignment{Codes: []string{code}}
}

// Unassigned returns the literal unassigned placeholder.
func Unassigned() SeatAssignment {
	return SeatAssignment{Placeholder: SeatPlaceholderUnassigned}
}

// IsUnassigned is true for an unset assignment or the unassigned placeholder.
func (s SeatAssignment) IsUnassigned() bool {
	if len(s.Codes) > 0 {
		return false
	}
	return s.Placeholder == "" || s.Placeholder == SeatPlaceholderUnassigned
}

func (s SeatAssignment) String() string {
	if len(s.Codes) > 0 {
		return strings.Join(s.Codes, ", ")
	}
	return s.Placeholder
}

// Clone returns a copy that shares no backing array with s.
func (s SeatAssignment) Clone() SeatAssignment {
	out := SeatAssignment{Placeholder: s.Placeholder}
	if len(s.Codes) > 0 {
		out.Codes = append([]string(nil), s.Codes...)
	}
	return out
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	o.Seat = o.Seat.Clone()
	return o
}

// OrderStats counts orders per status for the order screen summary
type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}
