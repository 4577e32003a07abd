package models

import "time"

// BookingWorkflowInput represents input for the booking workflow
type BookingWorkflowInput struct {
	BookingID     string        `json:"bookingId"`
	SessionID     string        `json:"sessionId"`
	FlightNumber  string        `json:"flightNumber"`
	Passenger     string        `json:"passenger"`
	RedirectDelay time.Duration `json:"redirectDelay"`
}

type BookingStatus string

const (
	BookingStatusPassengerSelected BookingStatus = "passenger_selected"
	BookingStatusAwaitingPayment   BookingStatus = "awaiting_payment"
	BookingStatusCancelled         BookingStatus = "cancelled"
)

// BookingWorkflowState represents the current state of the booking workflow
type BookingWorkflowState struct {
	BookingID   string        `json:"bookingId"`
	Status      BookingStatus `json:"status"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// BookingWorkflowResult is returned when the booking workflow finishes
type BookingWorkflowResult struct {
	BookingID string        `json:"bookingId"`
	Status    BookingStatus `json:"status"`
}

// Signals for workflow communication
const (
	SignalCancelBooking = "cancel_booking"
)

// CancelBookingSignal is the payload of the cancel signal
type CancelBookingSignal struct {
	Reason string `json:"reason,omitempty"`
}

// Queries for workflow state
const (
	QueryGetState = "get_state"
)

// PublishNotificationInput is the activity input for delivering a notification to a session
type PublishNotificationInput struct {
	SessionID    string       `json:"sessionId"`
	Notification Notification `json:"notification"`
}
