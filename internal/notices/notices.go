// Package notices holds the notice feed and the notification messages sent to sessions.
package notices

import (
	"fmt"
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
)

// Notifier delivers a notification to one session.
type Notifier interface {
	Notify(sessionID string, n models.Notification)
}

var feed = []models.Notice{
	{
		ID:      1,
		Type:    models.NoticeTypeSeat,
		Title:   "Seat selection reminder",
		Content: "You have an upcoming flight without a seat. Tap to choose one.",
		Age:     "1 hour ago",
	},
	{
		ID:      2,
		Type:    models.NoticeTypeFlight,
		Title:   "Flight reminder",
		Content: "Your flight MU5678 departs tomorrow. Please arrive at the airport 2 hours early.",
		Age:     "2 hours ago",
	},
	{
		ID:      3,
		Type:    models.NoticeTypeReward,
		Title:   "Points reward",
		Content: "Congratulations, you earned 500 points!",
		Age:     "1 day ago",
	},
}

// Feed returns the notices shown on the notice screen.
func Feed() []models.Notice {
	return append([]models.Notice(nil), feed...)
}

func SeatSelected(flightNumber, seat string, at time.Time) models.Notification {
	return models.Notification{
		Title:       "Seat selected",
		Description: fmt.Sprintf("You selected seat %s on flight %s", seat, flightNumber),
		At:          at,
	}
}

func NoSelectableFlight(at time.Time) models.Notification {
	return models.Notification{
		Title:       "No flights available for seat selection",
		Description: "None of your orders currently allows seat selection",
		At:          at,
	}
}

func PassengerSelected(flightNumber, passenger string, at time.Time) models.Notification {
	return models.Notification{
		Title:       "Passenger selected",
		Description: fmt.Sprintf("%s selected for %s, redirecting to payment...", passenger, flightNumber),
		At:          at,
	}
}

func PaymentRedirect(at time.Time) models.Notification {
	return models.Notification{
		Title:       "Proceed to payment",
		Description: "Please complete the payment to book your ticket",
		At:          at,
	}
}

func RegistrationPending(at time.Time) models.Notification {
	return models.Notification{
		Title:       "Registration",
		Description: "Registration is under development...",
		At:          at,
	}
}
