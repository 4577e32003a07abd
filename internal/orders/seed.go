package orders

import (
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
)

// Seed returns the demo bookings. Flight dates are relative to now so that
// seat selection stays reachable; booking dates precede them. Dates are UTC
// calendar days.
func Seed(now time.Time) []models.Order {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	return []models.Order{
		{
			ID:           "BT2024001",
			FlightNumber: "CA1234",
			Route:        models.Route{Origin: "Beijing", Destination: "Shanghai"},
			Date:         day(-30),
			Time:         models.TimeRange{Departure: "08:30", Arrival: "11:45"},
			Passengers:   1,
			FareClass:    models.FareClassEconomy,
			Price:        1280,
			Status:       models.OrderStatusCompleted,
			BookingDate:  day(-35),
			Seat:         models.SingleSeat("12A"),
		},
		{
			ID:           "BT2024002",
			FlightNumber: "MU5678",
			Route:        models.Route{Origin: "Shanghai", Destination: "Guangzhou"},
			Date:         day(5),
			Time:         models.TimeRange{Departure: "14:20", Arrival: "17:35"},
			Passengers:   2,
			FareClass:    models.FareClassBusiness,
			Price:        3600,
			Status:       models.OrderStatusConfirmed,
			BookingDate:  day(-33),
			Seat:         models.Unassigned(),
		},
		{
			ID:           "BT2024003",
			FlightNumber: "CZ9012",
			Route:        models.Route{Origin: "Guangzhou", Destination: "Shenzhen"},
			Date:         day(10),
			Time:         models.TimeRange{Departure: "19:10", Arrival: "20:25"},
			Passengers:   1,
			FareClass:    models.FareClassEconomy,
			Price:        580,
			Status:       models.OrderStatusPending,
			BookingDate:  day(-27),
			Seat:         models.Unassigned(),
		},
		{
			ID:           "BT2024004",
			FlightNumber: "HU7890",
			Route:        models.Route{Origin: "Shenzhen", Destination: "Chengdu"},
			Date:         day(17),
			Time:         models.TimeRange{Departure: "09:15", Arrival: "12:30"},
			Passengers:   1,
			FareClass:    models.FareClassEconomy,
			Price:        1180,
			Status:       models.OrderStatusCancelled,
			BookingDate:  day(-25),
			Seat:         models.SeatAssignment{Placeholder: models.SeatPlaceholderVoided},
		},
	}
}
