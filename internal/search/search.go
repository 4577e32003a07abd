// Package search synthesizes flight offers. There is no inventory behind it:
// results depend only on the origin and destination of the query.
package search

import (
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
)

const (
	MinPassengers = 1
	MaxPassengers = 9
)

var cities = []string{
	"Beijing", "Shanghai", "Guangzhou", "Shenzhen", "Chengdu", "Chongqing", "Hangzhou", "Nanjing", "Wuhan", "Xi'an",
	"Qingdao", "Dalian", "Xiamen", "Kunming", "Shenyang", "Changsha", "Zhengzhou", "Tianjin", "Jinan", "Harbin",
}

type template struct {
	airline   string
	number    string
	departs   string
	arrives   string
	price     float64
	fareClass models.FareClass
}

var templates = []template{
	{airline: "Air China", number: "CA1234", departs: "08:30", arrives: "11:45", price: 1280, fareClass: models.FareClassEconomy},
	{airline: "China Eastern", number: "MU5678", departs: "14:20", arrives: "17:35", price: 1150, fareClass: models.FareClassEconomy},
	{airline: "China Southern", number: "CZ9012", departs: "19:10", arrives: "22:25", price: 1580, fareClass: models.FareClassBusiness},
}

// Search returns the three synthetic offers for q.
func Search(q models.SearchQuery) []models.FlightOffer {
	offers := make([]models.FlightOffer, 0, len(templates))
	for i, t := range templates {
		offers = append(offers, models.FlightOffer{
			ID:           i + 1,
			Airline:      t.airline,
			FlightNumber: t.number,
			Departure:    models.Endpoint{City: q.Origin, Time: t.departs, Airport: "PEK"},
			Arrival:      models.Endpoint{City: q.Destination, Time: t.arrives, Airport: "PVG"},
			Duration:     "3h 15m",
			Price:        t.price,
			FareClass:    t.fareClass,
		})
	}
	return offers
}

// Cities lists the selectable cities.
func Cities() []string {
	return append([]string(nil), cities...)
}

// DefaultQuery is the blank search form.
func DefaultQuery() models.SearchQuery {
	return models.SearchQuery{
		Passengers: MinPassengers,
		FareClass:  models.FareClassEconomy,
		TripType:   models.TripTypeOneWay,
	}
}

// Find returns the offer with id from offers.
func Find(offers []models.FlightOffer, id int) (models.FlightOffer, bool) {
	for _, o := range offers {
		if o.ID == id {
			return o, true
		}
	}
	return models.FlightOffer{}, false
}
