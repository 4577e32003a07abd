package search

import (
	"testing"

	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	offers := Search(models.SearchQuery{Origin: "Beijing", Destination: "Shanghai"})

	require.Len(t, offers, 3)
	assert.Equal(t, "CA1234", offers[0].FlightNumber)
	assert.Equal(t, "MU5678", offers[1].FlightNumber)
	assert.Equal(t, "CZ9012", offers[2].FlightNumber)
	assert.Equal(t, models.FareClassBusiness, offers[2].FareClass)
	for _, o := range offers {
		assert.Equal(t, "Beijing", o.Departure.City)
		assert.Equal(t, "Shanghai", o.Arrival.City)
		assert.Equal(t, "3h 15m", o.Duration)
	}
}

func TestSearch_IgnoresDatePassengersAndClass(t *testing.T) {
	base := models.SearchQuery{Origin: "Chengdu", Destination: "Xiamen"}
	other := base
	other.DepartDate = "2026-12-01"
	other.ReturnDate = "2026-12-09"
	other.Passengers = 4
	other.FareClass = models.FareClassFirst
	other.TripType = models.TripTypeRoundTrip

	assert.Equal(t, Search(base), Search(other))
}

func TestSearch_EmptyCitiesAreAccepted(t *testing.T) {
	offers := Search(models.SearchQuery{})

	require.Len(t, offers, 3)
	assert.Empty(t, offers[0].Departure.City)
}

func TestFind(t *testing.T) {
	offers := Search(DefaultQuery())

	o, ok := Find(offers, 2)
	assert.True(t, ok)
	assert.Equal(t, "MU5678", o.FlightNumber)

	_, ok = Find(offers, 9)
	assert.False(t, ok)
}

func TestCities(t *testing.T) {
	assert.Len(t, Cities(), 20)
	assert.Contains(t, Cities(), "Shenzhen")
}
