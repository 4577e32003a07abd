package models

// FlightOffer is a synthesized search result; it is never persisted
type FlightOffer struct {
	ID           int       `json:"id"`
	Airline      string    `json:"airline"`
	FlightNumber string    `json:"flightNumber"`
	Departure    Endpoint  `json:"departure"`
	Arrival      Endpoint  `json:"arrival"`
	Duration     string    `json:"duration"`
	Price        float64   `json:"price"`
	FareClass    FareClass `json:"class"`
}

// Endpoint is one end of a flight leg
type Endpoint struct {
	City    string `json:"city"`
	Time    string `json:"time"`
	Airport string `json:"airport"`
}

type TripType string

const (
	TripTypeOneWay    TripType = "oneWay"
	TripTypeRoundTrip TripType = "roundTrip"
)

// SearchQuery represents a flight search submission
type SearchQuery struct {
	Origin      string    `json:"from"`
	Destination string    `json:"to"`
	DepartDate  string    `json:"departDate"`
	ReturnDate  string    `json:"returnDate,omitempty"`
	Passengers  int       `json:"passengers"`
	FareClass   FareClass `json:"class"`
	TripType    TripType  `json:"tripType"`
}

// SeatStatus is the state of one seat on the selection grid
type SeatStatus string

const (
	SeatStatusFree  SeatStatus = "free"
	SeatStatusTaken SeatStatus = "taken"
)

// Seat represents a seat on the selection grid
type Seat struct {
	Code   string     `json:"code"`
	Row    int        `json:"row"`
	Column string     `json:"column"`
	Status SeatStatus `json:"status"`
}
