package app

import (
	"github.com/cx-tal-miterani/bluesky-booking/internal/eligibility"
	"github.com/cx-tal-miterani/bluesky-booking/internal/navigation"
	"github.com/cx-tal-miterani/bluesky-booking/internal/profile"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
)

// Screen names the screen a seat dialog was opened from. Each screen applies
// its own eligibility rule.
type Screen string

const (
	ScreenDashboard Screen = "dashboard"
	ScreenOrders    Screen = "orders"
)

func (s Screen) predicate() (eligibility.Predicate, bool) {
	switch s {
	case ScreenDashboard:
		return eligibility.New(eligibility.StrictConfirmedOnly), true
	case ScreenOrders:
		return eligibility.New(eligibility.AnyActiveStatus), true
	}
	return eligibility.Predicate{}, false
}

// LoginState tracks the pending sign-in attempt
type LoginState struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// SeatDialog is the open seat map for one order
type SeatDialog struct {
	Screen       Screen        `json:"screen"`
	OrderID      string        `json:"orderId"`
	FlightNumber string        `json:"flightNumber"`
	Route        string        `json:"route"`
	Seats        []models.Seat `json:"seats"`
}

func (d *SeatDialog) clone() *SeatDialog {
	if d == nil {
		return nil
	}
	out := *d
	out.Seats = append([]models.Seat(nil), d.Seats...)
	return &out
}

// PassengerPicker is the passenger choice offered after booking a result
type PassengerPicker struct {
	Offer      models.FlightOffer `json:"offer"`
	Passengers []string           `json:"passengers"`
}

func (p *PassengerPicker) clone() *PassengerPicker {
	if p == nil {
		return nil
	}
	out := *p
	out.Passengers = append([]string(nil), p.Passengers...)
	return &out
}

type ProfileState struct {
	State      profile.State      `json:"state"`
	Profile    models.UserProfile `json:"profile"`
	Draft      models.UserProfile `json:"draft"`
	Membership models.Membership  `json:"membership"`
}

// State is a snapshot of everything one session renders
type State struct {
	SessionID       string                `json:"sessionId"`
	View            navigation.View       `json:"view"`
	Path            string                `json:"path"`
	LoggedIn        bool                  `json:"isLoggedIn"`
	UserName        string                `json:"userName,omitempty"`
	DarkMode        bool                  `json:"darkMode"`
	NavVisible      bool                  `json:"navVisible"`
	ScrollIndicator bool                  `json:"scrollIndicator"`
	Menu            []navigation.MenuItem `json:"menu"`
	LogoTarget      navigation.View       `json:"logoTarget"`
	SeatTrigger     bool                  `json:"seatTrigger"`
	Login           LoginState            `json:"login"`
	Query           models.SearchQuery    `json:"query"`
	Results         []models.FlightOffer  `json:"results,omitempty"`
	SeatDialog      *SeatDialog           `json:"seatDialog,omitempty"`
	PassengerPicker *PassengerPicker      `json:"passengerPicker,omitempty"`
	Profile         ProfileState          `json:"profile"`
	Notifications   []models.Notification `json:"notifications"`
}

// OrderRow is an order together with whether the screen offers seat selection for it
type OrderRow struct {
	models.Order
	SeatSelectable bool `json:"seatSelectable"`
}

type OrderList struct {
	Orders []OrderRow        `json:"orders"`
	Stats  models.OrderStats `json:"stats"`
}
