// Package app runs one browser session: every action is handled to completion
// on the session's event loop, and timers post their follow-ups to it.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/internal/auth"
	"github.com/cx-tal-miterani/bluesky-booking/internal/booking"
	"github.com/cx-tal-miterani/bluesky-booking/internal/eligibility"
	"github.com/cx-tal-miterani/bluesky-booking/internal/navigation"
	"github.com/cx-tal-miterani/bluesky-booking/internal/notices"
	"github.com/cx-tal-miterani/bluesky-booking/internal/orders"
	"github.com/cx-tal-miterani/bluesky-booking/internal/profile"
	"github.com/cx-tal-miterani/bluesky-booking/internal/search"
	"github.com/cx-tal-miterani/bluesky-booking/internal/seats"
	"github.com/cx-tal-miterani/bluesky-booking/internal/session"
	"github.com/cx-tal-miterani/bluesky-booking/internal/timer"
	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidSessionID  = errors.New("invalid session id")
	ErrUnknownView       = errors.New("unknown view")
	ErrUnknownScreen     = errors.New("unknown screen")
	ErrInvalidStatus     = errors.New("invalid status filter")
	ErrInvalidQuery      = errors.New("invalid search query")
	ErrNotSelectable     = errors.New("seat selection is not available for this order")
	ErrNoSelectableOrder = errors.New("no order allows seat selection")
	ErrNoSeatDialog      = errors.New("seat dialog is not open")
	ErrUnknownOffer      = errors.New("unknown flight offer")
	ErrNoPassengerPicker = errors.New("passenger picker is not open")
	ErrBookingDisabled   = errors.New("booking is not available")
)

// maxNotifications bounds the notifications kept in the session state.
const maxNotifications = 20

// Publisher pushes session updates to connected clients.
type Publisher interface {
	PublishState(sessionID string, st State)
	PublishNotification(sessionID string, n models.Notification)
}

type nopPublisher struct{}

func (nopPublisher) PublishState(string, State)                      {}
func (nopPublisher) PublishNotification(string, models.Notification) {}

// Deps are shared by every session.
type Deps struct {
	Orders     *orders.Store
	Sessions   session.Store
	Scheduler  timer.Scheduler
	Booking    booking.Starter
	Publisher  Publisher
	Log        logger.ILogger
	Now        func() time.Time
	LoginDelay time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Publisher == nil {
		d.Publisher = nopPublisher{}
	}
	if d.Log == nil {
		d.Log = logger.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Scheduler == nil {
		d.Scheduler = timer.NewScheduler()
	}
	if d.Sessions == nil {
		d.Sessions = session.NewMemoryStore()
	}
	return d
}

type App struct {
	id   string
	deps Deps
	log  logger.ILogger
	loop *Loop

	nav      *navigation.Navigator
	sess     *session.Session
	profile  *profile.Editor
	loggedIn bool
	userName string
	darkMode bool

	query   models.SearchQuery
	results []models.FlightOffer
	dialog  *SeatDialog
	picker  *PassengerPicker

	login     LoginState
	loginSeq  int
	loginTask timer.Task

	bookings      []booking.Handle
	notifications []models.Notification
}

// New starts the session loop and mounts the session at path.
func New(ctx context.Context, id, path string, deps Deps) (*App, error) {
	deps = deps.withDefaults()
	a := &App{
		id:      id,
		deps:    deps,
		log:     deps.Log.With(logger.String("sessionId", id)),
		loop:    NewLoop(),
		nav:     navigation.New(path, false),
		sess:    session.New(id, deps.Sessions),
		profile: profile.NewEditor(profile.DemoProfile()),
		query:   search.DefaultQuery(),
	}
	go a.loop.Run()

	if _, err := a.Init(ctx, path); err != nil {
		a.loop.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) ID() string {
	return a.id
}

// Close stops the loop and cancels pending timers and bookings.
func (a *App) Close(ctx context.Context) {
	_ = a.loop.Do(ctx, func() {
		a.cancelLogin()
		a.cancelBookings(ctx)
	})
	a.loop.Close()
}

func (a *App) now() time.Time {
	return a.deps.Now()
}

// run executes fn on the loop and returns the state it left behind.
func (a *App) run(ctx context.Context, fn func(ctx context.Context) error) (State, error) {
	var (
		st  State
		err error
	)
	if lerr := a.loop.Do(ctx, func() {
		err = fn(ctx)
		st = a.snapshot()
	}); lerr != nil {
		return State{}, lerr
	}
	return st, err
}

// post queues a follow-up event and pushes the resulting state.
func (a *App) post(fn func(ctx context.Context)) {
	a.loop.Post(func() {
		fn(context.Background())
		a.deps.Publisher.PublishState(a.id, a.snapshot())
	})
}

// Init derives the rendered view from path and the persisted session flags,
// as a page load does.
func (a *App) Init(ctx context.Context, path string) (State, error) {
	return a.run(ctx, func(ctx context.Context) error {
		loggedIn, err := a.sess.IsLoggedIn(ctx)
		if err != nil {
			return fmt.Errorf("failed to read session: %w", err)
		}
		name, err := a.sess.UserName(ctx)
		if err != nil {
			return fmt.Errorf("failed to read session: %w", err)
		}
		dark, err := a.sess.DarkMode(ctx)
		if err != nil {
			return fmt.Errorf("failed to read session: %w", err)
		}
		a.loggedIn, a.userName, a.darkMode = loggedIn, name, dark
		a.nav = navigation.New(path, loggedIn)
		a.afterViewChange()
		return nil
	})
}

func (a *App) State(ctx context.Context) (State, error) {
	return a.run(ctx, func(context.Context) error { return nil })
}

func (a *App) Navigate(ctx context.Context, v navigation.View) (State, error) {
	return a.run(ctx, func(context.Context) error {
		if !v.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownView, v)
		}
		a.nav.Navigate(v)
		a.afterViewChange()
		return nil
	})
}

// PathChanged handles a location change from browser history.
func (a *App) PathChanged(ctx context.Context, path string) (State, error) {
	return a.run(ctx, func(context.Context) error {
		a.nav.PathChanged(path)
		a.afterViewChange()
		return nil
	})
}

func (a *App) Back(ctx context.Context) (State, error) {
	return a.run(ctx, func(context.Context) error {
		if a.nav.Back() {
			a.afterViewChange()
		}
		return nil
	})
}

func (a *App) Scroll(ctx context.Context, y int) (State, error) {
	return a.run(ctx, func(context.Context) error {
		a.nav.Scroll(y)
		return nil
	})
}

func (a *App) ToggleDarkMode(ctx context.Context) (State, error) {
	return a.run(ctx, func(ctx context.Context) error {
		dark, err := a.sess.ToggleDarkMode(ctx)
		if err != nil {
			return err
		}
		a.darkMode = dark
		a.log.Debug("theme toggled", logger.Bool("darkMode", dark))
		return nil
	})
}

// Search replaces the results and shows the results view. The location is
// left as it was.
func (a *App) Search(ctx context.Context, q models.SearchQuery) (State, error) {
	return a.run(ctx, func(context.Context) error {
		def := search.DefaultQuery()
		if q.Passengers == 0 {
			q.Passengers = def.Passengers
		}
		if q.FareClass == "" {
			q.FareClass = def.FareClass
		}
		if q.TripType == "" {
			q.TripType = def.TripType
		}
		if q.Passengers < search.MinPassengers || q.Passengers > search.MaxPassengers {
			return fmt.Errorf("%w: passengers must be between %d and %d", ErrInvalidQuery, search.MinPassengers, search.MaxPassengers)
		}
		a.query = q
		a.results = search.Search(q)
		a.nav.Show(navigation.ViewResults)
		a.afterViewChange()
		return nil
	})
}

// afterViewChange drops the state owned by the previous view and schedules
// the dashboard render.
func (a *App) afterViewChange() {
	if a.nav.Current() != navigation.ViewResults {
		a.results = nil
		a.picker = nil
	}
	a.dialog = nil
	if a.nav.Current() == navigation.ViewDashboard {
		a.post(a.renderDashboard)
	}
}

// renderDashboard consumes the seat trigger and opens the dialog for the first
// order the dashboard rule accepts.
func (a *App) renderDashboard(context.Context) {
	if a.nav.Current() != navigation.ViewDashboard || !a.nav.ConsumeSeatTrigger() {
		return
	}
	list := a.deps.Orders.List()
	i := eligibility.New(eligibility.StrictConfirmedOnly).First(list, a.now())
	if i < 0 {
		a.notify(notices.NoSelectableFlight(a.now()))
		return
	}
	a.openDialog(ScreenDashboard, list[i], list)
}

// Login starts a delayed credential check. A new attempt replaces the pending one.
func (a *App) Login(ctx context.Context, email, password string) (State, error) {
	return a.run(ctx, func(context.Context) error {
		a.cancelLogin()
		a.login = LoginState{Loading: true}
		seq := a.loginSeq
		a.loginTask = a.deps.Scheduler.Schedule(a.deps.LoginDelay, func() {
			a.post(func(ctx context.Context) {
				if a.loginSeq != seq {
					return
				}
				a.completeLogin(ctx, email, password)
			})
		})
		return nil
	})
}

func (a *App) cancelLogin() {
	a.loginSeq++
	if a.loginTask != nil {
		a.loginTask.Cancel()
		a.loginTask = nil
	}
}

func (a *App) completeLogin(ctx context.Context, email, password string) {
	a.loginTask = nil
	a.login.Loading = false
	if err := auth.Check(email, password); err != nil {
		a.login.Error = err.Error()
		return
	}
	if err := a.sess.Login(ctx, auth.DemoUserName); err != nil {
		a.log.Error("failed to persist login", logger.Error(err))
		a.login.Error = "sign in failed, please retry"
		return
	}
	a.login.Error = ""
	a.loggedIn = true
	a.userName = auth.DemoUserName
	a.log.Info("session signed in")
	a.nav.LoginSucceeded()
	a.afterViewChange()
}

func (a *App) Logout(ctx context.Context) (State, error) {
	return a.run(ctx, func(ctx context.Context) error {
		a.cancelLogin()
		a.login = LoginState{}
		if err := a.sess.Logout(ctx); err != nil {
			return err
		}
		a.loggedIn = false
		a.userName = ""
		a.cancelBookings(ctx)
		a.profile.Cancel()
		a.nav.Navigate(navigation.ViewHome)
		a.afterViewChange()
		return nil
	})
}

// Register validates the form. Valid forms only produce a pending notice.
func (a *App) Register(ctx context.Context, req auth.RegistrationRequest) (State, error) {
	return a.run(ctx, func(context.Context) error {
		err := auth.ValidateRegistration(req)
		if errors.Is(err, auth.ErrRegistrationPending) {
			a.notify(notices.RegistrationPending(a.now()))
			return nil
		}
		return err
	})
}

// Orders lists the orders matching status and text with the screen's seat rule applied.
func (a *App) Orders(ctx context.Context, screen Screen, status, text string) (OrderList, error) {
	var list OrderList
	_, err := a.run(ctx, func(context.Context) error {
		pred, ok := screen.predicate()
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
		}
		if status == "" {
			status = models.StatusFilterAll
		}
		if status != models.StatusFilterAll && !models.OrderStatus(status).Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
		now := a.now()
		found := a.deps.Orders.Filter(status, text)
		list.Orders = make([]OrderRow, 0, len(found))
		for _, o := range found {
			list.Orders = append(list.Orders, OrderRow{Order: o, SeatSelectable: pred.IsSeatSelectable(o, now)})
		}
		list.Stats = a.deps.Orders.Stats()
		return nil
	})
	return list, err
}

func (a *App) openDialog(screen Screen, order models.Order, all []models.Order) {
	a.dialog = &SeatDialog{
		Screen:       screen,
		OrderID:      order.ID,
		FlightNumber: order.FlightNumber,
		Route:        order.Route.String(),
		Seats:        seats.Map(all),
	}
}

// OpenSeatDialog opens the seat map for an order the screen allows seating.
func (a *App) OpenSeatDialog(ctx context.Context, screen Screen, orderID string) (State, error) {
	return a.run(ctx, func(context.Context) error {
		pred, ok := screen.predicate()
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
		}
		order, ok := a.deps.Orders.Get(orderID)
		if !ok {
			return fmt.Errorf("%w: %s", orders.ErrOrderNotFound, orderID)
		}
		if !pred.IsSeatSelectable(order, a.now()) {
			return fmt.Errorf("%w: %s", ErrNotSelectable, orderID)
		}
		a.openDialog(screen, order, a.deps.Orders.List())
		return nil
	})
}

// QuickSeatSelect is the dashboard shortcut: it opens the dialog for the first
// order the dashboard rule accepts.
func (a *App) QuickSeatSelect(ctx context.Context) (State, error) {
	return a.run(ctx, func(context.Context) error {
		list := a.deps.Orders.List()
		i := eligibility.New(eligibility.StrictConfirmedOnly).First(list, a.now())
		if i < 0 {
			a.notify(notices.NoSelectableFlight(a.now()))
			return ErrNoSelectableOrder
		}
		a.openDialog(ScreenDashboard, list[i], list)
		return nil
	})
}

// SelectSeat assigns code to the dialog's order. On a conflict the dialog
// stays open with a refreshed map.
func (a *App) SelectSeat(ctx context.Context, code string) (State, error) {
	return a.run(ctx, func(ctx context.Context) error {
		if a.dialog == nil {
			return ErrNoSeatDialog
		}
		pred, _ := a.dialog.Screen.predicate()
		now := a.now()
		updated, err := a.deps.Orders.Mutate(ctx, a.dialog.OrderID, func(o models.Order, all []models.Order) (models.Order, error) {
			if !pred.IsSeatSelectable(o, now) {
				return models.Order{}, fmt.Errorf("%w: %s", ErrNotSelectable, o.ID)
			}
			return seats.Assign(o, code, all)
		})
		if err != nil {
			a.dialog.Seats = seats.Map(a.deps.Orders.List())
			return err
		}
		a.dialog = nil
		a.log.Info("seat selected", logger.String("orderId", updated.ID), logger.String("seat", code))
		a.notify(notices.SeatSelected(updated.FlightNumber, code, now))
		return nil
	})
}

func (a *App) CloseSeatDialog(ctx context.Context) (State, error) {
	return a.run(ctx, func(context.Context) error {
		a.dialog = nil
		return nil
	})
}

// GoToSeatSelection moves to the dashboard with the seat trigger armed. The
// dialog opens when the dashboard renders.
func (a *App) GoToSeatSelection(ctx context.Context) (State, error) {
	return a.run(ctx, func(context.Context) error {
		a.nav.GoToSeatSelection()
		a.afterViewChange()
		return nil
	})
}

func (a *App) BeginEdit(ctx context.Context) (State, error) {
	return a.run(ctx, func(context.Context) error {
		a.profile.BeginEdit()
		return nil
	})
}

func (a *App) ApplyProfile(ctx context.Context, fields map[string]any) (State, error) {
	return a.run(ctx, func(context.Context) error {
		return a.profile.Apply(fields)
	})
}

func (a *App) SaveProfile(ctx context.Context) (State, error) {
	return a.run(ctx, func(context.Context) error {
		return a.profile.Save()
	})
}

func (a *App) CancelEdit(ctx context.Context) (State, error) {
	return a.run(ctx, func(context.Context) error {
		a.profile.Cancel()
		return nil
	})
}

// BookFlight opens the passenger picker for one of the shown results.
func (a *App) BookFlight(ctx context.Context, offerID int) (State, error) {
	return a.run(ctx, func(context.Context) error {
		offer, ok := search.Find(a.results, offerID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownOffer, offerID)
		}
		a.picker = &PassengerPicker{Offer: offer, Passengers: booking.Passengers()}
		return nil
	})
}

// ChoosePassenger closes the picker and starts the booking flow.
func (a *App) ChoosePassenger(ctx context.Context, name string) (State, error) {
	return a.run(ctx, func(ctx context.Context) error {
		if a.picker == nil {
			return ErrNoPassengerPicker
		}
		if !booking.ValidPassenger(name) {
			return fmt.Errorf("%w: %q", booking.ErrUnknownPassenger, name)
		}
		if a.deps.Booking == nil {
			return ErrBookingDisabled
		}
		h, err := a.deps.Booking.Start(ctx, booking.Request{
			SessionID:    a.id,
			FlightNumber: a.picker.Offer.FlightNumber,
			Passenger:    name,
		})
		if err != nil {
			return err
		}
		a.log.Info("booking started", logger.String("bookingId", h.ID()), logger.String("flight", a.picker.Offer.FlightNumber))
		a.bookings = append(a.bookings, h)
		a.picker = nil
		return nil
	})
}

func (a *App) cancelBookings(ctx context.Context) {
	for _, h := range a.bookings {
		if err := h.Cancel(ctx); err != nil {
			a.log.Warning("failed to cancel booking", logger.String("bookingId", h.ID()), logger.Error(err))
		}
	}
	a.bookings = nil
}

// Notify delivers a notification from outside the loop.
func (a *App) Notify(n models.Notification) {
	a.post(func(context.Context) {
		a.notify(n)
	})
}

func (a *App) notify(n models.Notification) {
	a.notifications = append(a.notifications, n)
	if len(a.notifications) > maxNotifications {
		a.notifications = a.notifications[len(a.notifications)-maxNotifications:]
	}
	a.deps.Publisher.PublishNotification(a.id, n)
}

func (a *App) snapshot() State {
	return State{
		SessionID:       a.id,
		View:            a.nav.Current(),
		Path:            a.nav.Path(),
		LoggedIn:        a.loggedIn,
		UserName:        a.userName,
		DarkMode:        a.darkMode,
		NavVisible:      a.nav.NavVisible(),
		ScrollIndicator: a.nav.ScrollIndicatorVisible(),
		Menu:            navigation.MenuItems(a.loggedIn),
		LogoTarget:      navigation.LogoTarget(a.loggedIn),
		SeatTrigger:     a.nav.SeatTrigger(),
		Login:           a.login,
		Query:           a.query,
		Results:         append([]models.FlightOffer(nil), a.results...),
		SeatDialog:      a.dialog.clone(),
		PassengerPicker: a.picker.clone(),
		Profile: ProfileState{
			State:      a.profile.State(),
			Profile:    a.profile.Profile(),
			Draft:      a.profile.Draft(),
			Membership: profile.DemoMembership(),
		},
		Notifications: append([]models.Notification{}, a.notifications...),
	}
}
