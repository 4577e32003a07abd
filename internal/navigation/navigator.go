package navigation

const (
	// NavScrollThreshold is the scroll offset past which the navigation bar shows on home.
	NavScrollThreshold = 200
	// IndicatorScrollThreshold is the offset below which the scroll hint shows.
	IndicatorScrollThreshold = 100
)

// Navigator keeps the current view, browser path, chrome visibility and the
// one-shot dashboard seat trigger consistent. It is not safe for concurrent
// use; callers run it on their event loop.
type Navigator struct {
	view        View
	path        string
	history     []string
	scrollY     int
	seatTrigger bool
}

// New derives the initial view from path, promoting home to dashboard when
// the session is already logged in.
func New(path string, loggedIn bool) *Navigator {
	n := &Navigator{view: ViewForPath(path), path: path}
	if loggedIn && n.view == ViewHome {
		n.view = ViewDashboard
	}
	return n
}

func (n *Navigator) Current() View {
	return n.view
}

func (n *Navigator) Path() string {
	return n.path
}

// History returns the pushed paths, oldest first.
func (n *Navigator) History() []string {
	return append([]string(nil), n.history...)
}

// Navigate handles an explicit navigation action and pushes the view's path
// unless the location already matches.
func (n *Navigator) Navigate(v View) {
	n.view = v
	p, ok := PathForView(v)
	if !ok || p == n.path {
		return
	}
	n.history = append(n.history, n.path)
	n.path = p
}

// Show switches the rendered view without touching the location, the way
// in-app callbacks (login success, search results) do.
func (n *Navigator) Show(v View) {
	n.view = v
}

// PathChanged handles back/forward navigation.
func (n *Navigator) PathChanged(path string) {
	n.path = path
	n.view = ViewForPath(path)
}

// Back pops the last pushed path. It reports false when there is no history.
func (n *Navigator) Back() bool {
	if len(n.history) == 0 {
		return false
	}
	last := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.PathChanged(last)
	return true
}

// LoginSucceeded moves to the dashboard.
func (n *Navigator) LoginSucceeded() {
	n.Show(ViewDashboard)
}

// GoToSeatSelection moves to the dashboard and arms the seat trigger.
func (n *Navigator) GoToSeatSelection() {
	n.seatTrigger = true
	n.Show(ViewDashboard)
}

// SeatTrigger reports the trigger without consuming it.
func (n *Navigator) SeatTrigger() bool {
	return n.seatTrigger
}

// ConsumeSeatTrigger returns the trigger and clears it.
func (n *Navigator) ConsumeSeatTrigger() bool {
	t := n.seatTrigger
	n.seatTrigger = false
	return t
}

func (n *Navigator) Scroll(y int) {
	n.scrollY = y
}

// NavVisible is true past the scroll threshold or anywhere outside home.
func (n *Navigator) NavVisible() bool {
	return n.scrollY > NavScrollThreshold || n.view != ViewHome
}

// ScrollIndicatorVisible is true near the top of the page.
func (n *Navigator) ScrollIndicatorVisible() bool {
	return n.scrollY < IndicatorScrollThreshold
}
