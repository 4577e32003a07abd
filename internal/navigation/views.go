package navigation

// View identifies the screen being rendered.
type View string

const (
	ViewHome      View = "home"
	ViewSearch    View = "search"
	ViewResults   View = "results"
	ViewOrders    View = "orders"
	ViewProfile   View = "profile"
	ViewAuth      View = "auth"
	ViewDashboard View = "dashboard"
	ViewNotices   View = "notices"
)

var pathToView = map[string]View{
	"/":          ViewHome,
	"/search":    ViewSearch,
	"/orders":    ViewOrders,
	"/notices":   ViewNotices,
	"/profile":   ViewProfile,
	"/auth":      ViewAuth,
	"/dashboard": ViewDashboard,
}

var viewToPath = map[View]string{
	ViewHome:      "/",
	ViewSearch:    "/search",
	ViewOrders:    "/orders",
	ViewNotices:   "/notices",
	ViewProfile:   "/profile",
	ViewAuth:      "/auth",
	ViewDashboard: "/dashboard",
}

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	if v == ViewResults {
		return true
	}
	_, ok := viewToPath[v]
	return ok
}

// ViewForPath maps a location path to its view; unmapped paths give home.
func ViewForPath(path string) View {
	if v, ok := pathToView[path]; ok {
		return v
	}
	return ViewHome
}

// PathForView returns the path of v. Views without a path (results) report false.
func PathForView(v View) (string, bool) {
	p, ok := viewToPath[v]
	return p, ok
}

// MenuItem is one entry of the navigation bar.
type MenuItem struct {
	View  View   `json:"id"`
	Label string `json:"label"`
}

// MenuItems lists the navigation entries for the login state.
func MenuItems(loggedIn bool) []MenuItem {
	if !loggedIn {
		return []MenuItem{{View: ViewAuth, Label: "Sign in / Register"}}
	}
	return []MenuItem{
		{View: ViewSearch, Label: "Search flights"},
		{View: ViewOrders, Label: "My orders"},
		{View: ViewNotices, Label: "Notices"},
		{View: ViewProfile, Label: "Profile"},
	}
}

// LogoTarget is the view the logo links to.
func LogoTarget(loggedIn bool) View {
	if loggedIn {
		return ViewDashboard
	}
	return ViewHome
}
