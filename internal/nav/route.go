package nav

import (
	"path"
	"strings"

	"github.com/nao1215/osintnexus/internal/catalog"
)

// Page identifies a screen of the dashboard.
type Page int

const (
	PageOnboarding Page = iota
	PageDashboard
	PageInvestigations
	PageWidgets
	PageNotifications
	PageProfile
	PageModule
)

// String returns the page name used in logs.
func (p Page) String() string {
	switch p {
	case PageOnboarding:
		return "onboarding"
	case PageDashboard:
		return "dashboard"
	case PageInvestigations:
		return "investigations"
	case PageWidgets:
		return "widgets"
	case PageNotifications:
		return "notifications"
	case PageProfile:
		return "profile"
	case PageModule:
		return "module"
	default:
		return "unknown"
	}
}

// Well-known paths.
const (
	PathRoot           = "/"
	PathOnboarding     = "/onboarding"
	PathDashboard      = "/dashboard"
	PathInvestigations = "/investigations"
	PathWidgets        = "/widgets"
	PathNotifications  = "/notifications"
	PathProfile        = "/profile"
	modulePrefix       = "/module/"
)

// DefaultTitle is shown when the current page has no navigation entry.
const DefaultTitle = "OSINT Nexus"

// Item is an entry of the side/bottom navigation.
type Item struct {
	Label string
	Path  string
	Page  Page
}

// Items is the navigation menu in display order.
var Items = []Item{
	{Label: "Dashboard", Path: PathDashboard, Page: PageDashboard},
	{Label: "Investigations", Path: PathInvestigations, Page: PageInvestigations},
	{Label: "Widgets", Path: PathWidgets, Page: PageWidgets},
	{Label: "Notifications", Path: PathNotifications, Page: PageNotifications},
	{Label: "Profile", Path: PathProfile, Page: PageProfile},
}

var staticRoutes = map[string]Page{
	PathDashboard:      PageDashboard,
	PathInvestigations: PageInvestigations,
	PathWidgets:        PageWidgets,
	PathNotifications:  PageNotifications,
	PathProfile:        PageProfile,
}

// Route is the result of resolving a path.
type Route struct {
	Page Page

	// ModuleID is set for PageModule.
	ModuleID string

	// Path is the canonical path of the resolved page.
	Path string

	// Requested is the path as given, before redirects.
	Requested string

	// Redirected reports whether Path differs from the requested page.
	Redirected bool
}

// ModulePath returns the route path of a module screen.
func ModulePath(id string) string {
	return modulePrefix + id
}

// Resolve maps a path to a page. When onboarded is false every path resolves
// to the onboarding flow. Unknown paths and unknown module ids redirect to
// the dashboard.
func Resolve(requested string, onboarded bool) Route {
	r := Route{Requested: requested}

	if !onboarded {
		r.Page = PageOnboarding
		r.Path = PathOnboarding
		r.Redirected = clean(requested) != PathOnboarding
		return r
	}

	p := clean(requested)
	if page, ok := staticRoutes[p]; ok {
		r.Page = page
		r.Path = p
		r.Redirected = p != requested
		return r
	}

	if id, ok := strings.CutPrefix(p, modulePrefix); ok && !strings.Contains(id, "/") && catalog.Has(id) {
		r.Page = PageModule
		r.ModuleID = id
		r.Path = p
		r.Redirected = p != requested
		return r
	}

	// "/", "/onboarding" after completion, unknown modules and anything else.
	r.Page = PageDashboard
	r.Path = PathDashboard
	r.Redirected = true
	return r
}

// clean normalizes a path: leading slash, no trailing slash, no dot segments.
func clean(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return PathRoot
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Title returns the top bar title for a route: the navigation label when the
// page has one, DefaultTitle otherwise.
func Title(r Route) string {
	for _, it := range Items {
		if it.Path == r.Path {
			return it.Label
		}
	}
	return DefaultTitle
}

// IndexOf returns the position of page in Items, or -1.
func IndexOf(page Page) int {
	for i, it := range Items {
		if it.Page == page {
			return i
		}
	}
	return -1
}
