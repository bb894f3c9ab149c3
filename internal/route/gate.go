package route

import "donorlink-web/internal/session"

// AllowedRoutes returns the routes reachable for st.
//
// Admins get only Home, About and their dashboard; the catalog, cart and
// donation pages are reserved for donors and volunteers.
func AllowedRoutes(st session.State) Set {
	if !st.IsLoggedIn() {
		return newSet(Login, Signup)
	}

	allowed := newSet(Home, About)

	if st.Is(session.RoleDonor) || st.Is(session.RoleVolunteer) {
		allowed.add(Products, Contact, SingleProduct, Cart, Donate)
	}
	if st.Is(session.RoleDonor) {
		allowed.add(DonorDashboard)
	}
	if st.Is(session.RoleVolunteer) {
		allowed.add(VolunteerDashboard)
	}
	if st.Is(session.RoleAdmin) {
		allowed.add(AdminDashboard)
	}

	return allowed
}

// Kind is the outcome of resolving a request path.
type Kind int

const (
	Render Kind = iota
	Redirect
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	default:
		return "not-found"
	}
}

type Decision struct {
	Kind     Kind
	Route    ID
	Location string
	Params   Params
}

// Resolve decides what to show for path under st.
func Resolve(st session.State, path string) Decision {
	e, params, ok := Match(path)
	if !ok {
		return Decision{Kind: NotFound, Route: ErrorPage}
	}

	if e.Access == Public {
		return Decision{Kind: Render, Route: e.ID, Params: params}
	}

	if !st.IsLoggedIn() {
		return Decision{Kind: Redirect, Route: Login, Location: Path(Login)}
	}

	if AllowedRoutes(st).Has(e.ID) {
		return Decision{Kind: Render, Route: e.ID, Params: params}
	}

	// not registered for this role
	return Decision{Kind: NotFound, Route: ErrorPage}
}

// Landing returns the page a user is sent to right after login.
func Landing(st session.State) string {
	switch {
	case st.Is(session.RoleDonor):
		return Path(DonorDashboard)
	case st.Is(session.RoleVolunteer):
		return Path(VolunteerDashboard)
	case st.Is(session.RoleAdmin):
		return Path(AdminDashboard)
	case st.IsLoggedIn():
		return Path(Home)
	default:
		return Path(Login)
	}
}
