package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"donorlink-web/internal/cart"
	"donorlink-web/internal/donation"
	"donorlink-web/internal/metrics"
	"donorlink-web/internal/product"
	"donorlink-web/internal/route"
	"donorlink-web/internal/session"
	"donorlink-web/internal/user"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageFiles = map[route.ID]string{
	route.Login:              "login.html",
	route.Signup:             "signup.html",
	route.Home:               "home.html",
	route.About:              "about.html",
	route.Products:           "products.html",
	route.Contact:            "contact.html",
	route.SingleProduct:      "singleproduct.html",
	route.Cart:               "cart.html",
	route.Donate:             "donate.html",
	route.DonorDashboard:     "donor_dashboard.html",
	route.VolunteerDashboard: "volunteer_dashboard.html",
	route.AdminDashboard:     "admin_dashboard.html",
	route.ErrorPage:          "error.html",
}

var titles = map[route.ID]string{
	route.Login:              "Login",
	route.Signup:             "Sign up",
	route.Home:               "Home",
	route.About:              "About",
	route.Products:           "Products",
	route.Contact:            "Contact",
	route.SingleProduct:      "Product",
	route.Cart:               "Cart",
	route.Donate:             "Donate",
	route.DonorDashboard:     "Donor Dashboard",
	route.VolunteerDashboard: "Volunteer Dashboard",
	route.AdminDashboard:     "Admin Dashboard",
	route.ErrorPage:          "Page not found",
}

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// parsePages builds one template set per page, each pairing the shared
// layout with the page's "content" block.
func parsePages() (map[route.ID]*template.Template, error) {
	pages := make(map[route.ID]*template.Template, len(pageFiles))
	for id, file := range pageFiles {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[id] = t
	}
	return pages, nil
}

type navLink struct {
	Label  string
	Path   string
	Active bool
}

// navFor lists the pages st may open, in route table order. Parameterized
// routes are reached through links, not the menu.
func navFor(st session.State, current route.ID) []navLink {
	allowed := route.AllowedRoutes(st)

	var links []navLink
	for _, e := range route.Table() {
		if !allowed.Has(e.ID) || strings.Contains(e.Pattern, ":") {
			continue
		}
		links = append(links, navLink{Label: titles[e.ID], Path: e.Pattern, Active: e.ID == current})
	}
	return links
}

type pageData struct {
	Title  string
	Route  route.ID
	State  session.State
	Nav    []navLink
	Theme  template.CSS
	Status int
	Error  string

	// sticky form fields
	Name  string
	Email string
	Roles []session.Role

	User      *user.User
	Query     string
	Page      int
	Products  []product.Product
	Product   *product.Product
	Cart      *cart.Cart
	Donations []donation.Donation
	Summary   *donation.Summary
	Metrics   metrics.Snapshot
}

func (p *pageData) LoggedIn() bool {
	return p.State.IsLoggedIn()
}

func (p *pageData) PrevPage() int {
	if p.Page <= 1 {
		return 0
	}
	return p.Page - 1
}
