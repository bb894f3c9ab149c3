package route

import (
	"sort"
	"strings"
)

// ID names a navigable page.
type ID string

const (
	Login              ID = "Login"
	Signup             ID = "Signup"
	Home               ID = "Home"
	About              ID = "About"
	Products           ID = "Products"
	Contact            ID = "Contact"
	SingleProduct      ID = "SingleProduct"
	Cart               ID = "Cart"
	Donate             ID = "Donate"
	DonorDashboard     ID = "DonorDashboard"
	VolunteerDashboard ID = "VolunteerDashboard"
	AdminDashboard     ID = "AdminDashboard"
	ErrorPage          ID = "ErrorPage"
)

// Access is the class of session a route is registered for.
type Access int

const (
	Public Access = iota
	Authenticated
	DonorOnly
	VolunteerOnly
	DonorOrVolunteer
	AdminOnly
)

// Entry is one row of the route table. Pattern segments starting with ':'
// match any single non-empty path segment.
type Entry struct {
	Pattern string
	ID      ID
	Access  Access
}

var table = []Entry{
	{"/login", Login, Public},
	{"/signup", Signup, Public},
	{"/", Home, Authenticated},
	{"/about", About, Authenticated},
	{"/donor-dashboard", DonorDashboard, DonorOnly},
	{"/volunteer-dashboard", VolunteerDashboard, VolunteerOnly},
	{"/products", Products, DonorOrVolunteer},
	{"/contact", Contact, DonorOrVolunteer},
	{"/singleproduct/:id", SingleProduct, DonorOrVolunteer},
	{"/cart", Cart, DonorOrVolunteer},
	{"/donate", Donate, DonorOrVolunteer},
	{"/admin-dashboard", AdminDashboard, AdminOnly},
}

// Table returns a copy of the route table.
func Table() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Path returns the pattern registered for id, or "" for ErrorPage and
// unknown ids.
func Path(id ID) string {
	for _, e := range table {
		if e.ID == id {
			return e.Pattern
		}
	}
	return ""
}

// Params holds the values captured by ':name' pattern segments.
type Params map[string]string

// Match finds the table entry for path. A trailing slash is ignored.
func Match(path string) (Entry, Params, bool) {
	segs := split(path)
	for _, e := range table {
		if params, ok := matchPattern(split(e.Pattern), segs); ok {
			return e, params, true
		}
	}
	return Entry{Pattern: "*", ID: ErrorPage}, nil, false
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func matchPattern(pattern, segs []string) (Params, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}

	var params Params
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return nil, false
			}
			if params == nil {
				params = Params{}
			}
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}

// Set is an unordered set of route ids.
type Set map[ID]struct{}

func newSet(ids ...ID) Set {
	s := make(Set, len(ids))
	s.add(ids...)
	return s
}

func (s Set) add(ids ...ID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

func (s Set) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in lexical order.
func (s Set) Sorted() []ID {
	out := make([]ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
