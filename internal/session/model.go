package session

import "fmt"

// Role decides which pages a logged-in user can reach.
type Role string

const (
	RoleDonor     Role = "Donor"
	RoleVolunteer Role = "Volunteer"
	RoleAdmin     Role = "Admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleVolunteer, RoleAdmin:
		return true
	}
	return false
}

// ParseRole parses a role name as submitted in forms.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// StoredUser is the persisted record of the logged-in identity.
type StoredUser struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
}

// State is the derived session. The zero value is logged out.
//
// A logged-out State never carries a role; a State with a role is always
// logged in. A logged-in State may have no role when the stored record did
// not name a known one.
type State struct {
	loggedIn bool
	role     Role
}

func LoggedOut() State {
	return State{}
}

// LoggedIn returns a logged-in State. Unknown roles are dropped.
func LoggedIn(role Role) State {
	if !role.Valid() {
		role = ""
	}
	return State{loggedIn: true, role: role}
}

func (s State) IsLoggedIn() bool {
	return s.loggedIn
}

// Role returns the session role and whether one is set.
func (s State) Role() (Role, bool) {
	return s.role, s.role != ""
}

// Is reports whether the session is logged in with role r.
func (s State) Is(r Role) bool {
	return s.loggedIn && s.role == r
}

func (s State) String() string {
	if !s.loggedIn {
		return "logged-out"
	}
	if s.role == "" {
		return "logged-in"
	}
	return "logged-in:" + string(s.role)
}
