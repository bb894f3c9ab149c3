package user

import (
	"strconv"
	"time"

	"donorlink-web/internal/session"
)

type User struct {
	ID        int
	Name      string
	Email     string
	Password  string
	Role      session.Role
	CreatedAt time.Time
}

// StoredUser is the record kept in client storage once u logs in.
func (u User) StoredUser() session.StoredUser {
	return session.StoredUser{
		ID:    strconv.Itoa(u.ID),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     session.Role
}
