package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"donorlink-web/internal/session"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "password", "role", "created_at"}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	params := RegisterParams{Name: "John", Email: "john@example.com", Password: "hashed", Role: session.RoleDonor}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users \(name, email, password, role\) VALUES \(\$1, \$2, \$3, \$4\)`).
			WithArgs("John", "john@example.com", "hashed", "Donor").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, "John", "john@example.com", "hashed", "Donor", time.Now()))

		u, err := repo.Create(ctx, params)
		assert.NoError(t, err)
		assert.Equal(t, 1, u.ID)
		assert.Equal(t, session.RoleDonor, u.Role)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		_, err := repo.Create(ctx, params)
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(ctx, params)
		assert.EqualError(t, err, "db error")
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	email := "john@example.com"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, email, password, role, created_at FROM users WHERE email = \$1`).
			WithArgs(email).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(3, "John", email, "hashed", "Volunteer", time.Now()))

		u, err := repo.FindByEmail(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, email, u.Email)
		assert.Equal(t, session.RoleVolunteer, u.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users`).
			WithArgs(email).
			WillReturnRows(sqlmock.NewRows(userColumns))

		u, err := repo.FindByEmail(ctx, email)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, u)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users`).
			WithArgs(email).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.FindByEmail(ctx, email)
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(9, "Ada", "ada@example.com", "hashed", "Admin", time.Now()))

	u, err := repo.FindByID(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, u.Role)
}
