package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{"id", "name", "description", "price", "stock", "image_url", "status", "created_at"}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("ActiveWithSearchAndPage", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(productRowColumns).
			AddRow("p1", "Relief Kit", "Blanket and water", 25.5, 10, nil, "active", time.Now()).
			AddRow("p2", "Relief Meal", nil, 4.0, 100, "meal.png", "active", time.Now())

		mock.ExpectQuery(`SELECT .* FROM products WHERE status = \$1 AND name ILIKE \$2 ESCAPE '\\' ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
			WithArgs("active", "%relief%", 10, 10).
			WillReturnRows(rows)

		res, err := NewRepository(db).List(ctx, ListOptions{Search: " relief ", OnlyActive: true, Limit: 10, Page: 2})
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "Relief Kit", res[0].Name)
		assert.Equal(t, "Blanket and water", *res[0].Description)
		assert.Nil(t, res[1].Description)
		assert.Equal(t, "meal.png", *res[1].ImageURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SearchWildcardsAreLiteral", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .* FROM products WHERE name ILIKE \$1 ESCAPE '\\' ORDER BY created_at DESC$`).
			WithArgs(`%100\% kit\_a\\b%`).
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		res, err := NewRepository(db).List(ctx, ListOptions{Search: `100% kit_a\b`})
		require.NoError(t, err)
		assert.Empty(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoFilters", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .* FROM products ORDER BY created_at DESC$`).
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		res, err := NewRepository(db).List(ctx, ListOptions{})
		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .*`).WillReturnError(errors.New("db error"))

		_, err = NewRepository(db).List(ctx, ListOptions{OnlyActive: true})
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1 AND status = \$2`).
			WithArgs("p1", "active").
			WillReturnRows(sqlmock.NewRows(productRowColumns).
				AddRow("p1", "Relief Kit", nil, 25.5, 10, nil, "active", time.Now()))

		p, err := repo.GetByID(ctx, GetProductOptions{ProductID: "p1", OnlyActive: true})
		require.NoError(t, err)
		assert.Equal(t, 10, p.Stock)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1$`).
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		p, err := repo.GetByID(ctx, GetProductOptions{ProductID: "nope"})
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products`).
			WillReturnError(errors.New("timeout"))

		_, err := repo.GetByID(ctx, GetProductOptions{ProductID: "p1"})
		assert.Error(t, err)
	})
}
