package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"donorlink-web/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAccessToken(t *testing.T) {
	t.Run("Cookie Preferred", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie_token"})
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "cookie_token", ExtractAccessToken(req))
	})

	t.Run("Header Fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "header_token", ExtractAccessToken(req))
	})

	t.Run("Empty Cookie Falls Back to Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: ""})
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "header_token", ExtractAccessToken(req))
	})

	t.Run("No Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, ExtractAccessToken(req))
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic user:pass")
		assert.Empty(t, ExtractAccessToken(req))
	})
}

func TestAccessTokenCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetAccessToken(w, "tok", 3600, true)
	ClearAccessToken(w, true)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, -1, cookies[1].MaxAge)
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	_, ok := IdentityFrom(ctx)
	assert.False(t, ok)
	uid, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
	assert.Zero(t, uid)
	assert.Equal(t, session.LoggedOut(), StateFrom(ctx))

	ctx = WithIdentity(ctx, Identity{UserID: 3, Role: session.RoleDonor})
	ctx = WithState(ctx, session.LoggedIn(session.RoleDonor))

	uid, ok = GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, 3, uid)
	assert.Equal(t, session.LoggedIn(session.RoleDonor), StateFrom(ctx))
}
