package auth

import (
	"net/http"
	"strings"
)

const AccessTokenCookie = "access_token"

func ExtractAccessToken(r *http.Request) string {
	// cookie first
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	// Authorization header fallback
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

func SetAccessToken(w http.ResponseWriter, token string, maxAge int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearAccessToken(w http.ResponseWriter, secure bool) {
	SetAccessToken(w, "", -1, secure)
}
