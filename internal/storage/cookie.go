package storage

import (
	"context"
	"encoding/base64"
	"net/http"

	"donorlink-web/internal/session"
)

// Cookie keeps each storage key in a browser cookie of the same name, so the
// record lives with the client like browser local storage.
type Cookie struct {
	// Secure marks written cookies as HTTPS-only.
	Secure bool
	MaxAge int
}

func NewCookie(secure bool) *Cookie {
	return &Cookie{Secure: secure, MaxAge: 30 * 24 * 60 * 60}
}

func (c *Cookie) For(w http.ResponseWriter, r *http.Request) session.Store {
	return &cookieStore{cfg: c, w: w, r: r, written: make(map[string]*string)}
}

type cookieStore struct {
	cfg *Cookie
	w   http.ResponseWriter
	r   *http.Request
	// values written during this request, nil meaning deleted
	written map[string]*string
}

func (s *cookieStore) Load(_ context.Context, key string) (string, bool, error) {
	if v, ok := s.written[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}

	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		// hand back the raw value and let the caller judge it
		return c.Value, true, nil
	}
	return string(decoded), true, nil
}

func (s *cookieStore) Save(_ context.Context, key, value string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(value)),
		Path:     "/",
		MaxAge:   s.cfg.MaxAge,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.written[key] = &value
	return nil
}

func (s *cookieStore) Delete(_ context.Context, key string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.written[key] = nil
	return nil
}
