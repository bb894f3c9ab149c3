package storage

import (
	"net/http"

	"donorlink-web/internal/session"

	"github.com/google/uuid"
)

// Provider hands out the client storage belonging to the client that sent r.
type Provider interface {
	For(w http.ResponseWriter, r *http.Request) session.Store
}

const (
	DeviceCookie = "device_id"
	DeviceHeader = "X-Device-ID"
)

// DeviceID identifies the client behind r. The X-Device-ID header wins over
// the device_id cookie; a client with neither is issued a new id cookie.
func DeviceID(w http.ResponseWriter, r *http.Request) string {
	if id, ok := parseDeviceID(r.Header.Get(DeviceHeader)); ok {
		return id
	}
	if c, err := r.Cookie(DeviceCookie); err == nil {
		if id, ok := parseDeviceID(c.Value); ok {
			return id
		}
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     DeviceCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func parseDeviceID(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
