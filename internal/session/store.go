package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// RecordKey is the client storage key holding the logged-in user.
const RecordKey = "user"

// Store is client-local key/value storage for one client.
//
// Load reports found=false for a missing key. Delete of a missing key is not
// an error.
type Store interface {
	Load(ctx context.Context, key string) (value string, found bool, err error)
	Save(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Encode serializes u as stored under RecordKey.
func Encode(u StoredUser) (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses a stored record. Only text that is not JSON at all, or the
// JSON null, is reported as ErrCorruptRecord. Any other JSON value decodes;
// fields that are missing or of the wrong type are left empty, so a record
// such as 42 or {"role":7} yields a user with no role.
func Decode(raw string) (StoredUser, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return StoredUser{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if strings.TrimSpace(raw[dec.InputOffset():]) != "" {
		return StoredUser{}, fmt.Errorf("%w: trailing data after record", ErrCorruptRecord)
	}
	if v == nil {
		return StoredUser{}, fmt.Errorf("%w: null record", ErrCorruptRecord)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return StoredUser{}, nil
	}

	return StoredUser{
		ID:    field(obj, "id"),
		Name:  field(obj, "name"),
		Email: field(obj, "email"),
		Role:  Role(field(obj, "role")),
	}, nil
}

// field reads a string or numeric member of obj, or "" for anything else.
func field(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case json.Number:
		if key == "role" {
			return ""
		}
		return v.String()
	default:
		return ""
	}
}
