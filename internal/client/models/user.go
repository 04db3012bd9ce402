package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UserProfile is the account record returned by the obtenerPerfil query.
// JSON names follow the API; the same encoding is used for the local cache.
type UserProfile struct {
	ID           string    `json:"id"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	UltimoAcceso Timestamp `json:"ultimoAcceso"`
}

// Timestamp keeps a date scalar as raw text. The API sends either a string
// or a bare number (epoch milliseconds); both decode, null leaves it empty.
type Timestamp string

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Timestamp(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*t = Timestamp(n.String())
	return nil
}

// LastAccess parses UltimoAcceso. The API may send an RFC 3339 timestamp or
// epoch milliseconds; ok is false for anything else.
func (u UserProfile) LastAccess() (t time.Time, ok bool) {
	raw := strings.TrimSpace(string(u.UltimoAcceso))
	if raw == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return parsed, true
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), true
	}
	return time.Time{}, false
}
