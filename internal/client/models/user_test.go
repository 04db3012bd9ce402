package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfile_LastAccess(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   time.Time
		wantOK bool
	}{
		{"rfc3339", "2024-03-05T10:20:30Z", time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC), true},
		{"epoch millis", "1709634030000", time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "yesterday", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := UserProfile{UltimoAcceso: Timestamp(tt.raw)}.LastAccess()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestUserProfile_JSONFieldNames(t *testing.T) {
	raw := `{"id":"u1","nombre":"Ana","email":"ana@example.com","username":"ana","ultimoAcceso":"2024-01-01T00:00:00Z"}`

	var u UserProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &u))

	assert.Equal(t, UserProfile{
		ID:           "u1",
		Nombre:       "Ana",
		Email:        "ana@example.com",
		Username:     "ana",
		UltimoAcceso: "2024-01-01T00:00:00Z",
	}, u)
}

func TestUserProfile_UltimoAccesoAcceptsNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Timestamp
	}{
		{"string", `"2024-03-05T10:20:30Z"`, "2024-03-05T10:20:30Z"},
		{"epoch millis number", `1709634030000`, "1709634030000"},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u UserProfile
			require.NoError(t, json.Unmarshal([]byte(`{"id":"u1","ultimoAcceso":`+tt.raw+`}`), &u))
			assert.Equal(t, tt.want, u.UltimoAcceso)
		})
	}

	var u UserProfile
	require.NoError(t, json.Unmarshal([]byte(`{"ultimoAcceso":1709634030000}`), &u))
	got, ok := u.LastAccess()
	require.True(t, ok)
	assert.True(t, time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC).Equal(got))

	// cached copy round-trips as a string
	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"ultimoAcceso":"1709634030000"`)
}

func TestUserProfile_UltimoAccesoRejectsObject(t *testing.T) {
	var u UserProfile
	require.Error(t, json.Unmarshal([]byte(`{"ultimoAcceso":{"a":1}}`), &u))
}
