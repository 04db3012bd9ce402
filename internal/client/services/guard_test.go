package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountcli/internal/client/client"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/client/storage"
)

var (
	cachedUser = &models.UserProfile{ID: "1", Nombre: "Old", Email: "old@example.com", Username: "old"}
	freshUser  = &models.UserProfile{ID: "1", Nombre: "New", Email: "new@example.com", Username: "new", UltimoAcceso: "2024-05-01T10:00:00Z"}
)

func userJSON(t *testing.T, u *models.UserProfile) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

func newGuard(t *testing.T, store storage.Store, fc *fakeClient) *Guard {
	t.Helper()
	return NewGuard(NewSessionService(store, nopLogger()), fc, nopLogger())
}

func loggedInStore(t *testing.T) *storage.MemoryStore {
	t.Helper()
	store := storage.NewMemoryStore()
	seed(t, store, map[string]string{KeyToken: "tok", KeyUser: userJSON(t, cachedUser)})
	return store
}

func TestGuard_NoTokenRedirectsWithoutRequest(t *testing.T) {
	store := storage.NewMemoryStore()
	seed(t, store, map[string]string{KeyUser: userJSON(t, cachedUser)})
	fc := &fakeClient{}

	var observed []Decision
	d := newGuard(t, store, fc).Check(context.Background(), func(d Decision) { observed = append(observed, d) })

	assert.Equal(t, DecisionRedirect, d.Kind)
	assert.Zero(t, fc.ProfileCalls)
	assert.Empty(t, observed)
}

func TestGuard_SuccessOverwritesCache(t *testing.T) {
	store := loggedInStore(t)
	fc := &fakeClient{ProfileRet: freshUser}

	var observed []Decision
	d := newGuard(t, store, fc).Check(context.Background(), func(d Decision) { observed = append(observed, d) })

	require.Len(t, observed, 1)
	assert.Equal(t, DecisionLoading, observed[0].Kind)
	assert.Equal(t, cachedUser, observed[0].Profile, "stale copy shown while loading")

	assert.Equal(t, DecisionProfile, d.Kind)
	assert.Equal(t, freshUser, d.Profile)
	assert.Equal(t, 1, fc.ProfileCalls)
	assert.Equal(t, "tok", fc.LastToken)

	raw, ok := get(t, store, KeyUser)
	require.True(t, ok)
	assert.JSONEq(t, userJSON(t, freshUser), raw)
	tok, _ := get(t, store, KeyToken)
	assert.Equal(t, "tok", tok)
}

func TestGuard_LoadingWithoutCachedUser(t *testing.T) {
	store := storage.NewMemoryStore()
	seed(t, store, map[string]string{KeyToken: "tok", KeyUser: "garbage"})
	fc := &fakeClient{ProfileRet: freshUser}

	var observed []Decision
	d := newGuard(t, store, fc).Check(context.Background(), func(d Decision) { observed = append(observed, d) })

	require.Len(t, observed, 1)
	assert.Nil(t, observed[0].Profile)
	assert.Equal(t, DecisionProfile, d.Kind)
}

func TestGuard_NilObserver(t *testing.T) {
	d := newGuard(t, loggedInStore(t), &fakeClient{ProfileRet: freshUser}).Check(context.Background(), nil)
	assert.Equal(t, DecisionProfile, d.Kind)
}

func TestGuard_Classification(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    DecisionKind
		wantMessage string
		wantCleared bool
	}{
		{"401", &client.StatusError{StatusCode: 401}, DecisionRedirect, "", true},
		{"400", &client.StatusError{StatusCode: 400}, DecisionRedirect, "", true},
		{"403", &client.StatusError{StatusCode: 403}, DecisionRedirect, "", true},
		{"500", &client.StatusError{StatusCode: 500}, DecisionError, "HTTP error: 500", false},
		{"api auth error", &client.APIError{Messages: []string{"No AUTENTICADO"}}, DecisionRedirect, "", true},
		{"api token error", &client.APIError{Messages: []string{"Token inválido"}}, DecisionRedirect, "", true},
		{"api other error", &client.APIError{Messages: []string{"Base de datos caída"}}, DecisionError, "Base de datos caída", false},
		{"api empty list", &client.APIError{}, DecisionError, "unknown error", false},
		{"unreachable", fmt.Errorf("%w: dial tcp", client.ErrUnavailable), DecisionError, MsgUnreachable, false},
		{"empty payload", client.ErrEmptyPayload, DecisionError, MsgNoProfile, false},
		{"malformed", fmt.Errorf("%w: eof", client.ErrMalformedResponse), DecisionError, MsgMalformed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := loggedInStore(t)
			fc := &fakeClient{ProfileErr: tt.err}

			d := newGuard(t, store, fc).Check(context.Background(), nil)

			assert.Equal(t, tt.wantKind, d.Kind)
			assert.Equal(t, tt.wantMessage, d.Message)
			assert.Equal(t, 1, fc.ProfileCalls)

			_, hasToken := get(t, store, KeyToken)
			_, hasUser := get(t, store, KeyUser)
			assert.Equal(t, !tt.wantCleared, hasToken)
			assert.Equal(t, !tt.wantCleared, hasUser)

			if tt.wantKind == DecisionError {
				assert.ErrorIs(t, d.Err, tt.err)
				raw, _ := get(t, store, KeyUser)
				assert.JSONEq(t, userJSON(t, cachedUser), raw, "cache untouched on error")
			}
		})
	}
}

func TestGuard_StoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("read", func(t *testing.T) {
		store := newFaultyStore()
		store.GetErr = errStore
		fc := &fakeClient{}

		d := newGuard(t, store, fc).Check(ctx, nil)
		assert.Equal(t, DecisionError, d.Kind)
		assert.Equal(t, MsgSessionReadErr, d.Message)
		assert.Zero(t, fc.ProfileCalls)
	})

	t.Run("write after success", func(t *testing.T) {
		store := newFaultyStore()
		seed(t, store.MemoryStore, map[string]string{KeyToken: "tok"})
		store.SetErr = errStore

		d := newGuard(t, store, &fakeClient{ProfileRet: freshUser}).Check(ctx, nil)
		assert.Equal(t, DecisionError, d.Kind)
		assert.Equal(t, MsgSessionWriteErr, d.Message)
		assert.ErrorIs(t, d.Err, errStore)
	})

	t.Run("clear after rejection", func(t *testing.T) {
		store := newFaultyStore()
		seed(t, store.MemoryStore, map[string]string{KeyToken: "tok"})
		store.RemoveErr = errStore

		d := newGuard(t, store, &fakeClient{ProfileErr: &client.StatusError{StatusCode: 401}}).Check(ctx, nil)
		assert.Equal(t, DecisionError, d.Kind)
		assert.Equal(t, MsgSessionWriteErr, d.Message)
	})
}

func TestDecisionKind_String(t *testing.T) {
	assert.Equal(t, "redirect", DecisionRedirect.String())
	assert.Equal(t, "loading", DecisionLoading.String())
	assert.Equal(t, "error", DecisionError.String())
	assert.Equal(t, "profile", DecisionProfile.String())
	assert.Equal(t, "unknown", DecisionKind(42).String())
}
