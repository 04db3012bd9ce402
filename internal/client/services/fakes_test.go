package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/client/storage"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	ProfileRet *models.UserProfile
	ProfileErr error

	LoginRet *models.LoginResult
	LoginErr error

	RegisterRet string
	RegisterErr error

	ProfileCalls  int
	LoginCalls    int
	RegisterCalls int

	LastToken    string
	LastEmail    string
	LastPassword string
	LastRegister models.Registration
}

func (f *fakeClient) Profile(ctx context.Context, token string) (*models.UserProfile, error) {
	f.ProfileCalls++
	f.LastToken = token
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	f.LoginCalls++
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, in models.Registration) (string, error) {
	f.RegisterCalls++
	f.LastRegister = in
	return f.RegisterRet, f.RegisterErr
}

var errStore = errors.New("disk on fire")

// faultyStore wraps a MemoryStore and fails the selected operations.
type faultyStore struct {
	*storage.MemoryStore
	GetErr, SetErr, RemoveErr error
}

func (s *faultyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *faultyStore) Set(ctx context.Context, key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func (s *faultyStore) Remove(ctx context.Context, keys ...string) error {
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	return s.MemoryStore.Remove(ctx, keys...)
}

func newFaultyStore() *faultyStore {
	return &faultyStore{MemoryStore: storage.NewMemoryStore()}
}

func seed(t *testing.T, s storage.Store, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		require.NoError(t, s.Set(context.Background(), k, v))
	}
}

func get(t *testing.T, s storage.Store, key string) (string, bool) {
	t.Helper()
	v, ok, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	return v, ok
}

func nopLogger() logging.Logger { return logging.Nop() }
