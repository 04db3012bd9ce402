// Package services contains application services for the account CLI:
// the local session, the dashboard guard and the login/register flows.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/client/storage"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

// Keys of the session in the local store.
const (
	KeyToken = "auth_token"
	KeyUser  = "user"
)

// batchSetter is implemented by stores that can write several keys atomically.
type batchSetter interface {
	SetMany(ctx context.Context, pairs map[string]string) error
}

// SessionService reads and writes the token/user pair in a storage.Store.
type SessionService struct {
	store  storage.Store
	logger logging.Logger
}

func NewSessionService(store storage.Store, logger logging.Logger) *SessionService {
	return &SessionService{store: store, logger: logger}
}

// Load returns the cached session. A missing token yields an empty Token;
// a cached user that does not decode is logged and dropped.
func (s *SessionService) Load(ctx context.Context) (*models.Session, error) {
	token, _, err := s.store.Get(ctx, KeyToken)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}

	sess := &models.Session{Token: token}

	raw, ok, err := s.store.Get(ctx, KeyUser)
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if !ok || raw == "" {
		return sess, nil
	}

	var u models.UserProfile
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.logger.Warn(ctx, "ignoring unreadable cached user", "error", err)
		return sess, nil
	}
	sess.User = &u
	return sess, nil
}

// Save stores the token and the user. A nil user removes any cached one so a
// previous account's profile never outlives its token.
func (s *SessionService) Save(ctx context.Context, token string, user *models.UserProfile) error {
	pairs := map[string]string{KeyToken: token}
	if user == nil {
		if err := s.store.Remove(ctx, KeyUser); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	} else {
		b, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		pairs[KeyUser] = string(b)
	}

	if bs, ok := s.store.(batchSetter); ok {
		if err := bs.SetMany(ctx, pairs); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		return nil
	}
	for k, v := range pairs {
		if err := s.store.Set(ctx, k, v); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}
	return nil
}

// SaveProfile overwrites the cached user and leaves the token alone.
func (s *SessionService) SaveProfile(ctx context.Context, user *models.UserProfile) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.Set(ctx, KeyUser, string(b)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Clear removes both keys.
func (s *SessionService) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, KeyToken, KeyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
