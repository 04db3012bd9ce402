package services

import (
	"context"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

// Status summarises the cached session without contacting the server.
type Status struct {
	LoggedIn bool
	User     *models.UserProfile
	// Token is set when the token is a readable JWT; TokenErr otherwise.
	Token    *TokenInfo
	TokenErr error
}

// Status reads the local session. The user is the cached, possibly stale copy.
func (s *SessionService) Status(ctx context.Context) (*Status, error) {
	sess, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	st := &Status{LoggedIn: sess.Token != "", User: sess.User}
	if !st.LoggedIn {
		return st, nil
	}

	info, err := InspectToken(sess.Token)
	if err != nil {
		st.TokenErr = err
		return st, nil
	}
	st.Token = &info
	return st, nil
}
