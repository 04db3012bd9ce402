package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountcli/internal/client/client"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

// AuthService defines the authentication operations behind the forms.
//
// Contract:
//   - Login: exchange credentials for a token and persist token + profile.
//   - Register: create an account; nothing is persisted.
//   - Logout: drop the local session.
//
// Input is expected to be validated by the caller (see package forms).
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.UserProfile, error)
	Register(ctx context.Context, in models.Registration) (string, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions *SessionService
	logger   logging.Logger
}

// NewAuthService constructs an AuthService bound to the API client and the
// local session.
func NewAuthService(c client.Client, sessions *SessionService, logger logging.Logger) AuthService {
	return &authService{client: c, sessions: sessions, logger: logger}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.UserProfile, error) {
	res, err := a.client.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.sessions.Save(ctx, res.Token, res.Usuario); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	a.logger.Info(ctx, "logged in", "email", creds.Email)
	return res.Usuario, nil
}

func (a *authService) Register(ctx context.Context, in models.Registration) (string, error) {
	msg, err := a.client.Register(ctx, in)
	if err != nil {
		return "", fmt.Errorf("register error: %w", err)
	}
	a.logger.Info(ctx, "registered", "username", in.Username)
	return msg, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}
