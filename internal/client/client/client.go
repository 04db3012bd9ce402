package client

import (
	"context"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

// Client is the contract the services use to reach the account API.
type Client interface {
	// Profile runs the profile query with token as bearer credential.
	Profile(ctx context.Context, token string) (*models.UserProfile, error)
	// Login exchanges credentials for a token and the user's profile.
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	// Register creates an account and returns the server's confirmation text.
	Register(ctx context.Context, in models.Registration) (string, error)
}
