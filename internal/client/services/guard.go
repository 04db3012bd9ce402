package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/accountcli/internal/client/client"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

// DecisionKind is what the dashboard screen should do.
type DecisionKind int

const (
	DecisionRedirect DecisionKind = iota
	DecisionLoading
	DecisionError
	DecisionProfile
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionRedirect:
		return "redirect"
	case DecisionLoading:
		return "loading"
	case DecisionError:
		return "error"
	case DecisionProfile:
		return "profile"
	}
	return "unknown"
}

// Messages carried by error decisions.
const (
	MsgUnreachable     = "could not reach the server, check your connection"
	MsgNoProfile       = "could not retrieve user profile"
	MsgMalformed       = "the server sent an unreadable response"
	MsgSessionReadErr  = "could not read the local session"
	MsgSessionWriteErr = "could not update the local session"
)

// Decision is one state of the protected screen. Profile is set for loading
// (when a cached copy exists) and profile decisions; Message and Err for errors.
type Decision struct {
	Kind    DecisionKind
	Profile *models.UserProfile
	Message string
	Err     error
}

// Guard decides whether the protected screen may show the user's profile.
type Guard struct {
	sessions *SessionService
	client   client.Client
	logger   logging.Logger
}

func NewGuard(sessions *SessionService, c client.Client, logger logging.Logger) *Guard {
	return &Guard{sessions: sessions, client: c, logger: logger}
}

// Check runs one guard pass and returns its terminal decision.
//
// Without a token it redirects before any network call. Otherwise observe
// (if non-nil) first receives a loading decision carrying the cached profile,
// then exactly one profile query revalidates the token. Rejected tokens clear
// the session and redirect; a confirmed profile overwrites the cache.
// Nothing is retried.
func (g *Guard) Check(ctx context.Context, observe func(Decision)) Decision {
	sess, err := g.sessions.Load(ctx)
	if err != nil {
		g.logger.Error(ctx, "session read failed", "error", err)
		return Decision{Kind: DecisionError, Message: MsgSessionReadErr, Err: err}
	}

	if sess.Token == "" {
		return Decision{Kind: DecisionRedirect}
	}

	if observe != nil {
		observe(Decision{Kind: DecisionLoading, Profile: sess.User})
	}

	profile, err := g.client.Profile(ctx, sess.Token)
	if err != nil {
		return g.classify(ctx, err)
	}

	if err := g.sessions.SaveProfile(ctx, profile); err != nil {
		g.logger.Error(ctx, "session write failed", "error", err)
		return Decision{Kind: DecisionError, Message: MsgSessionWriteErr, Err: err}
	}
	return Decision{Kind: DecisionProfile, Profile: profile}
}

func (g *Guard) classify(ctx context.Context, err error) Decision {
	var apiErr *client.APIError
	var statusErr *client.StatusError

	switch {
	case errors.Is(err, client.ErrUnauthorized):
		g.logger.Info(ctx, "token rejected", "error", err)
		return g.logout(ctx)
	case errors.As(err, &apiErr):
		if apiErr.AuthRelated() {
			g.logger.Info(ctx, "token rejected by api", "message", apiErr.Message())
			return g.logout(ctx)
		}
		return Decision{Kind: DecisionError, Message: apiErr.Message(), Err: err}
	case errors.Is(err, client.ErrUnavailable):
		g.logger.Warn(ctx, "profile request failed", "error", err)
		return Decision{Kind: DecisionError, Message: MsgUnreachable, Err: err}
	case errors.As(err, &statusErr):
		return Decision{Kind: DecisionError, Message: statusErr.Error(), Err: err}
	case errors.Is(err, client.ErrEmptyPayload):
		return Decision{Kind: DecisionError, Message: MsgNoProfile, Err: err}
	case errors.Is(err, client.ErrMalformedResponse):
		g.logger.Warn(ctx, "unreadable profile response", "error", err)
		return Decision{Kind: DecisionError, Message: MsgMalformed, Err: err}
	default:
		return Decision{Kind: DecisionError, Message: err.Error(), Err: err}
	}
}

func (g *Guard) logout(ctx context.Context) Decision {
	if err := g.sessions.Clear(ctx); err != nil {
		g.logger.Error(ctx, "session clear failed", "error", err)
		return Decision{Kind: DecisionError, Message: MsgSessionWriteErr, Err: err}
	}
	return Decision{Kind: DecisionRedirect}
}
