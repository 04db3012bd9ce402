package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/accountcli/internal/client/client"
	"github.com/dmitrijs2005/accountcli/internal/client/config"
	"github.com/dmitrijs2005/accountcli/internal/client/forms"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/client/services"
	"github.com/dmitrijs2005/accountcli/internal/client/storage"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

// App holds the screens of the CLI and the services behind them.
type App struct {
	config       *config.Config
	authService  services.AuthService
	sessions     *services.SessionService
	guard        *services.Guard
	loginForm    *forms.Form[models.Credentials]
	registerForm *forms.Form[models.Registration]
	logger       logging.Logger

	reader      *bufio.Reader
	out         io.Writer
	now         func() time.Time
	userName    string
	interactive bool
}

// NewApp wires the services over store and api. Input is read from stdin
// and screens are written to stdout.
func NewApp(c *config.Config, store storage.Store, api client.Client, logger logging.Logger) *App {
	sessions := services.NewSessionService(store, logger)
	return &App{
		config:       c,
		authService:  services.NewAuthService(api, sessions, logger),
		sessions:     sessions,
		guard:        services.NewGuard(sessions, api, logger),
		loginForm:    forms.NewLoginForm(),
		registerForm: forms.NewRegisterForm(),
		logger:       logger,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		now:          time.Now,
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", a.userName)
}

// restoreUser fills the prompt from the cached profile without any request.
func (a *App) restoreUser(ctx context.Context) {
	sess, err := a.sessions.Load(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not read session", "error", err)
		return
	}
	if sess.Token != "" && sess.User != nil {
		a.userName = sess.User.Username
	}
}

// Run starts the interactive loop and blocks until the user exits, input
// ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.interactive = true
	a.restoreUser(ctx)

	fmt.Fprintf(a.out, "Account CLI, server %s (type 'help' for commands)\n", a.config.APIURL)
	runREPL(ctx, a, a.getStatus, a.reader)
}

// RunCommand runs a single command without the loop.
func (a *App) RunCommand(ctx context.Context, cmd string) error {
	a.restoreUser(ctx)

	_, known, err := dispatch(ctx, a, cmd)
	if !known {
		return fmt.Errorf("unknown command %q", cmd)
	}
	return err
}
