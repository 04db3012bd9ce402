package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountcli/internal/client/client"
	"github.com/dmitrijs2005/accountcli/internal/client/forms"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/client/services"
)

const lastAccessLayout = "2 January 2006 15:04"

// Home is the entry screen: it offers login or register.
func (a *App) Home(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome")
	fmt.Fprintln(a.out, "  1) Login")
	fmt.Fprintln(a.out, "  2) Register")

	choice, err := getSimpleText(a.reader, "Choose an option", a.out)
	if err != nil {
		return err
	}

	switch choice {
	case "1", "login":
		return a.Login(ctx)
	case "2", "register":
		return a.Register(ctx)
	default:
		fmt.Fprintln(a.out, "Unknown option:", choice)
		return nil
	}
}

// Login shows the login form and stores the session on success.
func (a *App) Login(ctx context.Context) error {
	fmt.Fprintln(a.out, "== "+a.loginForm.Title+" ==")

	values, err := collectValues(a.reader, a.loginForm.Fields, a.out)
	if err != nil {
		return err
	}

	var user *models.UserProfile
	err = a.loginForm.Submit(ctx, values, func(ctx context.Context, c models.Credentials) error {
		u, err := a.authService.Login(ctx, c)
		user = u
		return err
	})
	if err != nil {
		a.printFormError(a.loginForm.Fields, err)
		return err
	}

	if user != nil {
		a.userName = user.Username
		fmt.Fprintf(a.out, "Logged in as %s.\n", user.Username)
		a.printProfile(user)
	} else {
		fmt.Fprintln(a.out, "Logged in.")
	}
	fmt.Fprintln(a.out, "Type 'dashboard' to open your profile.")
	return nil
}

// Register shows the register form. Nothing is stored locally.
func (a *App) Register(ctx context.Context) error {
	fmt.Fprintln(a.out, "== "+a.registerForm.Title+" ==")

	values, err := collectValues(a.reader, a.registerForm.Fields, a.out)
	if err != nil {
		return err
	}

	var msg string
	err = a.registerForm.Submit(ctx, values, func(ctx context.Context, r models.Registration) error {
		m, err := a.authService.Register(ctx, r)
		msg = m
		return err
	})
	if err != nil {
		a.printFormError(a.registerForm.Fields, err)
		return err
	}

	if msg != "" {
		fmt.Fprintln(a.out, msg)
	}
	fmt.Fprintln(a.out, "Account created. Type 'login' to sign in.")
	return nil
}

// Dashboard runs the session guard and renders its decision. A redirect
// opens the login form.
func (a *App) Dashboard(ctx context.Context) error {
	d := a.guard.Check(ctx, a.renderLoading)

	switch d.Kind {
	case services.DecisionRedirect:
		a.userName = ""
		fmt.Fprintln(a.out, "You are not logged in.")
		return a.Login(ctx)

	case services.DecisionProfile:
		a.userName = d.Profile.Username
		fmt.Fprintln(a.out, "== Dashboard ==")
		a.printProfile(d.Profile)
		return nil

	default:
		fmt.Fprintln(a.out, "Error:", d.Message)
		fmt.Fprintln(a.out, "Type 'dashboard' to retry or 'login' to sign in again.")
		if d.Err != nil {
			return d.Err
		}
		return errors.New(d.Message)
	}
}

// Status prints the cached session without contacting the server.
func (a *App) Status(ctx context.Context) error {
	st, err := a.sessions.Status(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", services.MsgSessionReadErr)
		return err
	}

	if !st.LoggedIn {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintln(a.out, "Logged in.")
	if st.User != nil {
		fmt.Fprintf(a.out, "Cached user: %s <%s>\n", st.User.Username, st.User.Email)
	}
	switch {
	case st.Token == nil:
		fmt.Fprintln(a.out, "Token: opaque")
	case st.Token.ExpiresAt.IsZero():
		fmt.Fprintln(a.out, "Token: no expiry")
	case st.Token.Expired(a.now()):
		fmt.Fprintf(a.out, "Token: expired at %s\n", st.Token.ExpiresAt.Local().Format(lastAccessLayout))
	default:
		fmt.Fprintf(a.out, "Token: expires at %s\n", st.Token.ExpiresAt.Local().Format(lastAccessLayout))
	}
	return nil
}

// Logout forgets the session. In the interactive loop it then opens the
// login form.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", services.MsgSessionWriteErr)
		return err
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out.")

	if a.interactive {
		return a.Login(ctx)
	}
	return nil
}

func (a *App) renderLoading(d services.Decision) {
	fmt.Fprintln(a.out, "Loading dashboard... validating session")
	if d.Profile != nil {
		fmt.Fprintln(a.out, "(cached)")
		a.printProfile(d.Profile)
	}
}

func (a *App) printProfile(u *models.UserProfile) {
	fmt.Fprintf(a.out, "  Name:        %s\n", u.Nombre)
	fmt.Fprintf(a.out, "  Email:       %s\n", u.Email)
	fmt.Fprintf(a.out, "  Username:    %s\n", u.Username)
	fmt.Fprintf(a.out, "  Last access: %s\n", formatLastAccess(u))
	fmt.Fprintf(a.out, "  ID:          %s\n", u.ID)
}

func formatLastAccess(u *models.UserProfile) string {
	if t, ok := u.LastAccess(); ok {
		return t.Local().Format(lastAccessLayout)
	}
	if u.UltimoAcceso == "" {
		return "-"
	}
	return string(u.UltimoAcceso)
}

// printFormError prints validation messages in field order, or one line for
// any other failure.
func (a *App) printFormError(fields []forms.Field, err error) {
	var verrs forms.ValidationErrors
	if errors.As(err, &verrs) {
		for _, f := range fields {
			if msg, ok := verrs[f.Name]; ok {
				fmt.Fprintf(a.out, "%s: %s\n", f.Label, msg)
			}
		}
		return
	}
	a.logger.Debug(context.Background(), "form submission failed", "error", err)
	fmt.Fprintln(a.out, "Error:", userMessage(err))
}

func userMessage(err error) string {
	var apiErr *client.APIError
	var statusErr *client.StatusError

	switch {
	case errors.Is(err, forms.ErrSubmitInFlight):
		return "a submission is already in progress"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.As(err, &apiErr):
		return apiErr.Message()
	case errors.Is(err, client.ErrUnavailable):
		return services.MsgUnreachable
	case errors.As(err, &statusErr):
		return statusErr.Error()
	case errors.Is(err, client.ErrEmptyPayload):
		return "the server returned no data"
	case errors.Is(err, client.ErrMalformedResponse):
		return services.MsgMalformed
	}
	return err.Error()
}
