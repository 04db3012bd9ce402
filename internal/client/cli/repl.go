package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Status(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: home, login, register, dashboard, status, help, exit"
	helpLoggedIn  = "Available commands: dashboard, status, logout, home, login, register, help, exit"
)

// dispatch runs one command. quit is true for exit/quit; known reports
// whether cmd was recognised.
func dispatch(ctx context.Context, a execIface, cmd string) (quit, known bool, err error) {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
	case "home":
		err = a.Home(ctx)
	case "register":
		err = a.Register(ctx)
	case "login":
		err = a.Login(ctx)
	case "dashboard":
		err = a.Dashboard(ctx)
	case "status":
		err = a.Status(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "exit", "quit":
		printlnFn("Bye!")
		return true, true, nil
	default:
		return false, false, nil
	}
	return false, true, err
}

// runREPL starts a simple read–eval–print loop for the account CLI.
//
// It reads a line from reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF, context cancellation, or when the
// user types "exit" or "quit". reader is shared with the form prompts so that
// buffered input is never split between two readers.
//
// Prompt & Commands
//
//	home       — start screen: choose login or register
//	login      — log in and store the session
//	register   — create an account
//	dashboard  — verify the session and show the profile
//	status     — show the cached session (no network)
//	logout     — forget the session
//	help       — show available commands
//	exit|quit  — leave the program
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("acct%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		quit, known, _ := dispatch(ctx, a, cmd)
		if quit {
			return
		}
		if !known {
			printlnFn("Unknown command:", cmd)
		}
	}
}
