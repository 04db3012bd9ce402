// Package cli provides the interactive account command-line client.
//
// It wires configuration, the local session store, the GraphQL client and
// an interactive REPL with four screens: home, login, register and the
// protected dashboard. Each screen can also run once from the command line.
//
// Key features:
//   - Login / Register forms with client-side validation
//   - Dashboard guarded by a cached session that is revalidated on open
//   - Status (offline view of the cached session) and Logout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and dispatch for details.
package cli
