package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/accountcli/internal/flagx"
)

// ValueFlags lists every flag that takes a separate value. cmd/cli uses it to
// tell flags apart from the command to run.
var ValueFlags = []string{"-a", "-d", "-s", "-r", "-t", "-l", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   GraphQL endpoint url
//	-d string   session store driver (sqlite, redis, memory)
//	-s string   sqlite session file
//	-r string   redis address
//	-t int      request timeout in seconds (0 = none)
//	-l string   log level
//
// Only these flags are parsed; the rest of args is filtered out with
// flagx.FilterArgs so -c and the command name do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-r", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "GraphQL endpoint url")
	fs.StringVar(&cfg.StoreDriver, "d", cfg.StoreDriver, "session store driver")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "sqlite session file")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
