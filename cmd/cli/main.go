package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/accountcli/internal/buildinfo"
	"github.com/dmitrijs2005/accountcli/internal/client/cli"
	"github.com/dmitrijs2005/accountcli/internal/client/client"
	"github.com/dmitrijs2005/accountcli/internal/client/config"
	"github.com/dmitrijs2005/accountcli/internal/client/storage"
	"github.com/dmitrijs2005/accountcli/internal/flagx"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Printf("%v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	api := client.NewGraphQLClient(cfg.APIURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger),
	)

	app := cli.NewApp(cfg, store, api, logger)

	// unblock a pending prompt read so deferred cleanup runs on Ctrl-C
	stdin := os.Stdin
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = stdin.Close()
		case <-done:
		}
	}()

	if cmds := flagx.Positionals(args, config.ValueFlags); len(cmds) > 0 {
		return app.RunCommand(ctx, cmds[0])
	}

	buildinfo.PrintBuildData(os.Stdout)
	app.Run(ctx)
	return nil
}
