package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"saes-go/pkg/api"
	"saes-go/pkg/log"

	"github.com/urfave/cli/v2"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "serve encrypt, decrypt, keys and trace over HTTP",
		UsageText: "saes serve [--listen ADDR]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Usage: "listen `ADDR` (defaults to listen_address)",
			},
		},
		Action: serveCmd,
	}
}

func serveCmd(c *cli.Context) error {
	addr := cfg.ListenAddr
	if c.IsSet("listen") {
		addr = c.String("listen")
	}
	srv := api.New(addr)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()
	fmt.Fprintf(c.App.Writer, "listening on %s\n", addr)

	select {
	case err := <-errc:
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		return nil
	case <-ctx.Done():
		log.Printf("shutting down api")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("api did not shut down cleanly")
		return cli.Exit(fmt.Sprintf("Error during shutdown: %v", err), 1)
	}
	return <-errc
}
