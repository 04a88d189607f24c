package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"saes-go/pkg/saes"
	"saes-go/pkg/sweep"

	"github.com/urfave/cli/v2"
)

func sweepCommand() *cli.Command {
	return &cli.Command{
		Name:      "sweep",
		Usage:     "check decrypt(encrypt(p)) == p for every block under a range of keys",
		UsageText: "saes sweep [--from WORD] [--to WORD] [--workers N]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Usage: "first key `WORD` of the range",
				Value: "0x0000",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "last key `WORD` of the range",
				Value: "0xffff",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of keys checked in parallel (defaults to sweep_workers)",
			},
		},
		Action: sweepCmd,
	}
}

func sweepCmd(c *cli.Context) error {
	from, err := saes.ParseWord(c.String("from"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: --from: %v", err), 1)
	}
	to, err := saes.ParseWord(c.String("to"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: --to: %v", err), 1)
	}
	workers := cfg.SweepWorkers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := sweep.Run(ctx, &sweep.Options{From: from, To: to, Workers: workers})
	if err != nil {
		if ctx.Err() == context.Canceled {
			return cli.Exit("sweep interrupted", 130)
		}
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	sweep.Print(c.App.Writer, res)
	if !res.OK() {
		return cli.Exit("sweep found failures", 1)
	}
	return nil
}
