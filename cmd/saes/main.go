package main

import (
	"fmt"
	"io"
	"os"

	"saes-go/pkg/config"
	"saes-go/pkg/log"
	"saes-go/pkg/saes"

	"github.com/urfave/cli/v2"
)

// Version information - set at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// cfg is loaded by the Before hook of the app.
var cfg *config.Config

// flagKeys maps global flags onto configuration keys.
var flagKeys = map[string]string{
	"key":    "key",
	"format": "format",
	"log-db": "log_db",
	"debug":  "debug",
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "saes",
		Usage:     "simplified AES: 16-bit blocks, 16-bit keys, two rounds over GF(2^4)",
		Version:   fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration file `PATH` or name",
				Value:   "saes",
			},
			&cli.StringFlag{
				Name:    "key",
				Aliases: []string{"k"},
				Usage:   "16-bit key `WORD` (0b..., 0x..., or decimal)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: bin, hex or dec",
			},
			&cli.StringFlag{
				Name:  "log-db",
				Usage: "record operations in the SQLite journal `FILE`",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log to stderr at debug level",
			},
		},
		Before: loadConfig,
		After: func(c *cli.Context) error {
			return log.Close()
		},
		Commands: []*cli.Command{
			encryptCommand(),
			decryptCommand(),
			keysCommand(),
			traceCommand(),
			tablesCommand(),
			demoCommand(),
			sweepCommand(),
			serveCommand(),
			logsCommand(),
		},
	}
}

func loadConfig(c *cli.Context) error {
	overrides := map[string]any{}
	for flag, key := range flagKeys {
		if !c.IsSet(flag) {
			continue
		}
		if flag == "debug" {
			overrides[key] = c.Bool(flag)
		} else {
			overrides[key] = c.String(flag)
		}
	}

	loaded, err := config.Load(c.String("config"), overrides)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	cfg = loaded

	log.SetDebug(cfg.Debug)
	if cfg.Debug {
		log.SetStd()
	}
	if cfg.LogDB != "" {
		if err := log.Init(cfg.LogDB); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	log.Debug().Str("config", cfg.ConfigFile).Str("key", saes.FormatWord(cfg.KeyWord(), "hex")).
		Str("format", cfg.Format).Msg("configuration loaded")
	return nil
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
