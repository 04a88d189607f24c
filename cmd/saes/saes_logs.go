package main

import (
	"errors"
	"fmt"
	"time"

	"saes-go/pkg/log"

	"github.com/urfave/cli/v2"
)

// timeFormats are tried in order when a time spec is not a duration.
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimeSpec accepts a duration back from now ("1h", "30m") or an
// absolute timestamp.
func parseTimeSpec(spec string, now time.Time) (time.Time, error) {
	if d, err := time.ParseDuration(spec); err == nil {
		return now.Add(-d), nil
	}
	for _, layout := range timeFormats {
		if ts, err := time.ParseInLocation(layout, spec, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time specification: '%s'. Use relative duration (e.g., '1h', '30m') or absolute format (e.g., '2023-10-27T15:04:05Z')", spec)
}

func logsCommand() *cli.Command {
	return &cli.Command{
		Name:        "logs",
		Usage:       "print entries of the operation journal",
		UsageText:   "saes logs [--dbfile FILE] [-n N | --since TIME_SPEC | --op encrypt|decrypt]",
		Description: `Reads the SQLite journal written when --log-db (or log_db) is set.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dbfile",
				Aliases: []string{"d"},
				Usage:   "journal `FILE` (defaults to log_db)",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of most recent entries `NUMBER`",
				Value:   20,
			},
			&cli.StringFlag{
				Name:    "since",
				Aliases: []string{"s"},
				Usage:   "entries since `TIME_SPEC` (e.g., '1h', '2023-10-27T10:00:00Z')",
			},
			&cli.StringFlag{
				Name:  "op",
				Usage: "only entries for operation `OP`",
			},
		},
		Action: logsCmd,
	}
}

func logsCmd(c *cli.Context) error {
	if c.IsSet("since") && c.IsSet("op") {
		return cli.Exit("Error: --since and --op cannot be combined.", 1)
	}

	if !log.Initialized() {
		dbFile := c.String("dbfile")
		if dbFile == "" {
			dbFile = cfg.LogDB
		}
		if dbFile == "" {
			return cli.Exit("Error: no journal configured, pass --dbfile or set log_db.", 1)
		}
		if err := log.Init(dbFile); err != nil {
			return cli.Exit(fmt.Sprintf("Error opening journal: %v", err), 1)
		}
	}

	count := c.Int("count")
	if count <= 0 {
		return cli.Exit("Error: --count (-n) must be a positive number.", 1)
	}

	var (
		results []log.LogEntry
		err     error
	)
	switch {
	case c.IsSet("since"):
		start, perr := parseTimeSpec(c.String("since"), time.Now())
		if perr != nil {
			return cli.Exit(fmt.Sprintf("Error parsing start time: %v", perr), 1)
		}
		results, err = log.GetLogsSince(start, count)
	case c.IsSet("op"):
		results, err = log.GetLogsByOp(c.String("op"), count)
	default:
		results, err = log.GetLastNLogs(count)
	}
	if err != nil {
		if errors.Is(err, log.ErrNotInitialized) {
			return cli.Exit("Internal Error: journal handle became unavailable.", 2)
		}
		return cli.Exit(fmt.Sprintf("Error retrieving logs: %v", err), 1)
	}

	if len(results) == 0 {
		fmt.Fprintln(c.App.ErrWriter, "No log entries found matching the criteria.")
		return nil
	}
	for _, entry := range results {
		fmt.Fprint(c.App.Writer, entry.LogData)
	}
	return nil
}
