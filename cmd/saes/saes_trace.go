package main

import (
	"fmt"
	"os"

	"saes-go/pkg/diagram"
	"saes-go/pkg/saes"

	"github.com/urfave/cli/v2"
)

func traceCommand() *cli.Command {
	return &cli.Command{
		Name:        "trace",
		Usage:       "show every intermediate state of one block",
		UsageText:   "saes [--key WORD] trace [--decrypt] [--dot | --svg FILE] WORD",
		Description: `Prints the state after each transform as its 2x2 nibble grid (column-major) and as a 16-bit word.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "decrypt",
				Aliases: []string{"d"},
				Usage:   "trace decryption instead of encryption",
			},
			&cli.BoolFlag{
				Name:  "dot",
				Usage: "print Graphviz DOT source instead of a table",
			},
			&cli.StringFlag{
				Name:  "svg",
				Usage: "render the trace as SVG into `FILE`",
			},
		},
		Action: traceCmd,
	}
}

func traceCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Error: trace takes exactly one block.", 1)
	}
	if c.Bool("dot") && c.IsSet("svg") {
		return cli.Exit("Error: --dot and --svg cannot be combined.", 1)
	}
	block, err := saes.ParseWord(c.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	rk := saes.ExpandKey(cfg.KeyWord())
	tr := saes.EncryptTrace(block, rk)
	if c.Bool("decrypt") {
		tr = saes.DecryptTrace(block, rk)
	}

	switch {
	case c.Bool("dot"):
		fmt.Fprint(c.App.Writer, diagram.DOT(tr))
	case c.IsSet("svg"):
		svg, err := diagram.SVG(c.Context, tr)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error rendering trace: %v", err), 1)
		}
		path := c.String("svg")
		if err := os.WriteFile(path, svg, 0o644); err != nil {
			return cli.Exit(fmt.Sprintf("Error writing %s: %v", path, err), 1)
		}
		fmt.Fprintf(c.App.Writer, "wrote %s\n", path)
	default:
		printTrace(c, tr)
	}
	return nil
}

func printTrace(c *cli.Context, tr saes.Trace) {
	w := c.App.Writer
	fmt.Fprintf(w, "%s %s -> %s\n", tr.Direction, saes.FormatWord(tr.Input, cfg.Format), saes.FormatWord(tr.Output, cfg.Format))
	for _, st := range tr.Steps {
		s := st.State
		fmt.Fprintf(w, "  r%d %-20s [%x %x / %x %x]  %s\n", st.Round, st.Name, s[0], s[2], s[1], s[3], saes.FormatWord(st.Word(), cfg.Format))
	}
}
