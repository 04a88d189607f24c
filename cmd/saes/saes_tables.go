package main

import (
	"fmt"
	"io"

	"saes-go/pkg/saes"

	"github.com/urfave/cli/v2"
)

func tablesCommand() *cli.Command {
	return &cli.Command{
		Name:   "tables",
		Usage:  "print the substitution tables and check that they invert each other",
		Action: tablesCmd,
	}
}

func printRow(w io.Writer, label string, t saes.Table) {
	fmt.Fprintf(w, "%-13s", label)
	for _, v := range t {
		fmt.Fprintf(w, " %x", v)
	}
	fmt.Fprintln(w)
}

func tablesCmd(c *cli.Context) error {
	w := c.App.Writer
	var index saes.Table
	for i := range index {
		index[i] = saes.Nibble(i)
	}
	printRow(w, "x", index)
	fwd, inv := saes.Tables()
	printRow(w, "Sub[x]", fwd)
	printRow(w, "SubInverse[x]", inv)

	if err := saes.VerifyTables(fwd, inv); err != nil {
		return cli.Exit(fmt.Sprintf("tables: %v", err), 1)
	}
	fmt.Fprintln(w, "tables: ok")
	return nil
}
