package main

import (
	"fmt"

	"saes-go/pkg/saes"

	"github.com/urfave/cli/v2"
)

func keysCommand() *cli.Command {
	return &cli.Command{
		Name:      "keys",
		Usage:     "print the round keys expanded from the key",
		UsageText: "saes [--key WORD] keys",
		Action:    keysCmd,
	}
}

func keysCmd(c *cli.Context) error {
	rk := saes.ExpandKey(cfg.KeyWord())
	for i, k := range rk {
		fmt.Fprintf(c.App.Writer, "K%d  %s  w%d=%02x w%d=%02x\n", i, saes.FormatWord(k.Word(), cfg.Format), 2*i, k[0], 2*i+1, k[1])
	}
	return nil
}
