package main

import (
	"fmt"

	"saes-go/pkg/log"
	"saes-go/pkg/saes"

	"github.com/urfave/cli/v2"
)

func encryptCommand() *cli.Command {
	return &cli.Command{
		Name:      "encrypt",
		Aliases:   []string{"enc"},
		Usage:     "encrypt one or more 16-bit blocks",
		UsageText: "saes [--key WORD] encrypt WORD...",
		Flags:     blockFlags(),
		Action:    func(c *cli.Context) error { return blockCmd(c, saes.DirEncrypt) },
	}
}

func decryptCommand() *cli.Command {
	return &cli.Command{
		Name:      "decrypt",
		Aliases:   []string{"dec"},
		Usage:     "decrypt one or more 16-bit blocks",
		UsageText: "saes [--key WORD] decrypt WORD...",
		Flags:     blockFlags(),
		Action:    func(c *cli.Context) error { return blockCmd(c, saes.DirDecrypt) },
	}
}

func blockFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "print input and output on each line",
		},
	}
}

// parseArgs parses every argument as a word, reporting the first bad one.
func parseArgs(c *cli.Context) ([]uint16, error) {
	if c.NArg() == 0 {
		return nil, cli.Exit("Error: at least one block is required.", 1)
	}
	words := make([]uint16, 0, c.NArg())
	for i, a := range c.Args().Slice() {
		w, err := saes.ParseWord(a)
		if err != nil {
			return nil, cli.Exit(fmt.Sprintf("Error: argument %d: %v", i+1, err), 1)
		}
		words = append(words, w)
	}
	return words, nil
}

func blockCmd(c *cli.Context, dir saes.Direction) error {
	words, err := parseArgs(c)
	if err != nil {
		return err
	}

	key := cfg.KeyWord()
	rk := saes.ExpandKey(key)
	op := saes.Encrypt
	if dir == saes.DirDecrypt {
		op = saes.Decrypt
	}

	verbose := c.Bool("verbose")
	for _, in := range words {
		out := op(in, rk)
		log.Info().Str("op", string(dir)).Str("key", saes.FormatWord(key, "hex")).
			Str("in", saes.FormatWord(in, "hex")).Str("out", saes.FormatWord(out, "hex")).Msg("block")
		if verbose {
			fmt.Fprintf(c.App.Writer, "%s -> %s\n", saes.FormatWord(in, cfg.Format), saes.FormatWord(out, cfg.Format))
		} else {
			fmt.Fprintln(c.App.Writer, saes.FormatWord(out, cfg.Format))
		}
	}
	return nil
}
