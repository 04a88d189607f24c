package main

import (
	"fmt"

	"saes-go/pkg/saes"

	"github.com/urfave/cli/v2"
)

// Reference constants of the classroom exercise.
const (
	demoPlaintext  uint16 = 0b0110111101101011
	demoKey        uint16 = 0b1010011100111011
	demoCiphertext uint16 = 0b0000011100111000
)

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:   "demo",
		Usage:  "encrypt and decrypt the fixed reference plaintext and ciphertext",
		Action: demoCmd,
	}
}

func demoCmd(c *cli.Context) error {
	rk := saes.ExpandKey(demoKey)
	w := c.App.Writer

	fmt.Fprintln(w, "This program encrypts a fixed binary plaintext with simplified AES")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Binary Key:            ", saes.Binary(uint64(demoKey), 16))
	fmt.Fprintln(w, "Binary Plaintext:      ", saes.Binary(uint64(demoPlaintext), 16))
	fmt.Fprintln(w, "Binary Ciphertext:     ", saes.Binary(uint64(saes.Encrypt(demoPlaintext, rk)), 16))
	fmt.Fprintln(w, "Binary Decrypted text: ", saes.Binary(uint64(saes.Decrypt(demoCiphertext, rk)), 16))
	return nil
}
