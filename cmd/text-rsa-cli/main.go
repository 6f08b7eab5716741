// Package main is the entry point for the text-rsa-cli application.
// It registers the key generation and text cipher commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/text-rsa/cmd/text-rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "text-rsa-cli",
		Short: "Textbook RSA over text",
		Long: `text-rsa-cli encrypts and decrypts text with textbook RSA.
Every symbol is mapped to a small integer, exponentiated modulo n and written
as a '#'-delimited list of decimal numbers.

Keys are given either as PEM files (see generate-keys) or as a raw
--exponent and --modulus pair. Textbook RSA is not secure; use it for teaching
and experiments only.`,
		SilenceUsage: true,
	}

	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
