// Package main is the entry point for the rsa-toolkit-cli application.
// It registers the key, cipher and prime sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Jesso3/RSA-Encyption/cmd/rsa-toolkit-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-toolkit-cli",
		Short: "Textbook RSA toolkit",
		Long: `rsa-toolkit-cli derives textbook RSA key pairs from small primes and encrypts
files byte by byte into fixed-width hex cipher units.

Key strings are 20 hex characters: a 10 digit exponent followed by a 10 digit modulus.
Settings are read from --config (YAML) and RSA_TOOLKIT_* environment variables.
Set persist_keys to record generated keys in the key registry.`,
		SilenceUsage: true,
	}

	env := commands.NewEnvironment(rootCmd)
	defer func() {
		if err := env.Close(); err != nil {
			log.Printf("failed to close key registry: %v", err)
		}
	}()

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd, env); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command, env *commands.Environment) error {
	if err := commands.InitKeyCommands(rootCmd, env); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitCipherCommands(rootCmd, env); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	if err := commands.InitPrimeCommands(rootCmd, env); err != nil {
		return fmt.Errorf("failed to initialize prime commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
