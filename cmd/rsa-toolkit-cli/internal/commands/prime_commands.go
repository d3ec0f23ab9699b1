package commands

import (
	"fmt"

	"github.com/Jesso3/RSA-Encyption/internal/pkg/numtheory"

	"github.com/spf13/cobra"
)

// IsPrimeCmd reports whether --candidate is a prime no larger than the upper bound
func IsPrimeCmd(env *Environment) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := env.load(); err != nil {
			return err
		}
		candidate, err := cmd.Flags().GetInt64("candidate")
		if err != nil {
			return fmt.Errorf("invalid candidate flag: %w", err)
		}
		upperBound, err := cmd.Flags().GetInt64("upper-bound")
		if err != nil {
			return fmt.Errorf("invalid upper-bound flag: %w", err)
		}
		if upperBound == 0 {
			upperBound = env.cfg.KeyGen.UpperLimit
		}

		if numtheory.IsPrime(candidate, upperBound) {
			fmt.Fprintf(cmd.OutOrStdout(), "%d is prime\n", candidate)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%d is not a prime up to %d\n", candidate, upperBound)
		}
		return nil
	}
}

// InitPrimeCommands registers the primality check command
func InitPrimeCommands(rootCmd *cobra.Command, env *Environment) error {
	var isPrimeCmd = &cobra.Command{
		Use:   "is-prime",
		Short: "Check whether a number is prime",
		RunE:  IsPrimeCmd(env),
	}
	isPrimeCmd.Flags().Int64P("candidate", "", 0, "Number to check")
	isPrimeCmd.Flags().Int64P("upper-bound", "", 0, "Largest accepted candidate (default keygen.upper_limit)")
	if err := isPrimeCmd.MarkFlagRequired("candidate"); err != nil {
		return err
	}
	rootCmd.AddCommand(isPrimeCmd)
	return nil
}
