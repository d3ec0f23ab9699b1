package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/keyfile"

	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for generating and listing keys via CLI.
type KeyCommandHandler struct {
	env *Environment
}

// CreateKeysCmd derives a key pair from the primes given in --p and --q
func (commandHandler *KeyCommandHandler) CreateKeysCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.env.load(); err != nil {
		return err
	}
	p, err := cmd.Flags().GetInt64("p")
	if err != nil {
		return fmt.Errorf("invalid p flag: %w", err)
	}
	q, err := cmd.Flags().GetInt64("q")
	if err != nil {
		return fmt.Errorf("invalid q flag: %w", err)
	}

	kp, err := commandHandler.env.keyService.GenerateFromPrimes(cmd.Context(), p, q)
	if err != nil {
		return err
	}
	return commandHandler.emit(cmd, kp)
}

// GenerateKeysCmd derives a key pair from two randomly sampled primes
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.env.load(); err != nil {
		return err
	}

	kp, err := commandHandler.env.keyService.GenerateRandom(cmd.Context())
	if err != nil {
		return err
	}
	return commandHandler.emit(cmd, kp)
}

// emit prints both key strings and writes the bundle when --key-file is set
func (commandHandler *KeyCommandHandler) emit(cmd *cobra.Command, kp *textbook.GeneratedKeyPair) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Public key:  %s\n", kp.PublicKey)
	fmt.Fprintf(out, "Private key: %s\n", kp.PrivateKey)

	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return fmt.Errorf("invalid key-file flag: %w", err)
	}
	if keyFile == "" {
		return nil
	}

	if err := keyfile.Save(keyFile, keyfile.FromGenerated(kp)); err != nil {
		return err
	}
	commandHandler.env.logger.Info("Key bundle saved at ", keyFile)
	return nil
}

// ListKeysCmd prints recorded keys from the key registry
func (commandHandler *KeyCommandHandler) ListKeysCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.env.load(); err != nil {
		return err
	}

	query := textbook.NewKeyRecordQuery()
	var err error
	if query.Type, err = cmd.Flags().GetString("type"); err != nil {
		return fmt.Errorf("invalid type flag: %w", err)
	}
	if query.KeyPairID, err = cmd.Flags().GetString("key-pair-id"); err != nil {
		return fmt.Errorf("invalid key-pair-id flag: %w", err)
	}
	if query.Limit, err = cmd.Flags().GetInt("limit"); err != nil {
		return fmt.Errorf("invalid limit flag: %w", err)
	}
	if err := query.Validate(); err != nil {
		return err
	}

	records, err := commandHandler.env.keyService.List(cmd.Context(), query)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKEY PAIR\tTYPE\tKEY\tCREATED")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.KeyPairID, r.Type, r.KeyString, r.DateTimeCreated.Format("2006-01-02T15:04:05Z07:00"))
	}
	return w.Flush()
}

// DeleteKeyCmd removes a recorded key from the key registry
func (commandHandler *KeyCommandHandler) DeleteKeyCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.env.load(); err != nil {
		return err
	}
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		return fmt.Errorf("invalid id flag: %w", err)
	}

	if err := commandHandler.env.keyService.DeleteByID(cmd.Context(), id); err != nil {
		return err
	}
	commandHandler.env.logger.Info("Deleted key record ", id)
	return nil
}

// InitKeyCommands registers key generation and key registry commands
func InitKeyCommands(rootCmd *cobra.Command, env *Environment) error {
	handler := &KeyCommandHandler{env: env}

	var createKeysCmd = &cobra.Command{
		Use:   "create-keys",
		Short: "Create a key pair from two given primes",
		RunE:  handler.CreateKeysCmd,
	}
	createKeysCmd.Flags().Int64P("p", "", 0, "First prime")
	createKeysCmd.Flags().Int64P("q", "", 0, "Second prime, distinct from p")
	createKeysCmd.Flags().StringP("key-file", "", "", "Optional path to store the key bundle")
	if err := createKeysCmd.MarkFlagRequired("p"); err != nil {
		return err
	}
	if err := createKeysCmd.MarkFlagRequired("q"); err != nil {
		return err
	}
	rootCmd.AddCommand(createKeysCmd)

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a key pair from two random primes",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().StringP("key-file", "", "", "Optional path to store the key bundle")
	rootCmd.AddCommand(generateKeysCmd)

	var listKeysCmd = &cobra.Command{
		Use:   "list-keys",
		Short: "List keys recorded in the key registry (requires persist_keys)",
		RunE:  handler.ListKeysCmd,
	}
	listKeysCmd.Flags().StringP("type", "", "", "Filter by key type (public or private)")
	listKeysCmd.Flags().StringP("key-pair-id", "", "", "Filter by key pair ID")
	listKeysCmd.Flags().IntP("limit", "", 10, "Maximum number of records")
	rootCmd.AddCommand(listKeysCmd)

	var deleteKeyCmd = &cobra.Command{
		Use:   "delete-key",
		Short: "Delete a key from the key registry (requires persist_keys)",
		RunE:  handler.DeleteKeyCmd,
	}
	deleteKeyCmd.Flags().StringP("id", "", "", "Key record ID")
	if err := deleteKeyCmd.MarkFlagRequired("id"); err != nil {
		return err
	}
	rootCmd.AddCommand(deleteKeyCmd)
	return nil
}
