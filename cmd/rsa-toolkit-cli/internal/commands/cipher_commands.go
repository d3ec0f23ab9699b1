package commands

import (
	"fmt"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/spf13/cobra"
)

// CipherCommandHandler encapsulates logic for encrypting and decrypting files via CLI.
type CipherCommandHandler struct {
	env *Environment
}

// EncryptCmd encrypts --input-file with a public key
func (commandHandler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.env.load(); err != nil {
		return err
	}
	key, err := resolveKey(cmd, textbook.KeyTypePublic)
	if err != nil {
		return err
	}
	inputFile, outputFile, err := fileFlags(cmd, commandHandler.env.cfg.Codec.EncryptedFile)
	if err != nil {
		return err
	}

	if err := commandHandler.env.cipherService.EncryptFile(cmd.Context(), inputFile, outputFile, key); err != nil {
		return err
	}
	commandHandler.env.logger.Info("Encrypted data path ", outputFile)
	return nil
}

// DecryptCmd decrypts --input-file with a private key
func (commandHandler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.env.load(); err != nil {
		return err
	}
	key, err := resolveKey(cmd, textbook.KeyTypePrivate)
	if err != nil {
		return err
	}
	inputFile, outputFile, err := fileFlags(cmd, commandHandler.env.cfg.Codec.DecryptedFile)
	if err != nil {
		return err
	}

	if err := commandHandler.env.cipherService.DecryptFile(cmd.Context(), inputFile, outputFile, key); err != nil {
		return err
	}
	commandHandler.env.logger.Info("Decrypted data path ", outputFile)
	return nil
}

func fileFlags(cmd *cobra.Command, defaultOutput string) (string, string, error) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return "", "", fmt.Errorf("invalid output-file flag: %w", err)
	}
	if outputFile == "" {
		outputFile = defaultOutput
	}
	return inputFile, outputFile, nil
}

// InitCipherCommands registers encryption and decryption commands
func InitCipherCommands(rootCmd *cobra.Command, env *Environment) error {
	handler := &CipherCommandHandler{env: env}

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with a public key",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("key", "", "", "Public key string (20 hex characters)")
	encryptCmd.Flags().StringP("key-file", "", "", "Path to a key bundle")
	encryptCmd.Flags().StringP("key-type", "", "", "Key of the bundle to use (default public)")
	encryptCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file (default from config, rsa.cip)")
	if err := encryptCmd.MarkFlagRequired("input-file"); err != nil {
		return err
	}
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file with a private key",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("key", "", "", "Private key string (20 hex characters)")
	decryptCmd.Flags().StringP("key-file", "", "", "Path to a key bundle")
	decryptCmd.Flags().StringP("key-type", "", "", "Key of the bundle to use (default private)")
	decryptCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file (default from config, rsa.out)")
	if err := decryptCmd.MarkFlagRequired("input-file"); err != nil {
		return err
	}
	rootCmd.AddCommand(decryptCmd)
	return nil
}
