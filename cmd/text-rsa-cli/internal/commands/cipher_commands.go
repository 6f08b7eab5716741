package commands

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/text-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/text-rsa/internal/pkg/config"
	"github.com/MGTheTrain/text-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/text-rsa/internal/pkg/validators"

	"github.com/spf13/cobra"
)

// CipherCommandHandler encapsulates logic for encrypting and decrypting text via CLI.
type CipherCommandHandler struct {
	rsaKeyProcessor cryptoalg.RSAKeyProcessor
	logger          logger.Logger
}

// NewCipherCommandHandler initializes a new CipherCommandHandler logging to logOutput.
func NewCipherCommandHandler(logOutput io.Writer) (*CipherCommandHandler, error) {
	loggerInstance, err := setupLogger(logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaKeyProcessor, err := cryptography.NewRSAKeyProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA key processor: %w", err)
	}

	return &CipherCommandHandler{
		rsaKeyProcessor: rsaKeyProcessor,
		logger:          loggerInstance,
	}, nil
}

// EncryptCmd encrypts the text of the input file (stdin when unset)
func (commandHandler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	textRSA, err := commandHandler.textRSAProcessor(cmd)
	if err != nil {
		return err
	}

	exponent, modulus, err := commandHandler.resolveKey(cmd)
	if err != nil {
		return err
	}

	plainText, err := readInput(cmd)
	if err != nil {
		return err
	}

	cipherText, err := textRSA.Encrypt(cmdContext(cmd), string(plainText), exponent, modulus)
	if err != nil {
		return err
	}

	return writeOutput(cmd, cipherText)
}

// DecryptCmd decrypts the cipher text of the input file (stdin when unset)
func (commandHandler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	textRSA, err := commandHandler.textRSAProcessor(cmd)
	if err != nil {
		return err
	}

	exponent, modulus, err := commandHandler.resolveKey(cmd)
	if err != nil {
		return err
	}

	cipherText, err := readInput(cmd)
	if err != nil {
		return err
	}

	// cipher texts hold no whitespace, a trailing newline comes from editors or shells
	plainText, err := textRSA.Decrypt(cmdContext(cmd), strings.TrimSpace(string(cipherText)), exponent, modulus)
	if err != nil {
		return err
	}

	return writeOutput(cmd, plainText)
}

func (commandHandler *CipherCommandHandler) textRSAProcessor(cmd *cobra.Command) (cryptoalg.TextRSAProcessor, error) {
	workers, err := cmd.Flags().GetInt(WorkersFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid workers flag: %w", err)
	}

	settings := config.DefaultCipherSettings()
	settings.Workers = workers

	return cryptography.NewTextRSAProcessor(settings, commandHandler.logger)
}

// resolveKey returns (exponent, modulus) from exactly one of --public-key, --private-key
// or the --exponent/--modulus pair.
func (commandHandler *CipherCommandHandler) resolveKey(cmd *cobra.Command) (*big.Int, *big.Int, error) {
	publicKeyPath, _ := cmd.Flags().GetString("public-key")
	privateKeyPath, _ := cmd.Flags().GetString("private-key")
	exponentText, _ := cmd.Flags().GetString("exponent")
	modulusText, _ := cmd.Flags().GetString("modulus")

	sources := 0
	for _, set := range []bool{publicKeyPath != "", privateKeyPath != "", exponentText != "" || modulusText != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, nil, fmt.Errorf("exactly one of --public-key, --private-key or --exponent with --modulus is required")
	}

	switch {
	case publicKeyPath != "":
		publicKey, err := commandHandler.rsaKeyProcessor.ReadPublicKey(publicKeyPath)
		if err != nil {
			return nil, nil, err
		}
		key := cryptography.PublicToTextKey(publicKey)
		return key.E, key.N, nil
	case privateKeyPath != "":
		privateKey, err := commandHandler.rsaKeyProcessor.ReadPrivateKey(privateKeyPath)
		if err != nil {
			return nil, nil, err
		}
		key := cryptography.PrivateToTextKey(privateKey)
		return key.D, key.N, nil
	}

	exponent, ok := validators.ParseDecimal(exponentText)
	if !ok {
		return nil, nil, fmt.Errorf("invalid exponent %q: expected a non-negative decimal integer", exponentText)
	}
	modulus, ok := validators.ParseDecimal(modulusText)
	if !ok {
		return nil, nil, fmt.Errorf("invalid modulus %q: expected a non-negative decimal integer", modulusText)
	}
	return exponent, modulus, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func readInput(cmd *cobra.Command) ([]byte, error) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return nil, fmt.Errorf("invalid input-file flag: %w", err)
	}

	if inputFile == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

func writeOutput(cmd *cobra.Command, text string) error {
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	if outputFile == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}

	if err := os.WriteFile(filepath.Clean(outputFile), []byte(text), 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("public-key", "", "", "Path to PEM RSA public key, uses (e, n)")
	cmd.Flags().StringP("private-key", "", "", "Path to PEM RSA private key, uses (d, n)")
	cmd.Flags().StringP("exponent", "", "", "Decimal exponent, used with --modulus")
	cmd.Flags().StringP("modulus", "", "", "Decimal modulus, used with --exponent")
	cmd.MarkFlagsRequiredTogether("exponent", "modulus")
}

// InitCipherCommands registers the encrypt and decrypt commands with the root command.
func InitCipherCommands(rootCmd *cobra.Command) error {
	handler, err := NewCipherCommandHandler(errStream{cmd: rootCmd})
	if err != nil {
		return fmt.Errorf("failed to create cipher command handler: %w", err)
	}

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text into a '#'-delimited cipher text",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input-file", "", "", "Path to the text to encrypt (stdin when empty)")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to the cipher text output (stdout when empty)")
	addKeyFlags(encryptCmd)
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a '#'-delimited cipher text",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input-file", "", "", "Path to the cipher text (stdin when empty)")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to the decrypted output (stdout when empty)")
	addKeyFlags(decryptCmd)
	rootCmd.AddCommand(decryptCmd)

	return nil
}
