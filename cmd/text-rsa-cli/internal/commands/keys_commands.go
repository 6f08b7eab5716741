package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/text-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/text-rsa/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for generating RSA key pairs via CLI.
type KeyCommandHandler struct {
	rsaKeyProcessor cryptoalg.RSAKeyProcessor
	logger          logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler logging to logOutput.
func NewKeyCommandHandler(logOutput io.Writer) (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger(logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaKeyProcessor, err := cryptography.NewRSAKeyProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA key processor: %w", err)
	}

	return &KeyCommandHandler{
		rsaKeyProcessor: rsaKeyProcessor,
		logger:          loggerInstance,
	}, nil
}

// GenerateKeysCmd generates an RSA key pair and persists it in the selected directory
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	privateKey, publicKey, err := commandHandler.rsaKeyProcessor.GenerateKeys(keySize)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Clean(keyDir), 0750); err != nil {
		return fmt.Errorf("failed to create key directory: %w", err)
	}

	uniqueID := uuid.New().String()

	privateKeyFilePath := filepath.Join(keyDir, uniqueID+"-private-key.pem")
	if err := commandHandler.rsaKeyProcessor.SavePrivateKeyToFile(privateKey, privateKeyFilePath); err != nil {
		return err
	}

	publicKeyFilePath := filepath.Join(keyDir, uniqueID+"-public-key.pem")
	if err := commandHandler.rsaKeyProcessor.SavePublicKeyToFile(publicKey, publicKeyFilePath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), privateKeyFilePath)
	fmt.Fprintln(cmd.OutOrStdout(), publicKeyFilePath)
	return nil
}

// InitKeyCommands registers the key commands with the root command.
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler(errStream{cmd: rootCmd})
	if err != nil {
		return fmt.Errorf("failed to create key command handler: %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair as PEM files",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", 2048, "RSA key size in bits (512, 1024, 2048, 3072 or 4096)")
	generateKeysCmd.Flags().StringP("key-dir", "", ".", "Directory to store the RSA keys")
	rootCmd.AddCommand(generateKeysCmd)

	return nil
}
