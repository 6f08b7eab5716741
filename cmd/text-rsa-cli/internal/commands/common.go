package commands

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/text-rsa/internal/pkg/config"
	"github.com/MGTheTrain/text-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// WorkersFlag is the persistent flag bounding the exponentiation goroutines.
const WorkersFlag = "workers"

// errStream writes to the command's error stream as resolved at write time, so a writer
// set with SetErr after the commands are registered still receives the logs.
type errStream struct {
	cmd *cobra.Command
}

func (w errStream) Write(p []byte) (int, error) {
	return w.cmd.ErrOrStderr().Write(p)
}

// setupLogger logs to w. Stdout is left to command output so cipher text can be piped.
func setupLogger(w io.Writer) (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	return logger.NewConsoleLogger(w, settings.LogLevel), nil
}

// InitCommands registers the persistent flags and all command groups with the root command.
func InitCommands(rootCmd *cobra.Command) error {
	rootCmd.PersistentFlags().Int(WorkersFlag, config.DefaultCipherWorkers, "Number of goroutines exponentiating symbols")

	if err := InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	return nil
}
