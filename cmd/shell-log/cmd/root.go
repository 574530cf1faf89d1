// Package cmd provides the CLI commands for shell-log.
package cmd

import (
	"github.com/spf13/cobra"

	logging "github.com/Station-Manager/shell-logging"
)

// settingsFlags are shared by every subcommand that needs Settings.
type settingsFlags struct {
	configPath   string
	logPath      string
	logType      string
	maxFileSize  uint64
	consoleLevel string
	fileLevel    string
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML settings file")
	cmd.Flags().StringVar(&f.logPath, "log-path", "", "Log directory (default: platform log directory)")
	cmd.Flags().StringVar(&f.logType, "log-type", "", "Log type: session or unified")
	cmd.Flags().Uint64Var(&f.maxFileSize, "max-file-size", 0, "Rollover size in bytes for unified logs")
	cmd.Flags().StringVar(&f.consoleLevel, "console-level", "", "Console threshold")
	cmd.Flags().StringVar(&f.fileLevel, "file-level", "", "File threshold")
}

// settings loads the config file, if any, and applies flags that were set.
func (f *settingsFlags) settings(cmd *cobra.Command) (logging.Settings, error) {
	s := logging.DefaultSettings()
	if f.configPath != "" {
		loaded, err := logging.LoadSettings(f.configPath)
		if err != nil {
			return s, err
		}
		s = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-path") {
		s.LogPath = f.logPath
	}
	if flags.Changed("log-type") {
		s.LogType = logging.Value(f.logType)
	}
	if flags.Changed("max-file-size") {
		s.MaxFileSize = f.maxFileSize
	}
	if flags.Changed("console-level") {
		s.ConsoleLevel = logging.Value(f.consoleLevel)
	}
	if flags.Changed("file-level") {
		s.FileLevel = logging.Value(f.fileLevel)
	}
	return s, nil
}

// NewRootCmd creates the root command for the shell-log CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell-log",
		Short: "Drive the desktop shell's logging subsystem from a terminal",
		Long: `shell-log resolves log destinations and writes records exactly the way
the desktop shell does, using the same settings the UI sends.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newWriteCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
