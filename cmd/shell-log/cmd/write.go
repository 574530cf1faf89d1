package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	logging "github.com/Station-Manager/shell-logging"
)

func newWriteCmd() *cobra.Command {
	var (
		flags    settingsFlags
		level    string
		location string
	)

	cmd := &cobra.Command{
		Use:   "write [message...]",
		Short: "Initialize the logger and submit one message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := flags.settings(cmd)
			if err != nil {
				return err
			}

			logging.Default().SetConsole(cmd.OutOrStdout())
			if err = logging.InitLogger(settings); err != nil {
				return err
			}
			logging.LogMessage(level, strings.Join(args, " "), location)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&level, "level", "l", "info", "Record level")
	cmd.Flags().StringVar(&location, "location", "", "Origin tag (default: frontend)")
	return cmd
}
