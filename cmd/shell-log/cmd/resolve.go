package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	logging "github.com/Station-Manager/shell-logging"
)

func newResolveCmd() *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the log file the current settings select",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := flags.settings(cmd)
			if err != nil {
				return err
			}
			path, err := logging.Resolver{}.Resolve(settings)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
