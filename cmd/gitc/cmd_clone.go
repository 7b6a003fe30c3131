package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeerrry/gitc/internal/logging"
	"github.com/jeerrry/gitc/pkg/repo"
	"github.com/jeerrry/gitc/pkg/transport"
)

func newCloneCmd() *cobra.Command {
	var noCache bool
	var logLevel string

	cmd := &cobra.Command{
		Use:   "clone <url> <dir>",
		Short: "Clone a remote repository over the smart HTTP transport",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, dir := args[0], args[1]

			log, err := logging.New(logLevel)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer log.Sync()

			client := transport.NewClient(transport.ClientOptions{MaxAttempts: 3}, log)

			if err := repo.Clone(url, dir, client, !noCache, log); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cloned %s into %s\n", url, dir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the on-disk pack cache")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "structured log level (debug, info, warn, error)")
	return cmd
}
