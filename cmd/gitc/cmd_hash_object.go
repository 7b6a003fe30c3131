package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeerrry/gitc/pkg/object"
	"github.com/jeerrry/gitc/pkg/repo"
)

func newHashObjectCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "hash-object <path>",
		Short: "Frame a file as a blob and print its identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if write {
				r, err := repo.Open(".")
				if err != nil {
					return err
				}
				id, err := r.Store.WriteBlobFromPath(path)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("hash-object: %w", err)
			}
			id := object.HashBytes(object.Frame(object.TypeBlob, data))
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "persist the blob to the object store")
	return cmd
}
