package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeerrry/gitc/pkg/object"
	"github.com/jeerrry/gitc/pkg/repo"
)

func newCatFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat-file <id>",
		Short: "Print an object's kind and body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			obj, err := r.Store.Read(object.Hash(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", obj.Kind)
			cmd.OutOrStdout().Write(obj.Body)
			return nil
		},
	}
}
