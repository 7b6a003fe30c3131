package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeerrry/gitc/pkg/object"
	"github.com/jeerrry/gitc/pkg/repo"
)

func newLsTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls-tree <tree-id>",
		Short: "List a tree object's entries",
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
			tree, err := object.UnmarshalTree(obj.Body)
			if err != nil {
				return err
			}
			for _, e := range tree.Entries {
				kind := object.TypeBlob
				if e.Mode == object.TreeModeDir {
					kind = object.TypeTree
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\t%s\n", e.Mode, kind, object.EncodeHex(e.Digest[:]), e.Name)
			}
			return nil
		},
	}
}
