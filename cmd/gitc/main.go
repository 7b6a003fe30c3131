package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jeerrry/gitc/pkg/object"
)

func main() {
	root := &cobra.Command{
		Use:   "gitc",
		Short: "A minimal distributed version-control client",
	}

	root.AddCommand(newInitCmd())
	root.AddCommand(newCloneCmd())
	root.AddCommand(newCatFileCmd())
	root.AddCommand(newHashObjectCmd())
	root.AddCommand(newLsTreeCmd())
	root.AddCommand(newWriteTreeCmd())
	root.AddCommand(newCommitTreeCmd())

	if err := root.Execute(); err != nil {
		printError(root.Use, err)
		os.Exit(1)
	}
}

// printError writes the single required diagnostic line identifying
// the operation and the error kind.
func printError(op string, err error) {
	kind := object.Kind("unknown")
	var oe *object.Error
	if errors.As(err, &oe) {
		kind = oe.Kind
		op = oe.Op
	}
	fmt.Fprintln(color.Error, color.RedString("%s: %s: %v", op, kind, err))
}
