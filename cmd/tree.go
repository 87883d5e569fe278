package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/veld-lang/veld/types"
)

var TreeCmd = &cobra.Command{
	Use:          "tree [tag]",
	Short:        "Print the subtype tree under a tag (Any by default)",
	RunE:         runTree,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

func runTree(cmd *cobra.Command, args []string) error {
	root := types.Any
	if len(args) == 1 {
		tag, ok := types.Lookup(args[0])
		if !ok {
			return fmt.Errorf("no tag named %q is declared", args[0])
		}
		root = tag
	}
	fmt.Print(types.TreeString(root))
	return nil
}
