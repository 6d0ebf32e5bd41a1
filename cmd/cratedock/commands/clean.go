package commands

import (
	"fmt"

	"github.com/cratedock/cratedock/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the vendored tree and the lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Clean(cmd.Context(), workroot(cmd)); err != nil {
				fmt.Println(style.Failure("clean failed"))
				return err
			}
			fmt.Println(style.Success("cleaned generated artifacts"))
			return nil
		},
	}
}
