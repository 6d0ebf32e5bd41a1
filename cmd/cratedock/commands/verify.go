package commands

import (
	"fmt"

	"github.com/cratedock/cratedock/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the vendored tree against the lockfile's pinned checksums",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := c.app.Verify(cmd.Context(), workroot(cmd))
			if err != nil {
				fmt.Println(style.Failure("verification failed"))
				return err
			}
			fmt.Println(style.Success(fmt.Sprintf(
				"vendored tree matches the lockfile (%d packages)", summary.Packages)))
			return nil
		},
	}
}
