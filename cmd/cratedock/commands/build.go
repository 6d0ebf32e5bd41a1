package commands

import (
	"fmt"

	"github.com/cratedock/cratedock/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Stage all dependencies and write the license and checksum manifests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := c.app.Build(cmd.Context(), workroot(cmd))
			if err != nil {
				fmt.Println(style.Failure("build failed"))
				return err
			}
			fmt.Println(style.Success(fmt.Sprintf(
				"staged %d packages, %d license entries, %d checksum rows",
				summary.Packages, summary.Licenses, summary.ChecksumRows)))
			fmt.Println(style.Muted("wrote license and checksum manifests"))
			return nil
		},
	}
}
