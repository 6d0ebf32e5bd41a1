// Package commands implements the CLI commands for cratedock.
package commands

import (
	"context"

	"github.com/cratedock/cratedock/internal/app"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for cratedock.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cratedock",
		Short:         "Stage dependencies for offline builds and derive license and checksum manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("workroot", "w", ".", "Working root containing the lockfile")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func workroot(cmd *cobra.Command) string {
	root, _ := cmd.Flags().GetString("workroot")
	if root == "" {
		root = "."
	}
	return root
}
