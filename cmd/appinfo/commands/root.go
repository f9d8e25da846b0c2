// Package commands implements the CLI commands for the appinfo tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"go.trai.ch/appinfo/internal/app"
)

// CLI represents the command line interface for appinfo.
type CLI struct {
	accessor *app.Accessor
	rootCmd  *cobra.Command
}

// New creates a new CLI instance with the given accessor.
func New(accessor *app.Accessor) *CLI {
	rootCmd := &cobra.Command{
		Use:           "appinfo",
		Short:         "Inspect the application metadata of the running host",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		accessor: accessor,
		rootCmd:  rootCmd,
	}

	rootCmd.AddCommand(c.newShowCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}
