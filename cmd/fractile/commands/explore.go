package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/fractile/internal/ui/style"
)

func (c *CLI) newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Pan and zoom interactively in the terminal",
		Long: `Pan and zoom interactively in the terminal.

Keys: arrows or hjkl pan, + and - zoom, 0 resets the view, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Explore(cmd.Context(), viewOptions(cmd))
		},
	}
	addViewFlags(cmd)
	return cmd
}

func (c *CLI) newPalettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List the available palettes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, name := range c.app.Palettes() {
				_, _ = fmt.Fprintf(out, "%s %s\n", style.Bullet, name)
			}
		},
	}
}
