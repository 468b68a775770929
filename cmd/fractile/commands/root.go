// Package commands implements the CLI commands for fractile.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/fractile/internal/app"
	"go.trai.ch/fractile/internal/build"
	"go.trai.ch/fractile/internal/core/domain"
)

// CLI represents the command line interface for fractile.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(json, verbose bool)
	Render(ctx context.Context, opts app.RenderOptions) (*domain.RenderSummary, error)
	Watch(ctx context.Context, opts app.RenderOptions) error
	Explore(ctx context.Context, opts app.ViewOptions) error
	SaveBookmark(name string, opts app.BookmarkOptions) (*domain.Bookmark, error)
	Bookmarks() ([]domain.Bookmark, error)
	Bookmark(name string) (*domain.Bookmark, error)
	Palettes() []string
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "fractile",
		Short:         "An infinitely zoomable escape-time fractal renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			jsonLogs, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")
			a.ConfigureLogging(jsonLogs, verbose)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Registered before the version flag so -v stays with --verbose.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to fractile.yaml (default: discovered from the working directory)")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newExploreCmd())
	rootCmd.AddCommand(c.newBookmarkCmd())
	rootCmd.AddCommand(c.newPalettesCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addViewFlags registers the flags shared by every command that opens a view.
func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("bookmark", "b", "", "Start at a saved bookmark")
	cmd.Flags().Int("width", 0, "Override the render width in pixels")
	cmd.Flags().Int("height", 0, "Override the render height in pixels")
	cmd.Flags().StringP("palette", "p", "", "Override the palette")
	cmd.Flags().IntP("workers", "j", 0, "Override the number of workers")
}

func viewOptions(cmd *cobra.Command) app.ViewOptions {
	configPath, _ := cmd.Flags().GetString("config")
	bookmark, _ := cmd.Flags().GetString("bookmark")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	palette, _ := cmd.Flags().GetString("palette")
	workers, _ := cmd.Flags().GetInt("workers")
	return app.ViewOptions{
		ConfigPath: configPath,
		Bookmark:   bookmark,
		Width:      width,
		Height:     height,
		Palette:    palette,
		Workers:    workers,
	}
}
