package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/fractile/internal/app"
	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/ui/style"
)

func (c *CLI) newBookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Save and inspect named views",
	}
	cmd.AddCommand(c.newBookmarkSaveCmd())
	cmd.AddCommand(c.newBookmarkListCmd())
	cmd.AddCommand(c.newBookmarkShowCmd())
	return cmd
}

func (c *CLI) newBookmarkSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the configured view, or the given coordinates, under NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			opts := app.BookmarkOptions{ConfigPath: configPath}
			opts.OriginX = floatFlag(cmd, "origin-x")
			opts.OriginY = floatFlag(cmd, "origin-y")
			opts.Scale = floatFlag(cmd, "scale")

			b, err := c.app.SaveBookmark(args[0], opts)
			if err != nil {
				return err
			}
			printBookmark(cmd.OutOrStdout(), b)
			return nil
		},
	}
	cmd.Flags().Float64("origin-x", 0, "Real part of the top-left corner")
	cmd.Flags().Float64("origin-y", 0, "Imaginary part of the top-left corner")
	cmd.Flags().Float64("scale", 0, "Field units per pixel")
	return cmd
}

// floatFlag returns the flag value, or nil when it was not set.
func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func (c *CLI) newBookmarkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.app.Bookmarks()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				_, _ = fmt.Fprintln(out, style.Muted.Render("no bookmarks"))
				return nil
			}
			for i := range list {
				b := &list[i]
				_, _ = fmt.Fprintf(out, "%s %s %s\n", style.Bullet, style.Title.Render(b.Name),
					style.Muted.Render(fmt.Sprintf("(%.6g, %.6g) scale %.3g", b.OriginX, b.OriginY, b.Scale)))
			}
			return nil
		},
	}
}

func (c *CLI) newBookmarkShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a saved bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.app.Bookmark(args[0])
			if err != nil {
				return err
			}
			printBookmark(cmd.OutOrStdout(), b)
			return nil
		},
	}
}

func printBookmark(w io.Writer, b *domain.Bookmark) {
	_, _ = fmt.Fprintln(w, style.Title.Render(b.Name))
	_, _ = fmt.Fprintf(w, "  origin:  %g, %g\n", b.OriginX, b.OriginY)
	_, _ = fmt.Fprintf(w, "  scale:   %g\n", b.Scale)
	_, _ = fmt.Fprintf(w, "  created: %s\n", b.CreatedAt.Format(time.RFC3339))
}
