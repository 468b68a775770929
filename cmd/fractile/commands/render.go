package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fractile/internal/app"
)

func addRenderFlags(cmd *cobra.Command) {
	addViewFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Write the image here instead of the configured path")
	cmd.Flags().StringP("format", "f", "", "Output format: png, bmp or tiff (default: from the output extension)")
	cmd.Flags().String("frames", "", "Write every distinct intermediate frame to this directory")
	cmd.Flags().Duration("timeout", 0, "Fail when tiles are still unfinished after this long (0 waits forever)")
	cmd.Flags().Bool("annotate", false, "Caption the image with the view coordinates")
}

func renderOptions(cmd *cobra.Command) app.RenderOptions {
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	frames, _ := cmd.Flags().GetString("frames")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	annotate, _ := cmd.Flags().GetBool("annotate")
	return app.RenderOptions{
		ViewOptions: viewOptions(cmd),
		Output:      output,
		Format:      format,
		FramesDir:   frames,
		Timeout:     timeout,
		Annotate:    annotate,
	}
}

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the configured view to an image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Render(cmd.Context(), renderOptions(cmd))
			return err
		},
	}
	addRenderFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render again whenever fractile.yaml changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), renderOptions(cmd))
		},
	}
	addRenderFlags(cmd)
	return cmd
}
