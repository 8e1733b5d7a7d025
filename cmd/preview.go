package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"svgflat.dev/pkg/svgflat/internal/adapter"
	"svgflat.dev/pkg/svgflat/internal/domain"
)

var (
	previewWidthFlag  int
	previewHeightFlag int
	previewStrokeFlag float64
	previewMarginFlag float64
)

// previewCmd represents the preview command.
var previewCmd = newPreviewCmd()

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [paths...]",
		Short: "Render PNG previews of the flattened polylines",
		Long:  previewLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Preview(cmd.Context(), domain.PreviewArgs{
				SourceArgs: sourceArgs(args),
				Output:     viper.GetString(outputConfigKey),
				Strict:     viper.GetBool(runStrictConfigKey),
				Options: adapter.PreviewOptions{
					Width:       viper.GetInt(previewWidthKey),
					Height:      viper.GetInt(previewHeightKey),
					StrokeWidth: viper.GetFloat64(previewStrokeKey),
					Margin:      viper.GetFloat64(previewMarginKey),
				},
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&previewWidthFlag, widthFlagName, viper.GetInt(previewWidthKey), "image width in pixels")
	bindFlagToConfig(flags.Lookup(widthFlagName), previewWidthKey)
	flags.IntVar(&previewHeightFlag, heightFlagName, viper.GetInt(previewHeightKey), "image height in pixels")
	bindFlagToConfig(flags.Lookup(heightFlagName), previewHeightKey)
	flags.Float64Var(&previewStrokeFlag, strokeWidthFlagName, viper.GetFloat64(previewStrokeKey), "stroke width in pixels")
	bindFlagToConfig(flags.Lookup(strokeWidthFlagName), previewStrokeKey)
	flags.Float64Var(&previewMarginFlag, marginFlagName, viper.GetFloat64(previewMarginKey), "blank border in pixels")
	bindFlagToConfig(flags.Lookup(marginFlagName), previewMarginKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
