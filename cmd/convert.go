package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"svgflat.dev/pkg/svgflat/internal/adapter"
	"svgflat.dev/pkg/svgflat/internal/domain"
)

var formatFlag string

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Flatten documents and export them",
		Long:  convertLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Convert(cmd.Context(), domain.ConvertArgs{
				SourceArgs: sourceArgs(args),
				Output:     viper.GetString(outputConfigKey),
				Format:     adapter.Format(viper.GetString(formatConfigKey)),
				Strict:     viper.GetBool(runStrictConfigKey),
				Stdout:     cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "export format: svg, plot or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
