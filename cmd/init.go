package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default svgflat.yaml configuration file",
		Long: `Writes svgflat.yaml into the working directory with the effective settings:
curve samples, export format, output directory, preview size and logging.
An existing file is never overwritten.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			cmd.Printf("Wrote %s (samples %d, format %s, output %s)\n",
				targetPath,
				viper.GetInt(samplesConfigKey),
				viper.GetString(formatConfigKey),
				viper.GetString(outputConfigKey),
			)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
