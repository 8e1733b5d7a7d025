package cmd

import (
	"github.com/spf13/cobra"

	"svgflat.dev/pkg/svgflat/internal/domain"
)

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [paths...]",
		Short: "Check that flattened polylines survive re-encoding",
		Long:  verifyLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Verify(cmd.Context(), domain.VerifyArgs{SourceArgs: sourceArgs(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
