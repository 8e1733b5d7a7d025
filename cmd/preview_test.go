package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"svgflat.dev/pkg/svgflat/internal/domain"
)

func TestPreviewCmd_Defaults(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newPreviewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Preview", mock.Anything, mock.MatchedBy(func(args domain.PreviewArgs) bool {
		return args.Output == defaultOutputDir &&
			args.Options.Width == 800 &&
			args.Options.Height == 800 &&
			args.Options.StrokeWidth == 1.5 &&
			args.Options.Margin == 10
	})).Return(nil)

	cmd.SetArgs([]string{"preview", "drawing.svg"})
	require.NoError(t, cmd.Execute())
}

func TestPreviewCmd_Flags(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newPreviewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Preview", mock.Anything, mock.MatchedBy(func(args domain.PreviewArgs) bool {
		return args.Output == "png" &&
			args.Options.Width == 320 &&
			args.Options.Height == 200 &&
			args.Options.StrokeWidth == 3 &&
			args.Options.Margin == 0
	})).Return(nil)

	cmd.SetArgs([]string{"preview", "-o", "png", "--width", "320", "--height", "200", "--stroke-width", "3", "--margin", "0", "drawing.svg"})
	require.NoError(t, cmd.Execute())
}
