// Package controller provides the output adapters that show flattening
// progress and results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeConvert
	ModePreview
	ModeVerify
)

// String returns the command name of the mode.
func (s StartMode) String() string {
	switch s {
	case ModeList:
		return "list"
	case ModeConvert:
		return "convert"
	case ModePreview:
		return "preview"
	case ModeVerify:
		return "verify"
	default:
		return "unknown"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithListMode sets the UI to summary mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithConvertMode sets the UI to export mode.
func WithConvertMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeConvert
	}
}

// WithPreviewMode sets the UI to preview rendering mode.
func WithPreviewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePreview
	}
}

// WithVerifyMode sets the UI to round trip verification mode.
func WithVerifyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeVerify
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI displays the progress and results of a workflow.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(ctx context.Context, documents int, threads int, shardIndex int, shardCount int)
	DisplayElementError(ctx context.Context, source m.FilePath, element m.ElementResult)
	DisplayWritten(ctx context.Context, source m.FilePath, output m.FilePath, result m.Result)
	DisplaySummary(ctx context.Context, results []m.Result) error
	DisplayVerification(ctx context.Context, checked int, mismatches []m.Mismatch) error
}

// NewUI returns a TUI when stdout is a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
