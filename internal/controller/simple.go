package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait returns immediately: SimpleUI never blocks.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayConcurrencyInfo shows how the documents are distributed.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, documents int, threads int, shardIndex int, shardCount int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Flattening %d document(s) with %d worker(s)%s\n", documents, threads, shardLabel(shardIndex, shardCount))
}

// DisplayElementError reports a path element that could not be flattened.
func (s *SimpleUI) DisplayElementError(ctx context.Context, source m.FilePath, element m.ElementResult) {
	if ctx.Err() != nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s: %s: %v\n", source, elementLabel(element.Element), element.Err)
}

// DisplayWritten reports an exported file.
func (s *SimpleUI) DisplayWritten(ctx context.Context, source m.FilePath, output m.FilePath, result m.Result) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s -> %s (%d subpaths, %d points)\n", source, output, result.Subpaths(), result.Points())
}

// DisplaySummary prints a table of the flattened documents.
func (s *SimpleUI) DisplaySummary(ctx context.Context, results []m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tableStr, _ := renderSummaryTable(results)
	s.printf("\n%s", tableStr)

	return nil
}

// DisplayVerification prints every mismatch followed by a one line verdict.
func (s *SimpleUI) DisplayVerification(ctx context.Context, checked int, mismatches []m.Mismatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	writeMismatches(s.cmd.OutOrStdout(), mismatches)
	s.printf("Verified %d element(s): %d mismatch(es)\n", checked, len(mismatches))

	return nil
}

func writeMismatches(w io.Writer, mismatches []m.Mismatch) {
	for _, mm := range mismatches {
		_, _ = fmt.Fprintf(w, "%s: %s\n", mm.Source, elementLabel(mm.Element))

		if mm.Diff != "" {
			_, _ = fmt.Fprintln(w, mm.Diff)
		} else if mm.Err != nil {
			_, _ = fmt.Fprintf(w, "  %v\n", mm.Err)
		}
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
