package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"svgflat.dev/pkg/svgflat/internal/adapter"
	"svgflat.dev/pkg/svgflat/internal/controller"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

// List shows a per-document summary of the flattened output.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	results, err := w.collectResults(ctx, args.SourceArgs, false)
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to flatten documents", "error", err)

		return fmt.Errorf("flatten documents: %w", err)
	}

	if err := w.DisplaySummary(ctx, results); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display summary", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// Verify re-encodes every flattened element as path data, parses it again
// and compares the polylines point by point.
func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	if err := w.Start(ctx, controller.WithVerifyMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	results, err := w.collectResults(ctx, args.SourceArgs, true)
	if err != nil {
		return fmt.Errorf("flatten documents: %w", err)
	}

	w.reportFailures(ctx, results)

	checked := 0

	var mismatches []m.Mismatch

	for _, res := range results {
		for _, el := range res.Elements {
			if el.Err != nil || len(el.Path) == 0 {
				continue
			}

			checked++

			if mismatch, ok := w.roundTrip(res.Document.Source, el); !ok {
				slog.Warn("Round trip mismatch", "source", res.Document.Source, "index", el.Element.Index, "error", mismatch.Err)
				mismatches = append(mismatches, mismatch)
			}
		}
	}

	if err := w.DisplayVerification(ctx, checked, mismatches); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if len(mismatches) > 0 {
		return fmt.Errorf("%w: %d of %d element(s)", ErrRoundTripMismatch, len(mismatches), checked)
	}

	return nil
}

func (w *workflow) roundTrip(source m.FilePath, el m.ElementResult) (m.Mismatch, bool) {
	mismatch := m.Mismatch{Source: source, Element: el.Element}

	again, err := w.Parse(adapter.EncodePathData(el.Path))
	if err != nil {
		mismatch.Err = err
		return mismatch, false
	}

	if pathsEqual(el.Path, again) {
		return mismatch, true
	}

	mismatch.Err = ErrRoundTripMismatch
	mismatch.Diff = plotDiff(el.Path, again)

	return mismatch, false
}

func pathsEqual(a, b m.Path) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}

		for j := range a[i] {
			if !a[i][j].Equal(b[i][j]) {
				return false
			}
		}
	}

	return true
}

// plotDiff is a unified diff between the plot instructions of two paths.
func plotDiff(want, got m.Path) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(adapter.PlotString(want)),
		B:        difflib.SplitLines(adapter.PlotString(got)),
		FromFile: "flattened",
		ToFile:   "reparsed",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	return diff
}
