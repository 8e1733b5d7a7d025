package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"svgflat.dev/pkg/svgflat/internal/adapter"
	"svgflat.dev/pkg/svgflat/internal/controller"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

const previewExtension = ".png"

// Convert flattens the selected documents and exports each of them in
// args.Format, either into the args.Output directory or to args.Stdout.
func (w *workflow) Convert(ctx context.Context, args ConvertArgs) error {
	exporter, err := adapter.NewExporter(args.Format)
	if err != nil {
		return err
	}

	toStdout := args.Output == StdoutOutput
	if toStdout && args.Stdout == nil {
		return fmt.Errorf("no writer for output %q", StdoutOutput)
	}

	if err := w.Start(ctx, controller.WithConvertMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	results, err := w.collectResults(ctx, args.SourceArgs, !toStdout)
	if err != nil {
		return fmt.Errorf("flatten documents: %w", err)
	}

	if toStdout {
		for _, res := range results {
			if err := exporter.Export(args.Stdout, res); err != nil {
				return fmt.Errorf("export %s: %w", res.Document.Source, err)
			}
		}
	} else {
		err = w.writeAll(ctx, results, args.Output, exporter.Extension(), func(wr io.Writer, res m.Result) error {
			return exporter.Export(wr, res)
		})
		if err != nil {
			return err
		}
	}

	return strictCheck(args.Strict, w.reportFailures(ctx, results))
}

// Preview renders a PNG image of every selected document into args.Output.
func (w *workflow) Preview(ctx context.Context, args PreviewArgs) error {
	if err := w.Start(ctx, controller.WithPreviewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	results, err := w.collectResults(ctx, args.SourceArgs, true)
	if err != nil {
		return fmt.Errorf("flatten documents: %w", err)
	}

	err = w.writeAll(ctx, results, args.Output, previewExtension, func(wr io.Writer, res m.Result) error {
		return w.Encode(wr, res, args.Options)
	})
	if err != nil {
		return err
	}

	return strictCheck(args.Strict, w.reportFailures(ctx, results))
}

type writeFunc func(w io.Writer, res m.Result) error

func (w *workflow) writeAll(ctx context.Context, results []m.Result, output, ext string, write writeFunc) error {
	targets, err := w.outputTargets(results, output, ext)
	if err != nil {
		return err
	}

	for i, res := range results {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := w.writeOne(targets[i], res, write); err != nil {
			slog.Error("Failed to write output", "source", res.Document.Source, "output", targets[i], "error", err)
			return fmt.Errorf("write %s: %w", targets[i], err)
		}

		slog.Info("Wrote output", "source", res.Document.Source, "output", targets[i])
		w.DisplayWritten(ctx, res.Document.Source, targets[i], res)
	}

	return nil
}

func (w *workflow) writeOne(target m.FilePath, res m.Result, write writeFunc) error {
	f, err := w.Create(target)
	if err != nil {
		return err
	}

	if err := write(f, res); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// outputTargets maps every source to "<output>/<name><ext>". Two sources with
// the same name, or a target equal to its source, are rejected before
// anything is written.
func (w *workflow) outputTargets(results []m.Result, output, ext string) ([]m.FilePath, error) {
	targets := make([]m.FilePath, 0, len(results))
	owners := make(map[m.FilePath]m.FilePath, len(results))

	for _, res := range results {
		source := string(res.Document.Source)
		name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + ext
		target := w.JoinPath(output, name)

		if filepath.Clean(string(target)) == filepath.Clean(source) {
			return nil, fmt.Errorf("%w: %s would overwrite its source", ErrOutputCollision, target)
		}

		if owner, ok := owners[target]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrOutputCollision, owner, source, target)
		}

		owners[target] = res.Document.Source
		targets = append(targets, target)
	}

	return targets, nil
}
