package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

// collectResults discovers, shards, loads and flattens the documents named by
// args. Results keep the sorted order of the discovered files.
func (w *workflow) collectResults(ctx context.Context, args SourceArgs, announce bool) ([]m.Result, error) {
	files, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	slog.Debug("Discovered documents", "count", len(files))

	files = ShardFiles(files, args.ShardIndex, args.TotalShardCount)

	threads := normalizeThreads(args.Threads)
	if announce {
		w.DisplayConcurrencyInfo(ctx, len(files), threads, args.ShardIndex, args.TotalShardCount)
	}

	return w.flattenDocuments(ctx, files, threads)
}

// ShardFiles keeps the files assigned to shardIndex by round-robin over the
// sorted list. A totalShardCount of zero disables sharding.
func ShardFiles(files []m.FilePath, shardIndex, totalShardCount int) []m.FilePath {
	if totalShardCount <= 0 {
		return files
	}

	var shard []m.FilePath

	for i, file := range files {
		if i%totalShardCount == shardIndex {
			shard = append(shard, file)
		}
	}

	slog.Debug("Sharded documents", "shardIndex", shardIndex, "totalShardCount", totalShardCount, "count", len(shard))

	return shard
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

// flattenDocuments loads and flattens files on at most threads goroutines.
// The first load error cancels the remaining work.
func (w *workflow) flattenDocuments(ctx context.Context, files []m.FilePath, threads int) ([]m.Result, error) {
	results := make([]m.Result, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(normalizeThreads(threads))

	for i, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			doc, err := w.Load(file)
			if err != nil {
				slog.Error("Failed to load document", "source", file, "error", err)
				return fmt.Errorf("load %s: %w", file, err)
			}

			results[i] = w.flattenDocument(doc)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// flattenDocument parses every path element of doc. A parse error is recorded
// on its element and does not stop the others.
func (w *workflow) flattenDocument(doc m.Document) m.Result {
	result := m.Result{
		Document: doc,
		Elements: make([]m.ElementResult, 0, len(doc.Elements)),
	}

	for _, el := range doc.Elements {
		path, err := w.Parse(el.Data)
		if err != nil {
			slog.Warn("Failed to flatten path element", "source", doc.Source, "index", el.Index, "id", el.ID, "error", err)
		}

		result.Elements = append(result.Elements, m.ElementResult{Element: el, Path: path, Err: err})
	}

	slog.Debug("Flattened document", "source", doc.Source, "subpaths", result.Subpaths(), "points", result.Points())

	return result
}

// reportFailures shows every failed element and returns how many there were.
func (w *workflow) reportFailures(ctx context.Context, results []m.Result) int {
	failed := 0

	for _, res := range results {
		for _, el := range res.Elements {
			if el.Err == nil {
				continue
			}

			failed++

			w.DisplayElementError(ctx, res.Document.Source, el)
		}
	}

	return failed
}

func strictCheck(strict bool, failed int) error {
	if strict && failed > 0 {
		return fmt.Errorf("%w: %d element(s)", ErrElementsFailed, failed)
	}

	return nil
}
