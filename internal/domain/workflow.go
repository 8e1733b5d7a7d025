package domain

import (
	"context"
	"errors"
	"io"

	"svgflat.dev/pkg/svgflat/internal/adapter"
	"svgflat.dev/pkg/svgflat/internal/controller"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

// StdoutOutput is the output value that streams exports to standard output.
const StdoutOutput = "-"

var (
	// ErrElementsFailed is returned in strict mode when any path element
	// could not be flattened.
	ErrElementsFailed = errors.New("path elements failed to flatten")
	// ErrRoundTripMismatch is returned by Verify when a flattened path does
	// not survive re-encoding.
	ErrRoundTripMismatch = errors.New("round trip mismatch")
	// ErrOutputCollision is returned when two inputs would be written to the
	// same output file.
	ErrOutputCollision = errors.New("output collision")
)

// SourceArgs selects and distributes the input documents.
type SourceArgs struct {
	Paths           []m.FilePath
	Exclude         []string
	Threads         int
	ShardIndex      int
	TotalShardCount int
}

// ConvertArgs contains the arguments for exporting flattened documents.
type ConvertArgs struct {
	SourceArgs
	Output string
	Format adapter.Format
	Strict bool
	// Stdout receives the exports when Output is StdoutOutput.
	Stdout io.Writer
}

// ListArgs contains the arguments for summarizing documents.
type ListArgs struct {
	SourceArgs
}

// PreviewArgs contains the arguments for rendering PNG previews.
type PreviewArgs struct {
	SourceArgs
	Output  string
	Strict  bool
	Options adapter.PreviewOptions
}

// VerifyArgs contains the arguments for the round trip check.
type VerifyArgs struct {
	SourceArgs
}

// Workflow is the application layer driven by the CLI.
type Workflow interface {
	Convert(ctx context.Context, args ConvertArgs) error
	List(ctx context.Context, args ListArgs) error
	Preview(ctx context.Context, args PreviewArgs) error
	Verify(ctx context.Context, args VerifyArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.DocumentLoader
	adapter.PreviewRenderer
	controller.UI
	Parser
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	loader adapter.DocumentLoader,
	renderer adapter.PreviewRenderer,
	ui controller.UI,
	parser Parser,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		DocumentLoader:  loader,
		PreviewRenderer: renderer,
		UI:              ui,
		Parser:          parser,
	}
}
