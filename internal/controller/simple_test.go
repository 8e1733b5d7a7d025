package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func sampleResults() []m.Result {
	return []m.Result{
		{
			Document: m.Document{Source: "a.svg"},
			Elements: []m.ElementResult{
				{Element: m.Element{Index: 0, ID: "square"}, Path: m.Path{{m.Pt(0, 0), m.Pt(1, 0), m.Pt(0, 0)}}},
				{Element: m.Element{Index: 1}, Err: errors.New("bad data")},
			},
		},
		{
			Document: m.Document{Source: "b.svg"},
			Elements: []m.ElementResult{
				{Element: m.Element{Index: 0}, Path: m.Path{{m.Pt(0, 0), m.Pt(1, 1)}, {m.Pt(2, 2), m.Pt(3, 3)}}},
			},
		},
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithListMode()))
	require.NoError(t, ui.DisplaySummary(ctx, sampleResults()))
	ui.Wait(ctx)
	ui.Close(ctx)

	output := out.String()
	assert.Contains(t, output, "PATH")
	assert.Contains(t, output, "a.svg")
	assert.Contains(t, output, "b.svg")
	assert.Contains(t, output, "TOTAL FILES 2")
	assert.Contains(t, output, "7")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
	require.ErrorIs(t, ui.DisplaySummary(ctx, sampleResults()), context.Canceled)
	ui.DisplayConcurrencyInfo(ctx, 1, 1, 0, 0)
	assert.Empty(t, out.String())
}

func TestSimpleUI_Progress(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()
	results := sampleResults()

	ui.DisplayConcurrencyInfo(ctx, 3, 2, 1, 4)
	ui.DisplayConcurrencyInfo(ctx, 3, 2, 0, 1)
	ui.DisplayWritten(ctx, "b.svg", "out/b.svg", results[1])
	ui.DisplayElementError(ctx, "a.svg", results[0].Elements[1])

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Flattening 3 document(s) with 2 worker(s) (Shard 1/4)", lines[0])
	assert.Equal(t, "Flattening 3 document(s) with 2 worker(s)", lines[1])
	assert.Equal(t, "b.svg -> out/b.svg (2 subpaths, 4 points)", lines[2])
	assert.Equal(t, "a.svg: path #1: bad data\n", errOut.String())
}

func TestSimpleUI_DisplayVerification(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	mismatches := []m.Mismatch{
		{Source: "a.svg", Element: m.Element{Index: 2, ID: "curve"}, Diff: "--- flattened\n+++ reparsed\n"},
		{Source: "b.svg", Element: m.Element{Index: 0}, Err: errors.New("reparse failed")},
	}

	require.NoError(t, ui.DisplayVerification(context.Background(), 5, mismatches))

	output := out.String()
	assert.Contains(t, output, "a.svg: path #2 (curve)")
	assert.Contains(t, output, "+++ reparsed")
	assert.Contains(t, output, "b.svg: path #0\n  reparse failed")
	assert.Contains(t, output, "Verified 5 element(s): 2 mismatch(es)")
}

func TestNewUI(t *testing.T) {
	cmd, _, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))

	f, err := createTempFile(t)
	require.NoError(t, err)
	assert.False(t, IsTTY(f))
}

func TestStartMode_String(t *testing.T) {
	assert.Equal(t, "list", ModeList.String())
	assert.Equal(t, "convert", ModeConvert.String())
	assert.Equal(t, "preview", ModePreview.String())
	assert.Equal(t, "verify", ModeVerify.String())
	assert.Equal(t, "unknown", StartMode(42).String())
}

func TestShardLabel(t *testing.T) {
	assert.Empty(t, shardLabel(0, 0))
	assert.Empty(t, shardLabel(0, 1))
	assert.Equal(t, " (Shard 0/2)", shardLabel(0, 2))
}
