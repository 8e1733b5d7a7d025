package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

const (
	pagerHeaderLines = 3
	pagerFooterLines = 1
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with lipgloss styling and a Bubble Tea pager for output
// taller than the terminal.
type TUI struct {
	output    io.Writer
	errOutput io.Writer
	mode      StartMode
	width     int
	height    int
}

// NewTUI creates a new TUI.
func NewTUI(output, errOutput io.Writer) *TUI {
	return &TUI{output: output, errOutput: errOutput}
}

// Start prints the title of the mode and measures the terminal.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mode = newStartConfig(options).Mode()

	if f, ok := p.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			p.width, p.height = width, height
		}
	}

	if p.mode != ModeList {
		p.println(titleStyle.Render("svgflat " + p.mode.String()))
	}

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(_ context.Context) {}

// Wait returns once the pager, if any, has been closed. The pager runs inside
// DisplaySummary, so there is nothing left to wait for.
func (p *TUI) Wait(_ context.Context) {}

// DisplayConcurrencyInfo shows how the documents are distributed.
func (p *TUI) DisplayConcurrencyInfo(ctx context.Context, documents int, threads int, shardIndex int, shardCount int) {
	if ctx.Err() != nil {
		return
	}

	p.println(faintStyle.Render(fmt.Sprintf("%d document(s), %d worker(s)%s", documents, threads, shardLabel(shardIndex, shardCount))))
}

// DisplayElementError reports a path element that could not be flattened.
func (p *TUI) DisplayElementError(ctx context.Context, source m.FilePath, element m.ElementResult) {
	if ctx.Err() != nil {
		return
	}

	_, _ = fmt.Fprintln(p.errOutput, errorStyle.Render(fmt.Sprintf("✗ %s: %s: %v", source, elementLabel(element.Element), element.Err)))
}

// DisplayWritten reports an exported file.
func (p *TUI) DisplayWritten(ctx context.Context, source m.FilePath, output m.FilePath, result m.Result) {
	if ctx.Err() != nil {
		return
	}

	p.println(fmt.Sprintf("%s %s → %s %s",
		okStyle.Render("✓"), source, output,
		faintStyle.Render(fmt.Sprintf("(%d subpaths, %d points)", result.Subpaths(), result.Points()))))
}

// DisplaySummary shows the summary table, paged when it does not fit.
func (p *TUI) DisplaySummary(ctx context.Context, results []m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tableStr, totals := renderSummaryTable(results)
	title := titleStyle.Render(fmt.Sprintf("svgflat: %d document(s), %d point(s)", totals.documents, totals.points))

	if len(results) == 0 {
		p.println(title)
		p.println("  No documents found")

		return nil
	}

	return p.page(title, tableStr)
}

// DisplayVerification shows every mismatch and a verdict.
func (p *TUI) DisplayVerification(ctx context.Context, checked int, mismatches []m.Mismatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(mismatches) == 0 {
		p.println(okStyle.Render(fmt.Sprintf("✓ %d element(s) survive the round trip", checked)))
		return nil
	}

	var b strings.Builder
	writeMismatches(&b, mismatches)

	title := errorStyle.Render(fmt.Sprintf("✗ %d of %d element(s) changed after re-parsing", len(mismatches), checked))

	return p.page(title, b.String())
}

// page prints content directly when it fits the terminal and opens a
// scrollable viewport otherwise.
func (p *TUI) page(title, content string) error {
	content = strings.TrimRight(content, "\n")

	if !p.needsPagination(content) {
		p.println(title)
		p.println(content)

		return nil
	}

	model := newPagerModel(title, content, p.width, p.height)

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (p *TUI) needsPagination(content string) bool {
	if p.height == 0 {
		return false
	}

	return strings.Count(content, "\n")+1 > p.height-pagerHeaderLines-pagerFooterLines
}

func (p *TUI) println(s string) {
	_, _ = fmt.Fprintln(p.output, s)
}

// pagerModel is the Bubble Tea model of the scrollable output.
type pagerModel struct {
	title    string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, pagerBodyHeight(height))
	vp.SetContent(content)

	return pagerModel{title: title, viewport: vp}
}

func pagerBodyHeight(height int) int {
	body := height - pagerHeaderLines - pagerFooterLines
	if body < 1 {
		return 1
	}

	return body
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = pagerBodyHeight(msg.Height)
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := faintStyle.Render(fmt.Sprintf("%3.f%% | ↑/k ↓/j scroll | g/G top/bottom | q quit", pm.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left, pm.title, pm.viewport.View(), footer)
}
