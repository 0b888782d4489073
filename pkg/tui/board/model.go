// Package board hosts the Bubble Tea program that lets a user paint the
// heat-map with the mouse.
package board

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/heatgrid/pkg/app"
	"tableflip.dev/heatgrid/pkg/canvas"
	"tableflip.dev/heatgrid/pkg/generate"
	"tableflip.dev/heatgrid/pkg/grid"
	"tableflip.dev/heatgrid/pkg/palette"
	"tableflip.dev/heatgrid/pkg/printers"
	"tableflip.dev/heatgrid/pkg/tui/theme"
)

// ExportFunc writes the snapshot somewhere and returns where.
type ExportFunc func(snap *app.Snapshot, dark bool) (string, error)

// ReloadFunc re-reads host inputs, e.g. after the config file changed.
type ReloadFunc func() (app.Inputs, error)

// Options wire the model to its collaborators. Only Service is required.
type Options struct {
	Service *app.Service
	Inputs  app.Inputs
	Export  ExportFunc
	// Changes signals that Reload should be called.
	Changes <-chan struct{}
	Reload  ReloadFunc
	Logger  *slog.Logger
}

type exportedMsg struct {
	path string
	err  error
}

type changedMsg struct{}

type point struct{ row, col int }

// Model is the paint UI.
type Model struct {
	svc    *app.Service
	in     app.Inputs
	export ExportFunc

	changes <-chan struct{}
	reload  ReloadFunc
	logger  *slog.Logger

	layout Layout
	keys   keyMap
	help   help.Model
	theme  theme.Theme

	hover  *point
	status string
	failed bool

	termWidth int
}

// New syncs the service with the starting inputs and returns the model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := Model{
		svc:     opts.Service,
		export:  opts.Export,
		changes: opts.Changes,
		reload:  opts.Reload,
		logger:  logger,
		layout:  DefaultLayout(),
		keys:    defaultKeys(),
		help:    help.New(),
		theme:   theme.Default(),
		status:  "click and drag to paint",
	}
	m.sync(opts.Inputs)
	return m
}

// Init starts listening for config changes when a source was given.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil || m.reload == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (m *Model) sync(in app.Inputs) {
	if m.svc.Sync(in) {
		// Hover coordinates may not exist in the new grid.
		m.hover = nil
	}
	m.in = m.svc.Inputs()
}

// Update handles mouse strokes, key bindings and config reloads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			break
		}
		if row, col, ok := m.locate(msg.X, msg.Y); ok {
			m.hover = &point{row, col}
			m.svc.Press(row, col)
		}

	case tea.MouseMotionMsg:
		row, col, ok := m.locate(msg.X, msg.Y)
		if !ok {
			m.hover = nil
			break
		}
		m.hover = &point{row, col}
		if m.svc.Painting() {
			m.svc.Move(row, col)
		}

	case tea.MouseReleaseMsg:
		// Delivered wherever the pointer is, so a stroke that leaves the
		// grid still ends.
		m.svc.Release()

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case exportedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			break
		}
		m.setStatus("exported " + msg.path)

	case changedMsg:
		in, err := m.reload()
		if err != nil {
			m.setError(fmt.Errorf("reload config: %w", err))
		} else {
			// Keep the reset key so a reload does not look like a reset.
			in.ResetKey = m.in.ResetKey
			m.sync(in)
			m.setStatus("config reloaded")
		}
		return m, m.waitForChange()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	in := m.in
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Regenerate):
		in.ResetKey++
		m.sync(in)
		m.setStatus(fmt.Sprintf("regenerated (generation %d)", m.svc.Generation()))
	case key.Matches(msg, m.keys.LevelUp):
		in.Level = generate.ClampLevel(in.Level + 1)
		m.sync(in)
		m.setStatus(fmt.Sprintf("level %d", m.in.Level))
	case key.Matches(msg, m.keys.LevelDown):
		in.Level = generate.ClampLevel(in.Level - 1)
		m.sync(in)
		m.setStatus(fmt.Sprintf("level %d", m.in.Level))
	case key.Matches(msg, m.keys.Dark):
		in.DarkMode = !in.DarkMode
		m.sync(in)
	case key.Matches(msg, m.keys.Export):
		if m.export == nil {
			m.setStatus("export is not available")
			break
		}
		// Export reads the matrix that strokes mutate, so it runs here on
		// the event loop rather than in a command goroutine.
		path, err := m.export(m.svc.Snapshot(), m.in.DarkMode)
		next, _ := m.Update(exportedMsg{path: path, err: err})
		return next, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) setError(err error) {
	m.logger.Warn("paint ui", "err", err)
	m.status = err.Error()
	m.failed = true
}

func (m Model) locate(x, y int) (int, int, bool) {
	row, col, ok := m.layout.Locate(x, y)
	if !ok {
		return 0, 0, false
	}
	snap := m.svc.Snapshot()
	if snap == nil || !snap.Matrix.In(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// Tooltip describes the hovered cell, if any.
func (m Model) Tooltip() (canvas.Tooltip, bool) {
	if m.hover == nil {
		return canvas.Tooltip{}, false
	}
	snap := m.svc.Snapshot()
	c := snap.Matrix.At(m.hover.row, m.hover.col)
	if c == nil {
		return canvas.Tooltip{}, false
	}
	return canvas.TooltipFor(m.hover.row, m.hover.col, c), true
}

// View renders the title, month header, grid, status and key help.
func (m Model) View() string {
	snap := m.svc.Snapshot()
	dark := m.in.DarkMode
	labelStyle := palette.LabelStyle(dark)

	var b strings.Builder
	b.WriteString(m.title(snap))
	b.WriteString("\n")
	// The header line is always present so mouse rows stay put.
	b.WriteString(printers.MonthHeader(snap.Spans, func(s string) string { return labelStyle.Render(s) }))
	b.WriteString("\n")

	labels := grid.WeekdayLabels(m.svc.WeekStart())
	for row := 0; row < snap.Matrix.Rows(); row++ {
		label := labelStyle.Render(labels[row]) + strings.Repeat(" ", max(0, m.layout.Left-len(labels[row])))
		cells := make([]string, 0, snap.Matrix.Cols())
		for col, c := range snap.Matrix.Row(row) {
			cells = append(cells, m.cell(row, col, c))
		}
		b.WriteString(label + strings.Join(cells, ""))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) title(snap *app.Snapshot) string {
	fields := []string{
		fmt.Sprintf("level %d", snap.Level),
		m.svc.Mode().String(),
		fmt.Sprintf("%d contributions", snap.Total()),
	}
	if m.in.DarkMode {
		fields = append(fields, "dark")
	}
	if m.svc.Painting() {
		fields = append(fields, "painting")
	}
	return m.theme.Title.Name.Render("heatgrid") + " " +
		m.theme.Title.Field.Render(strings.Join(fields, " · "))
}

func (m Model) cell(row, col int, c *grid.Cell) string {
	blank := strings.Repeat(" ", m.layout.CellWidth)
	if c == nil || c.Padding {
		return blank
	}
	dark := m.in.DarkMode
	if m.hover != nil && m.hover.row == row && m.hover.col == col {
		return palette.HoverStyle(c.Intensity, dark).Render(hoverMark(m.layout.CellWidth))
	}
	return palette.CellStyle(c.Intensity, dark).Render(blank)
}

func hoverMark(width int) string {
	if width < 2 {
		return "▪"
	}
	return "[" + strings.Repeat(" ", width-2) + "]"
}

func (m Model) footer() string {
	var parts []string
	if t, ok := m.Tooltip(); ok {
		parts = append(parts, m.theme.Footer.Tooltip.Render(t.String()))
	}
	if m.status != "" {
		style := m.theme.Footer.Status
		if m.failed {
			style = m.theme.Footer.Error
		}
		parts = append(parts, style.Render(m.status))
	}
	line := strings.Join(parts, "  ")
	if m.termWidth > 0 {
		line = truncate.String(line, uint(m.termWidth))
	}
	return line
}

// Run starts the program with all mouse motion reported, so hovering works
// without a button held.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
