package board

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/heatgrid/pkg/app"
	"tableflip.dev/heatgrid/pkg/printers"
)

func newService(mode app.Mode) *app.Service {
	return app.New(app.Options{
		Mode: mode,
		Seed: 11,
		Now: func() time.Time {
			return time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
		},
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return nm, cmd
}

func click(l Layout, row, col int) tea.MouseClickMsg {
	x, y := l.Position(row, col)
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func motion(l Layout, row, col int) tea.MouseMotionMsg {
	x, y := l.Position(row, col)
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestLayoutLocate(t *testing.T) {
	l := DefaultLayout()
	for _, tc := range []struct{ row, col int }{{0, 0}, {3, 10}, {6, 52}} {
		x, y := l.Position(tc.row, tc.col)
		for dx := 0; dx < l.CellWidth; dx++ {
			row, col, ok := l.Locate(x+dx, y)
			if !ok || row != tc.row || col != tc.col {
				t.Fatalf("Locate(%d, %d) = (%d, %d, %v), want (%d, %d)", x+dx, y, row, col, ok, tc.row, tc.col)
			}
		}
	}
	if _, _, ok := l.Locate(l.Left-1, l.Top); ok {
		t.Fatalf("gutter should not map to a cell")
	}
	if _, _, ok := l.Locate(l.Left, l.Top-1); ok {
		t.Fatalf("header should not map to a cell")
	}
}

func TestMouseStrokePaintsSameValue(t *testing.T) {
	svc := newService(app.ModeMatrix)
	m := New(Options{Service: svc, Inputs: app.Inputs{Level: 0}})
	l := m.layout

	m, _ = update(t, m, click(l, 1, 3))
	if !svc.Painting() {
		t.Fatalf("expected an active stroke after click")
	}
	for col := 4; col <= 6; col++ {
		m, _ = update(t, m, motion(l, 1, col))
	}
	// Release far outside the grid still ends the stroke.
	m, _ = update(t, m, tea.MouseReleaseMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	if svc.Painting() {
		t.Fatalf("release should end the stroke")
	}
	m, _ = update(t, m, motion(l, 1, 7))

	matrix := svc.Snapshot().Matrix
	want := matrix.At(1, 3).Intensity
	if want == 0 {
		t.Fatalf("press on an empty cell should fill it")
	}
	for col := 4; col <= 6; col++ {
		if got := matrix.At(1, col).Intensity; got != want {
			t.Fatalf("cell (1,%d) = %d, want %d", col, got, want)
		}
	}
	if got := matrix.At(1, 7).Intensity; got != 0 {
		t.Fatalf("move after release painted (1,7) = %d", got)
	}

	tip, ok := m.Tooltip()
	if !ok || tip.Col != 7 {
		t.Fatalf("expected hover on (1,7), got %+v %v", tip, ok)
	}
	if !strings.Contains(stripANSI(m.View()), "Date: N/A, Contributions: 0") {
		t.Fatalf("tooltip missing from view:\n%s", stripANSI(m.View()))
	}
}

func TestRightClickDoesNotPaint(t *testing.T) {
	svc := newService(app.ModeMatrix)
	m := New(Options{Service: svc, Inputs: app.Inputs{Level: 0}})
	x, y := m.layout.Position(2, 2)
	m, _ = update(t, m, tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseRight})
	if svc.Painting() || svc.Snapshot().Matrix.At(2, 2).Intensity != 0 {
		t.Fatalf("right click should be ignored")
	}
}

func TestClickOutsideGridIsIgnored(t *testing.T) {
	svc := newService(app.ModeMatrix)
	m := New(Options{Service: svc, Inputs: app.Inputs{Level: 0}})
	x, y := m.layout.Position(0, 60)
	m, _ = update(t, m, tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	if svc.Painting() {
		t.Fatalf("click past the last column should not start a stroke")
	}
	if _, ok := m.Tooltip(); ok {
		t.Fatalf("no cell should be hovered")
	}
}

func TestCalendarTooltip(t *testing.T) {
	svc := newService(app.ModeCalendar)
	m := New(Options{Service: svc, Inputs: app.Inputs{Level: 5}})
	m, _ = update(t, m, motion(m.layout, 0, 0))

	view := stripANSI(m.View())
	if !strings.Contains(view, "Date: 2024-03-10, Contributions:") {
		t.Fatalf("expected the first day in the tooltip:\n%s", view)
	}
	if !strings.Contains(view, "Mar") {
		t.Fatalf("expected a month header:\n%s", view)
	}
}

func TestHoverWithoutButton(t *testing.T) {
	svc := newService(app.ModeCalendar)
	m := New(Options{Service: svc, Inputs: app.Inputs{Level: 5}})
	before := svc.Snapshot().Matrix.Values()

	x, y := m.layout.Position(0, 0)
	m, _ = update(t, m, tea.MouseMotionMsg{X: x, Y: y})

	tip, ok := m.Tooltip()
	if !ok {
		t.Fatalf("expected a tooltip on a plain hover")
	}
	if !strings.Contains(tip.String(), "Date: 2024-03-10") {
		t.Fatalf("unexpected tooltip %q", tip.String())
	}
	if !strings.Contains(stripANSI(m.View()), "Date: 2024-03-10") {
		t.Fatalf("expected the tooltip in the footer")
	}
	if svc.Painting() {
		t.Fatalf("hovering should not start a stroke")
	}
	after := svc.Snapshot().Matrix.Values()
	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				t.Fatalf("hover changed cell (%d,%d)", r, c)
			}
		}
	}
}

func TestViewRowsAlign(t *testing.T) {
	svc := newService(app.ModeMatrix)
	m := New(Options{Service: svc, Inputs: app.Inputs{Level: 8}})
	lines := strings.Split(m.View(), "\n")
	if len(lines) < 11 {
		t.Fatalf("expected at least 11 lines, got %d", len(lines))
	}
	want := printers.LabelWidth + 53*printers.CellWidth
	for i := 2; i < 9; i++ {
		if w := ansi.PrintableRuneWidth(lines[i]); w != want {
			t.Fatalf("row %d width = %d, want %d: %q", i-2, w, want, stripANSI(lines[i]))
		}
	}
	if !strings.HasPrefix(stripANSI(lines[3]), "Mon ") {
		t.Fatalf("expected Mon label on the second row, got %q", stripANSI(lines[3]))
	}
}

func TestKeys(t *testing.T) {
	svc := newService(app.ModeMatrix)
	m := New(Options{Service: svc, Inputs: app.Inputs{Level: 3}})
	gen := svc.Generation()

	m, _ = update(t, m, tea.KeyPressMsg{Code: 'r', Text: "r"})
	if svc.Generation() == gen {
		t.Fatalf("r should regenerate")
	}
	if svc.Inputs().ResetKey != 1 {
		t.Fatalf("reset key = %d, want 1", svc.Inputs().ResetKey)
	}

	m, _ = update(t, m, tea.KeyPressMsg{Code: '+', Text: "+"})
	if svc.Inputs().Level != 4 {
		t.Fatalf("level = %d, want 4", svc.Inputs().Level)
	}
	m, _ = update(t, m, tea.KeyPressMsg{Code: '-', Text: "-"})
	m, _ = update(t, m, tea.KeyPressMsg{Code: '-', Text: "-"})
	if svc.Inputs().Level != 2 {
		t.Fatalf("level = %d, want 2", svc.Inputs().Level)
	}

	gen = svc.Generation()
	m, _ = update(t, m, tea.KeyPressMsg{Code: 'd', Text: "d"})
	if !svc.Inputs().DarkMode {
		t.Fatalf("d should toggle dark mode")
	}
	if svc.Generation() != gen {
		t.Fatalf("dark mode must not regenerate")
	}

	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatalf("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestLevelKeysClamp(t *testing.T) {
	svc := newService(app.ModeMatrix)
	m := New(Options{Service: svc, Inputs: app.Inputs{Level: 15}})
	gen := svc.Generation()
	m, _ = update(t, m, tea.KeyPressMsg{Code: '+', Text: "+"})
	if svc.Inputs().Level != 15 || svc.Generation() != gen {
		t.Fatalf("level above 15 should be a no-op")
	}
}

func TestExport(t *testing.T) {
	svc := newService(app.ModeMatrix)
	var gotDark bool
	m := New(Options{
		Service: svc,
		Inputs:  app.Inputs{Level: 3, DarkMode: true},
		Export: func(snap *app.Snapshot, dark bool) (string, error) {
			gotDark = dark
			if snap != svc.Snapshot() {
				t.Fatalf("export should see the live snapshot")
			}
			return "/tmp/chart.png", nil
		},
	})
	m, _ = update(t, m, tea.KeyPressMsg{Code: 'e', Text: "e"})
	if !gotDark {
		t.Fatalf("export should receive dark mode")
	}
	if !strings.Contains(stripANSI(m.View()), "exported /tmp/chart.png") {
		t.Fatalf("missing export status:\n%s", stripANSI(m.View()))
	}

	m.export = func(*app.Snapshot, bool) (string, error) { return "", errors.New("disk full") }
	m, _ = update(t, m, tea.KeyPressMsg{Code: 'e', Text: "e"})
	if !m.failed || !strings.Contains(stripANSI(m.View()), "disk full") {
		t.Fatalf("expected export error in status")
	}
}

func TestConfigReload(t *testing.T) {
	svc := newService(app.ModeMatrix)
	changes := make(chan struct{}, 1)
	m := New(Options{
		Service: svc,
		Inputs:  app.Inputs{Level: 3},
		Changes: changes,
		Reload: func() (app.Inputs, error) {
			return app.Inputs{Level: 9, DarkMode: true}, nil
		},
	})
	m, _ = update(t, m, tea.KeyPressMsg{Code: 'r', Text: "r"})

	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("expected a watch command")
	}
	changes <- struct{}{}
	msg := cmd()
	if _, ok := msg.(changedMsg); !ok {
		t.Fatalf("expected changedMsg, got %T", msg)
	}

	m, next := update(t, m, msg)
	if next == nil {
		t.Fatalf("expected to keep watching after a reload")
	}
	in := svc.Inputs()
	if in.Level != 9 || !in.DarkMode || in.ResetKey != 1 {
		t.Fatalf("unexpected inputs after reload: %+v", in)
	}
	if m.status != "config reloaded" {
		t.Fatalf("status = %q", m.status)
	}

	close(changes)
	if msg := next(); msg != nil {
		t.Fatalf("closed source should end the watch, got %T", msg)
	}
}

func TestInitWithoutWatch(t *testing.T) {
	m := New(Options{Service: newService(app.ModeMatrix)})
	if cmd := m.Init(); cmd != nil {
		t.Fatalf("expected no init command")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
