// Package app is the engine facade a host drives: it owns the grid,
// decides when to regenerate it and routes paint gestures into it.
package app

import (
	"log/slog"
	"math/rand"
	"time"

	"tableflip.dev/heatgrid/pkg/generate"
	"tableflip.dev/heatgrid/pkg/glyph"
	"tableflip.dev/heatgrid/pkg/grid"
	"tableflip.dev/heatgrid/pkg/group"
	"tableflip.dev/heatgrid/pkg/paint"
	"tableflip.dev/heatgrid/pkg/palette"
)

// Inputs are the values a host passes on every sync.
type Inputs struct {
	Level    int
	DarkMode bool
	// ResetKey is opaque; any change forces a new grid.
	ResetKey uint64
	Text     string
}

// Options configure a Service.
type Options struct {
	Mode      Mode
	WeekStart time.Weekday
	// Days before week alignment, calendar mode only.
	Days int
	// Cols of the free matrix, matrix mode only.
	Cols int
	// Seed makes generation reproducible; zero seeds from the clock.
	Seed int64
	// TextRow and TextCol place stamped text; a negative TextCol centers it.
	TextRow int
	TextCol int
	Now     func() time.Time
	Logger  *slog.Logger
}

// Snapshot is one generated grid. Days and Layout are empty in matrix mode.
type Snapshot struct {
	Level      int
	Generation uint64
	Days       []*grid.Cell
	Layout     group.Layout
	Matrix     *grid.Matrix
	Spans      []group.Span
}

// Total sums the intensity of every cell.
func (s *Snapshot) Total() int {
	total := 0
	s.Matrix.Each(func(_, _ int, c *grid.Cell) {
		if !c.Padding {
			total += c.Intensity
		}
	})
	return total
}

// Buckets counts non-padding cells per color bucket.
func (s *Snapshot) Buckets() [palette.TopBucket + 1]int {
	var out [palette.TopBucket + 1]int
	s.Matrix.Each(func(_, _ int, c *grid.Cell) {
		if !c.Padding {
			out[palette.Bucket(c.Intensity)]++
		}
	})
	return out
}

// Service owns the grid a host renders. It is not safe for concurrent use;
// hosts are expected to drive it from a single event loop.
type Service struct {
	opts    Options
	rng     *rand.Rand
	session *paint.Session

	in     Inputs
	synced bool
	gen    uint64
	snap   *Snapshot
}

// New returns a Service with no grid; call Sync to generate one.
func New(opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Cols <= 0 {
		opts.Cols = grid.DefaultCols
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	rng := generate.NewRand(opts.Seed)
	return &Service{
		opts:    opts,
		rng:     rng,
		session: paint.New(rng),
	}
}

// Sync applies host inputs. The grid is rebuilt when the level, reset key or
// text changed, or on the first call; dark mode alone never rebuilds. It
// reports whether a new grid was generated.
func (s *Service) Sync(in Inputs) bool {
	in.Level = generate.ClampLevel(in.Level)
	changed := !s.synced ||
		in.Level != s.in.Level ||
		in.ResetKey != s.in.ResetKey ||
		in.Text != s.in.Text
	s.in = in
	s.synced = true
	if !changed {
		return false
	}
	s.regenerate()
	return true
}

func (s *Service) regenerate() {
	s.session.Release()
	s.gen++

	level := s.in.Level
	snap := &Snapshot{Level: level, Generation: s.gen}
	switch s.opts.Mode {
	case ModeMatrix:
		snap.Matrix = generate.Matrix(level, grid.DaysPerWeek, s.opts.Cols, generate.MatrixRules(), s.rng)
	default:
		days := generate.Calendar(level, s.opts.Now(), generate.Options{
			Days:      s.opts.Days,
			WeekStart: s.opts.WeekStart,
			Rand:      s.rng,
		})
		snap.Days = group.Reverse(days)
		snap.Layout = group.Weeks(snap.Days, s.opts.WeekStart)
		snap.Matrix = snap.Layout.Matrix()
		snap.Spans = snap.Layout.Spans()
	}
	if s.in.Text != "" {
		col := s.opts.TextCol
		if col < 0 {
			col = glyph.Centered(s.in.Text, snap.Matrix.Cols())
		}
		glyph.Stamp(snap.Matrix, s.in.Text, s.opts.TextRow, col)
	}
	s.snap = snap
	s.opts.Logger.Debug("grid regenerated",
		"generation", s.gen,
		"mode", s.opts.Mode,
		"level", level,
		"cols", snap.Matrix.Cols(),
		"text", s.in.Text,
	)
}

// Snapshot returns the current grid, or nil before the first Sync.
func (s *Service) Snapshot() *Snapshot { return s.snap }

// Generation changes every time the grid is rebuilt.
func (s *Service) Generation() uint64 { return s.gen }

// Inputs returns the last synced inputs, with the level clamped.
func (s *Service) Inputs() Inputs { return s.in }

// Mode returns the configured mode.
func (s *Service) Mode() Mode { return s.opts.Mode }

// WeekStart returns the configured first weekday.
func (s *Service) WeekStart() time.Weekday { return s.opts.WeekStart }

// Color returns the hex color of (row, col) for the current dark mode.
func (s *Service) Color(row, col int) string {
	if s.snap == nil {
		return ""
	}
	c := s.snap.Matrix.At(row, col)
	if c == nil {
		return ""
	}
	return palette.Hex(c.Intensity, s.in.DarkMode)
}

func (s *Service) cell(row, col int) *grid.Cell {
	if s.snap == nil {
		return nil
	}
	return s.snap.Matrix.At(row, col)
}

// Press starts a paint stroke at (row, col). It reports whether the grid
// changed and the host should re-render.
func (s *Service) Press(row, col int) bool {
	return s.session.Press(s.cell(row, col), s.in.Level)
}

// Move continues the stroke over (row, col).
func (s *Service) Move(row, col int) bool {
	return s.session.Move(s.cell(row, col))
}

// Release ends the stroke wherever the pointer is.
func (s *Service) Release() {
	s.session.Release()
}

// Painting reports whether a stroke is in progress.
func (s *Service) Painting() bool { return s.session.Active() }
