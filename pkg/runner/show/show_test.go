package show

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/heatgrid/pkg/app"
	"tableflip.dev/heatgrid/pkg/canvas"
	"tableflip.dev/heatgrid/pkg/config"
)

func testConfig(mode app.Mode) *config.Config {
	return &config.Config{
		Level:    15,
		Mode:     mode,
		Seed:     1,
		Days:     365,
		Geometry: canvas.DefaultGeometry(),
	}
}

func TestShowTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := &Show{Config: testConfig(app.ModeCalendar), Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Mon ") || !strings.Contains(out, "contributions in the last year") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestShowMatrixText(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(app.ModeMatrix)
	cfg.Text = "HI"
	s := &Show{Config: cfg, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	// Stamped pixels print as empty cells in an otherwise saturated grid.
	if !strings.Contains(buf.String(), "··") {
		t.Fatalf("expected stamped text in:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "last year") {
		t.Fatalf("matrix summary should not mention the calendar")
	}
}

func TestShowJSON(t *testing.T) {
	var buf bytes.Buffer
	s := &Show{Config: testConfig(app.ModeCalendar), Format: FormatJSON, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	var doc struct {
		Mode string  `json:"mode"`
		Rows [][]int `json:"rows"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if doc.Mode != "calendar" || len(doc.Rows) != 7 {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestShowYAML(t *testing.T) {
	var buf bytes.Buffer
	s := &Show{Config: testConfig(app.ModeMatrix), Format: FormatYAML, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "mode: matrix\n") {
		t.Fatalf("unexpected yaml:\n%s", buf.String())
	}
}

func TestShowUnknownFormat(t *testing.T) {
	s := &Show{Config: testConfig(app.ModeMatrix), Format: "xml", Out: &bytes.Buffer{}}
	if err := s.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for xml")
	}
}
