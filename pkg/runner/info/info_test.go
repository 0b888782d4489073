package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/heatgrid/pkg/app"
	"tableflip.dev/heatgrid/pkg/canvas"
	"tableflip.dev/heatgrid/pkg/config"
)

func TestInfo(t *testing.T) {
	t.Setenv("HEATGRID_CONFIG_PATH", "")
	var buf bytes.Buffer
	n := &Info{
		Config: &config.Config{Level: 6, Mode: app.ModeMatrix, Days: 365, Geometry: canvas.DefaultGeometry(), Text: "hi"},
		Out:    &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("info: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"env var not set", "none found", "matrix", "Sunday", `"hi"`, "cell 10, padding 2", "365 (1y)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("info missing %q:\n%s", want, out)
		}
	}
}
