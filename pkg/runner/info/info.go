// Package info explains where settings came from.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/heatgrid/pkg/config"
	"tableflip.dev/heatgrid/pkg/timeutil"
)

// Info prints the resolved configuration.
type Info struct {
	Config *config.Config
	Out    io.Writer
}

// Do prints the config search override, the file read and every value.
func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if override := os.Getenv("HEATGRID_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "HEATGRID_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "HEATGRID_CONFIG_PATH env var not set")
	}

	c := n.Config
	file := c.File
	if file == "" {
		file = "none found, using defaults"
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Setting"), bold.Sprint("Value"))
	tbl.AddRow("config file", file)
	tbl.AddRow(config.KeyLevel, c.Level)
	tbl.AddRow(config.KeyDark, c.Dark)
	tbl.AddRow(config.KeyMode, c.Mode)
	tbl.AddRow(config.KeyWeekStart, c.WeekStart)
	tbl.AddRow(config.KeySeed, c.Seed)
	tbl.AddRow(config.KeyText, fmt.Sprintf("%q", c.Text))
	tbl.AddRow(config.KeyDays, fmt.Sprintf("%d (%s)", c.Days, timeutil.FormatWindow(c.Days)))
	tbl.AddRow("geometry", fmt.Sprintf("cell %d, padding %d, left %d, top %d",
		c.Geometry.CellSize, c.Geometry.Padding, c.Geometry.Left, c.Geometry.Top))
	tbl.AddRow(config.KeyExportPath, c.ExportPath)
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
