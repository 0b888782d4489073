// Package key prints the color legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/heatgrid/pkg/printers"
)

// Key prints which intensities map to which colors.
type Key struct {
	Dark bool
	Out  io.Writer
}

// Do renders the legend to Out, or stdout when Out is nil.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	printers.NewGridPrinter(out, k.Dark, 0).Legend()
	return nil
}
