package printers

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/heatgrid/pkg/palette"
)

// Legend prints the bucket table: which intensities land in each bucket and
// the light and dark colors used for it.
func (p *GridPrinter) Legend() {
	bold := p.printer(color.Bold)
	out := p.output()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Bucket"), bold.Sprint("Intensity"), bold.Sprint("Light"), bold.Sprint("Dark"))

	light, dark := palette.Legend(false), palette.Legend(true)
	for i := range light {
		intensity := strconv.Itoa(i)
		if i == palette.TopBucket {
			intensity += "+"
		}
		tbl.AddRow(
			strconv.Itoa(i),
			intensity,
			p.swatch(out, i, false)+" "+light[i],
			p.swatch(out, i, true)+" "+dark[i],
		)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(p.Out, tbl)
	_, _ = fmt.Fprintln(p.Out)

	chrome := uitable.New()
	chrome.Separator = "  "
	chrome.AddRow(bold.Sprint("Chrome"), bold.Sprint("Light"), bold.Sprint("Dark"))
	chrome.AddRow("label", palette.LabelHex(false), palette.LabelHex(true))
	chrome.AddRow("outline", palette.OutlineHex(false), palette.OutlineHex(true))
	chrome.AddRow("background", palette.BackgroundHex(false), palette.BackgroundHex(true))
	_, _ = fmt.Fprintln(p.Out, chrome)
}

