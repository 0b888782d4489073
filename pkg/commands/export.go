package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/heatgrid/pkg/commands/options"
	"tableflip.dev/heatgrid/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	gridOpts := &options.GridOptions{}
	exportOpts := &options.ExportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the grid to a PNG file.",
		Example: `
heatgrid export
heatgrid export -o chart.png --dark=false --level 9
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			e := export.Export{
				Config: cfg,
				Path:   exportOpts.Path,
				Logger: newLogger(),
			}
			return e.Do(context.Background())
		},
	}
	options.AddGridArgs(cmd, gridOpts)
	options.AddExportArgs(cmd, exportOpts)

	topLevel.AddCommand(cmd)
}
