package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/heatgrid/pkg/commands/options"
	"tableflip.dev/heatgrid/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	gridOpts := &options.GridOptions{}
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where settings come from.",
		Example: `
heatgrid info
HEATGRID_LEVEL=12 heatgrid info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s := info.Info{Config: cfg}
			return s.Do(context.Background())
		},
	}
	options.AddGridArgs(cmd, gridOpts)

	topLevel.AddCommand(cmd)
}
