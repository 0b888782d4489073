package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/heatgrid/pkg/commands/options"
	"tableflip.dev/heatgrid/pkg/runner/hover"
)

func addHover(topLevel *cobra.Command) {
	gridOpts := &options.GridOptions{}
	hoverOpts := &options.HoverOptions{}
	cmd := &cobra.Command{
		Use:   "hover",
		Short: "Report the cell under a pixel of the exported image.",
		Example: `
heatgrid hover --x 45 --y 33 --seed 1
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			h := hover.Hover{
				Config: cfg,
				X:      hoverOpts.X,
				Y:      hoverOpts.Y,
				Logger: newLogger(),
			}
			return h.Do(context.Background())
		},
	}
	options.AddGridArgs(cmd, gridOpts)
	options.AddHoverArgs(cmd, hoverOpts)

	topLevel.AddCommand(cmd)
}
