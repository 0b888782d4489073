package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/heatgrid/pkg/commands/options"
	"tableflip.dev/heatgrid/pkg/runner/paint"
)

func addPaint(topLevel *cobra.Command) {
	gridOpts := &options.GridOptions{}
	cmd := &cobra.Command{
		Use:   "paint",
		Short: "Paint the grid with the mouse in an interactive UI.",
		Long: `Press and drag to paint. A stroke that starts on an empty cell fills,
one that starts on a filled cell erases. Keys: r regenerate, +/- level,
d dark mode, e export png, q quit. Edits to the config file are applied
while the UI is open.`,
		Example: `
heatgrid paint
heatgrid paint --mode matrix --text "hi"
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, reload, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			p := paint.Paint{
				Config: cfg,
				Reload: reload,
				Logger: newLogger(),
			}
			return p.Do(context.Background())
		},
	}
	options.AddGridArgs(cmd, gridOpts)

	topLevel.AddCommand(cmd)
}
