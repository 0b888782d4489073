package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/heatgrid/pkg/commands/options"
	"tableflip.dev/heatgrid/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	gridOpts := &options.GridOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a generated grid.",
		Example: `
heatgrid show
heatgrid show --level 12 --week-start monday
heatgrid show --mode matrix --text "hello" --seed 7
heatgrid show --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := output.Format()
			if err != nil {
				return output.HandleError(err)
			}
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Show{
				Config: cfg,
				Format: format,
				Logger: newLogger(),
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	options.AddGridArgs(cmd, gridOpts)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
