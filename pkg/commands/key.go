package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/heatgrid/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	k := key.Key{}
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the color legend",
		Example: `
heatgrid key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return k.Do(context.Background())
		},
	}
	cmd.Flags().BoolVar(&k.Dark, "dark", true, "Show swatches on the dark palette.")

	topLevel.AddCommand(cmd)
}
