package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	Path string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Path, "output", "o", "",
		"PNG file to write; defaults to export_path from the config.")
}

// HoverOptions
type HoverOptions struct {
	X int
	Y int
}

func AddHoverArgs(cmd *cobra.Command, o *HoverOptions) {
	cmd.Flags().IntVar(&o.X, "x", 0, "Pixel column on the rendered canvas.")
	cmd.Flags().IntVar(&o.Y, "y", 0, "Pixel row on the rendered canvas.")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
}

// LogOptions
type LogOptions struct {
	Verbose bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug details to stderr.")
}
