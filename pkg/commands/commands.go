package commands

import (
	"log/slog"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/heatgrid/pkg/commands/options"
	"tableflip.dev/heatgrid/pkg/config"
	"tableflip.dev/heatgrid/pkg/logging"
)

var (
	output = &options.OutputOptions{}
	logs   = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "heatgrid",
		Short: base.Wrap80("Synthetic contribution heat-maps on the command line: generate, print, paint and export."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddLogArgs(cmd, logs)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addPaint(topLevel)
	addExport(topLevel)
	addHover(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}

// loadConfig resolves settings for cmd, with its flags taking precedence
// over the environment and the config file. The returned func re-reads the
// same sources.
func loadConfig(cmd *cobra.Command) (*config.Config, func() (*config.Config, error), error) {
	v := config.New()
	if err := options.BindGridArgs(v, cmd); err != nil {
		return nil, nil, err
	}
	reload := func() (*config.Config, error) {
		return config.Load(v)
	}
	cfg, err := reload()
	if err != nil {
		return nil, nil, err
	}
	return cfg, reload, nil
}

func newLogger() *slog.Logger {
	l := logging.New(os.Stderr, logs.Verbose)
	logging.Install(l)
	return l
}
