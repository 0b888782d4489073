package options

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/heatgrid/pkg/config"
)

// GridOptions are the generation flags shared by every command that builds
// a grid. Values only override the config file when the flag was given.
type GridOptions struct {
	Level     int
	Dark      bool
	Seed      int64
	Text      string
	Mode      string
	WeekStart string
	Days      string
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"level":      config.KeyLevel,
	"dark":       config.KeyDark,
	"seed":       config.KeySeed,
	"text":       config.KeyText,
	"mode":       config.KeyMode,
	"week-start": config.KeyWeekStart,
	"days":       config.KeyDays,
}

// AddGridArgs registers the generation flags on cmd.
func AddGridArgs(cmd *cobra.Command, o *GridOptions) {
	cmd.Flags().IntVarP(&o.Level, "level", "l", 3,
		"Activity level from 0 (empty) to 15 (saturated).")
	cmd.Flags().BoolVar(&o.Dark, "dark", true,
		"Use the dark palette.")
	cmd.Flags().Int64Var(&o.Seed, "seed", 0,
		"Random seed; 0 picks a new grid every run.")
	cmd.Flags().StringVarP(&o.Text, "text", "t", "",
		"Text to stamp into the grid.")
	cmd.Flags().StringVarP(&o.Mode, "mode", "m", "calendar",
		`Grid mode, one of "calendar" or "matrix".`)
	cmd.Flags().StringVar(&o.WeekStart, "week-start", "sunday",
		"First day of each week column.")
	cmd.Flags().StringVar(&o.Days, "days", "365",
		"History window in calendar mode, in days or units like 52w or 1y.")
}

// BindGridArgs lets flags given on cmd take precedence in v.
func BindGridArgs(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}
	return nil
}
