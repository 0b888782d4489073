// Package config loads heatgrid settings from a .heatgrid file, HEATGRID_*
// environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/heatgrid/pkg/app"
	"tableflip.dev/heatgrid/pkg/canvas"
	"tableflip.dev/heatgrid/pkg/generate"
	"tableflip.dev/heatgrid/pkg/timeutil"
)

// Keys shared by the config file, the environment and flag bindings.
const (
	KeyLevel       = "level"
	KeyDark        = "dark"
	KeyMode        = "mode"
	KeyWeekStart   = "week_start"
	KeySeed        = "seed"
	KeyText        = "text"
	KeyDays        = "days"
	KeyCellSize    = "cell_size"
	KeyCellPadding = "cell_padding"
	KeyMarginLeft  = "margin_left"
	KeyMarginTop   = "margin_top"
	KeyExportPath  = "export_path"
)

// ErrUnknownWeekStart is returned for week start names that are not weekdays.
var ErrUnknownWeekStart = errors.New("config: unknown week start")

// ErrInvalid is returned when a loaded value cannot drive the renderer.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved set of settings.
type Config struct {
	Level      int             `json:"level" yaml:"level"`
	Dark       bool            `json:"dark" yaml:"dark"`
	Mode       app.Mode        `json:"-" yaml:"-"`
	WeekStart  time.Weekday    `json:"-" yaml:"-"`
	Seed       int64           `json:"seed" yaml:"seed"`
	Text       string          `json:"text,omitempty" yaml:"text,omitempty"`
	Days       int             `json:"days" yaml:"days"`
	Geometry   canvas.Geometry `json:"geometry" yaml:"geometry"`
	ExportPath string          `json:"exportPath" yaml:"exportPath"`
	// File is the config file that was read, empty when none was found.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// New returns a viper instance with heatgrid's defaults, search paths and
// environment binding. Nothing is read until Load.
func New() *viper.Viper {
	v := viper.New()
	geo := canvas.DefaultGeometry()

	v.SetDefault(KeyLevel, 3)
	v.SetDefault(KeyDark, true)
	v.SetDefault(KeyMode, app.ModeCalendar.String())
	v.SetDefault(KeyWeekStart, "sunday")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyText, "")
	v.SetDefault(KeyDays, generate.DefaultDays)
	v.SetDefault(KeyCellSize, geo.CellSize)
	v.SetDefault(KeyCellPadding, geo.Padding)
	v.SetDefault(KeyMarginLeft, geo.Left)
	v.SetDefault(KeyMarginTop, geo.Top)
	v.SetDefault(KeyExportPath, "~/contribution-chart.png")

	v.SetConfigName(".heatgrid") // .yaml is implicit
	v.SetEnvPrefix("HEATGRID")
	v.AutomaticEnv()

	if override := os.Getenv("HEATGRID_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return v
}

// Load reads the config file, if any, and resolves every key. A missing file
// is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}
	return Resolve(v)
}

// Resolve builds a Config from the current state of v without touching disk.
func Resolve(v *viper.Viper) (*Config, error) {
	mode, err := app.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return nil, err
	}
	start, err := ParseWeekStart(v.GetString(KeyWeekStart))
	if err != nil {
		return nil, err
	}
	days, _, err := timeutil.ParseWindow(v.GetString(KeyDays))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyDays, err)
	}
	export, err := homedir.Expand(v.GetString(KeyExportPath))
	if err != nil {
		return nil, fmt.Errorf("config: export path: %w", err)
	}

	c := &Config{
		Level:     v.GetInt(KeyLevel),
		Dark:      v.GetBool(KeyDark),
		Mode:      mode,
		WeekStart: start,
		Seed:      v.GetInt64(KeySeed),
		Text:      v.GetString(KeyText),
		Days:      days,
		Geometry: canvas.Geometry{
			CellSize: v.GetInt(KeyCellSize),
			Padding:  v.GetInt(KeyCellPadding),
			Left:     v.GetInt(KeyMarginLeft),
			Top:      v.GetInt(KeyMarginTop),
		},
		ExportPath: export,
		File:       v.ConfigFileUsed(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects values the renderer cannot work with. Levels outside
// 0-15 are accepted and clamped by the engine.
func (c *Config) Validate() error {
	switch {
	case c.Geometry.CellSize <= 0:
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, KeyCellSize, c.Geometry.CellSize)
	case c.Geometry.Padding < 0:
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalid, KeyCellPadding, c.Geometry.Padding)
	case c.Geometry.Left < 0 || c.Geometry.Top < 0:
		return fmt.Errorf("%w: margins must not be negative", ErrInvalid)
	case c.Days <= 0:
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, KeyDays, c.Days)
	}
	return nil
}

// AppOptions maps the config onto engine options.
func (c *Config) AppOptions() app.Options {
	return app.Options{
		Mode:      c.Mode,
		WeekStart: c.WeekStart,
		Days:      c.Days,
		Seed:      c.Seed,
		TextCol:   -1,
	}
}

// NewService builds an engine from the config and syncs it once, so the
// returned service already holds a grid.
func (c *Config) NewService(logger *slog.Logger) *app.Service {
	opts := c.AppOptions()
	opts.Logger = logger
	svc := app.New(opts)
	svc.Sync(c.Inputs())
	return svc
}

// Inputs maps the config onto the first host inputs.
func (c *Config) Inputs() app.Inputs {
	return app.Inputs{Level: c.Level, DarkMode: c.Dark, Text: c.Text}
}

var weekdays = map[string]time.Weekday{}

func init() {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		weekdays[name] = d
		weekdays[name[:3]] = d
	}
}

// ParseWeekStart accepts a weekday name or its three letter prefix, in any
// case. An empty string is Sunday.
func ParseWeekStart(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Sunday, nil
	}
	if d, ok := weekdays[s]; ok {
		return d, nil
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrUnknownWeekStart, s)
}
