package app

import (
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"gol/pkg/lifelike"
)

// Config represents the command-line parameters for the application. Every
// field can also come from a YAML file named by -config; flags given
// explicitly on the command line win over the file.
type Config struct {
	ConfigPath string `yaml:"-"`

	Sim      string  `yaml:"sim"`
	Rule     string  `yaml:"rule"`
	Boundary string  `yaml:"boundary"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Seed     int64   `yaml:"seed"`
	Density  float64 `yaml:"density"`

	Scale    int `yaml:"scale"`
	TPS      int `yaml:"tps"`
	MinTPS   int `yaml:"min_tps"`
	MaxTPS   int `yaml:"max_tps"`
	HUDWidth int `yaml:"hud_width"`

	SavePath string `yaml:"save_path"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Boundary: lifelike.Toroidal.String(),
		Width:    96,
		Height:   64,
		Seed:     42,
		Density:  0.5,
		Scale:    8,
		TPS:      10,
		MinTPS:   1,
		MaxTPS:   60,
		HUDWidth: 240,
		SavePath: "life.lif",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML configuration file")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation (rule preset) to run")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule string overriding the preset, e.g. B36/S23")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge behavior: clamped, toroidal or unbounded")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random resets")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive after a random reset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.MinTPS, "min-tps", c.MinTPS, "slowest selectable speed")
	fs.IntVar(&c.MaxTPS, "max-tps", c.MaxTPS, "fastest selectable speed")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "file used by save and load")
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// Parse builds a Config from command-line arguments, applying the -config
// file first when one is named.
func Parse(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ConfigPath == "" {
		return cfg, cfg.Validate()
	}

	fileCfg := NewConfig()
	if err := fileCfg.LoadFile(cfg.ConfigPath); err != nil {
		return nil, err
	}
	// Re-parse so that only flags present on the command line override the
	// file's values.
	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fileCfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fileCfg, fileCfg.Validate()
}

// Validate checks field ranges and that rule and boundary parse.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(lifelike.ErrInvalidDimensions, "[Validate] board %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("[Validate] scale must be positive, got %d", c.Scale)
	}
	if c.MinTPS <= 0 || c.MaxTPS < c.MinTPS {
		return errors.Errorf("[Validate] invalid speed range %d..%d", c.MinTPS, c.MaxTPS)
	}
	if c.TPS < c.MinTPS || c.TPS > c.MaxTPS {
		return errors.Errorf("[Validate] tps %d outside %d..%d", c.TPS, c.MinTPS, c.MaxTPS)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("[Validate] density %v outside [0, 1]", c.Density)
	}
	if c.HUDWidth < 0 {
		return errors.Errorf("[Validate] hud width must not be negative, got %d", c.HUDWidth)
	}
	if c.Rule != "" {
		if _, err := lifelike.ParseRule(c.Rule); err != nil {
			return errors.Wrap(err, "[Validate] rule")
		}
	}
	if _, err := lifelike.ParseBoundary(c.Boundary); err != nil {
		return errors.Wrap(err, "[Validate] boundary")
	}
	return nil
}

// SimOptions converts the config into the key/value map sim factories
// accept.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"seed":     strconv.FormatInt(c.Seed, 10),
		"density":  strconv.FormatFloat(c.Density, 'f', -1, 64),
		"boundary": c.Boundary,
	}
	if c.Rule != "" {
		opts["rule"] = c.Rule
	}
	return opts
}
