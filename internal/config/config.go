package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds demo configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Source SourceConfig `toml:"source"`
	UI     UIConfig     `toml:"ui"`
}

// LayoutConfig picks the starting container and its geometry.
type LayoutConfig struct {
	Mode               string  `toml:"mode" mapstructure:"mode"`
	ItemWidth          float64 `toml:"item_width" mapstructure:"item_width"`
	ItemHeight         float64 `toml:"item_height" mapstructure:"item_height"`
	Gap                int     `toml:"gap" mapstructure:"gap"`
	EstimatedRowHeight int     `toml:"estimated_row_height" mapstructure:"estimated_row_height"`
	MultiSelect        bool    `toml:"multi_select" mapstructure:"multi_select"`
}

// SourceConfig tunes the demo catalog.
type SourceConfig struct {
	ConsumeSizes bool    `toml:"consume_sizes" mapstructure:"consume_sizes"`
	CellWidth    float64 `toml:"cell_width" mapstructure:"cell_width"`
	CellHeight   float64 `toml:"cell_height" mapstructure:"cell_height"`
	MaxDistance  int     `toml:"max_distance" mapstructure:"max_distance"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent string `toml:"accent" mapstructure:"accent"`
	Border string `toml:"border" mapstructure:"border"`
	Mouse  bool   `toml:"mouse" mapstructure:"mouse"`
}

const (
	ModeList = "list"
	ModeGrid = "grid"
)

func defaults(v *viper.Viper) {
	v.SetDefault("layout.mode", ModeList)
	v.SetDefault("layout.item_width", 18)
	v.SetDefault("layout.item_height", 3)
	v.SetDefault("layout.gap", 1)
	v.SetDefault("layout.estimated_row_height", 1)
	v.SetDefault("layout.multi_select", false)
	v.SetDefault("source.consume_sizes", false)
	v.SetDefault("source.cell_width", 22)
	v.SetDefault("source.cell_height", 4)
	v.SetDefault("source.max_distance", 2)
	v.SetDefault("ui.accent", "#f5c2e7")
	v.SetDefault("ui.border", "#585b70")
	v.SetDefault("ui.mouse", true)
}

// Flags registers the command-line overrides Load understands.
func Flags(flags *pflag.FlagSet) {
	flags.String("config", "", "path to config.toml")
	flags.String("mode", "", "starting container: list or grid")
	flags.Bool("consume-sizes", false, "let the data source size cells")
	flags.Bool("multi-select", false, "allow selecting more than one cell")
	flags.Bool("init", false, "write a default config file and exit")
}

// Path returns the config file location: GRIDSOURCE_CONFIG, or
// gridsource/config.toml under the user config dir.
func Path() (string, error) {
	if p := os.Getenv("GRIDSOURCE_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "gridsource", "config.toml"), nil
}

// Load reads configuration from file, env and flags, in increasing
// precedence. Env var overrides use prefix GRIDSOURCE_. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	defaults(v)
	v.SetConfigType("toml")

	path := ""
	if flags != nil {
		path, _ = flags.GetString("config")
	}
	if path == "" {
		p, err := Path()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("GRIDSOURCE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for key, flag := range map[string]string{
			"layout.mode":          "mode",
			"source.consume_sizes": "consume-sizes",
			"layout.multi_select":  "multi-select",
		} {
			if f := flags.Lookup(flag); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	// read config file if present
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the demo cannot honor.
func (c Config) Validate() error {
	switch c.Layout.Mode {
	case ModeList, ModeGrid:
	default:
		return fmt.Errorf("layout.mode: unknown mode %q (want %s or %s)", c.Layout.Mode, ModeList, ModeGrid)
	}
	if c.Layout.ItemWidth <= 0 || c.Layout.ItemHeight <= 0 {
		return fmt.Errorf("layout: item size must be positive, got %gx%g", c.Layout.ItemWidth, c.Layout.ItemHeight)
	}
	if c.Source.ConsumeSizes && (c.Source.CellWidth <= 0 || c.Source.CellHeight <= 0) {
		return fmt.Errorf("source: cell size must be positive when consume_sizes is set")
	}
	if c.Layout.Gap < 0 {
		return fmt.Errorf("layout.gap: must not be negative")
	}
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	defaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// WriteDefault writes the built-in configuration to path, creating the
// directory if needed. An existing file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString("# gridsource demo configuration\n\n"); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
