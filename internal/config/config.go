// Package config loads deployment menu settings from file, environment and flags.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Garsondee/deploy-menu/internal/deploy"
)

// EnvPrefix is prepended to environment overrides, e.g. DEPLOY_SCREEN_WIDTH.
const EnvPrefix = "deploy"

// Config is the resolved menu configuration.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	LastOption   int
	FactionType  int
	Geometry     deploy.Geometry
	Storage      []int // units available in the attacking region, one per slot
	Deployed     []int // units already chosen, one per slot
	LogLevel     string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", 1280)
	v.SetDefault("screen.height", 720)
	v.SetDefault("menu.last_option", deploy.GridSize*(deploy.GridSize/2)+deploy.GridSize/2)
	v.SetDefault("faction.type", 1)
	v.SetDefault("tile.width", deploy.DefaultGeometry.TileWidth)
	v.SetDefault("tile.height", deploy.DefaultGeometry.TileHeight)
	v.SetDefault("tile.side_offset", deploy.DefaultGeometry.TileSideOffset)
	v.SetDefault("region.storage", defaultStorage())
	v.SetDefault("region.deployed", make([]int, deploy.SlotCount))
	v.SetDefault("log.level", "info")
}

// defaultStorage gives every slot two units.
func defaultStorage() []int {
	s := make([]int, deploy.SlotCount)
	for i := range s {
		s[i] = 2
	}
	return s
}

// BindFlags binds the persistent flags a command exposes to their config keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"screen.width":     "width",
		"screen.height":    "height",
		"menu.last_option": "last-option",
		"log.level":        "log-level",
	}
	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "binding flag %q", name)
		}
	}
	return nil
}

// New returns a viper instance with defaults and environment overrides wired.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges the config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	return nil
}

// Load resolves and validates a Config from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ScreenWidth:  v.GetInt("screen.width"),
		ScreenHeight: v.GetInt("screen.height"),
		LastOption:   v.GetInt("menu.last_option"),
		FactionType:  v.GetInt("faction.type"),
		Geometry: deploy.Geometry{
			TileWidth:      v.GetInt("tile.width"),
			TileHeight:     v.GetInt("tile.height"),
			TileSideOffset: v.GetInt("tile.side_offset"),
		},
		Storage:  v.GetIntSlice("region.storage"),
		Deployed: v.GetIntSlice("region.deployed"),
		LogLevel: v.GetString("log.level"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the preconditions the menu does not check at runtime.
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	}
	if n := deploy.GridSize * deploy.GridSize; c.LastOption < 0 || c.LastOption >= n {
		return errors.Errorf("last option %d outside [0,%d)", c.LastOption, n)
	}
	if len(c.Storage) != deploy.SlotCount {
		return errors.Errorf("region.storage has %d entries, want %d", len(c.Storage), deploy.SlotCount)
	}
	if len(c.Deployed) != deploy.SlotCount {
		return errors.Errorf("region.deployed has %d entries, want %d", len(c.Deployed), deploy.SlotCount)
	}
	g := c.Geometry
	if g.TileWidth <= 0 || g.TileHeight <= 0 || g.TileSideOffset < 0 || g.TileSideOffset >= g.TileWidth {
		return errors.Errorf("invalid tile geometry %+v", g)
	}
	return nil
}
