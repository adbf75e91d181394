package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/deploy-menu/internal/deploy"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.ScreenWidth)
	assert.Equal(t, 720, cfg.ScreenHeight)
	assert.Equal(t, 12, cfg.LastOption)
	assert.Equal(t, deploy.DefaultGeometry, cfg.Geometry)
	assert.Len(t, cfg.Storage, deploy.SlotCount)
	assert.Equal(t, 2, cfg.Storage[7])
	assert.Equal(t, make([]int, deploy.SlotCount), cfg.Deployed)
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.toml")
	body := `
[screen]
width = 1024
height = 768

[menu]
last_option = 14

[region]
storage = [3,0,0,0,0,0,0,0, 0,0,0,0,0,0,0,0, 0,0,0,0,0,0,0,2]
deployed = [1,0,0,0,0,0,0,0, 0,0,0,0,0,0,0,0, 0,0,0,0,0,0,0,0]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	v := New()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.ScreenWidth)
	assert.Equal(t, 14, cfg.LastOption)
	assert.Equal(t, 3, cfg.Storage[0])
	assert.Equal(t, 2, cfg.Storage[23])
	assert.Equal(t, 1, cfg.Deployed[0])
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DEPLOY_SCREEN_WIDTH", "640")
	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.ScreenWidth)
}

func TestLoad_FlagOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("last-option", 12, "")
	require.NoError(t, flags.Parse([]string{"--last-option=7"}))

	v := New()
	require.NoError(t, BindFlags(v, flags))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.LastOption)
}

func TestReadFile_Missing(t *testing.T) {
	err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(New())
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Storage = cfg.Storage[:10]
	assert.ErrorContains(t, cfg.Validate(), "region.storage")

	cfg = base()
	cfg.LastOption = 25
	assert.ErrorContains(t, cfg.Validate(), "last option")

	cfg = base()
	cfg.Geometry.TileSideOffset = cfg.Geometry.TileWidth
	assert.ErrorContains(t, cfg.Validate(), "tile geometry")

	cfg = base()
	cfg.ScreenHeight = 0
	assert.ErrorContains(t, cfg.Validate(), "screen size")
}
