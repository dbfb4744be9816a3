// Package atlasconfig loads and saves the AtlasManager's configuration
// from a TOML file, the same way the reference application's
// config.go manages its settings file.
package atlasconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/textatlas/textatlas/textopts"
)

// Config is the on-disk shape of an AtlasManager's construction
// options, plus defaults for text rendered into it.
type Config struct {
	TextureWidth    int
	TextureHeight   int
	TextureCount    int
	DefaultFontSize float64
	AntialiasMode   string
}

const fileName = "atlas.toml"

// Default returns the configuration a fresh install starts with.
func Default() Config {
	return Config{
		TextureWidth:    4096,
		TextureHeight:   4096,
		TextureCount:    1,
		DefaultFontSize: 16,
		AntialiasMode:   "grayscale",
	}
}

// InitializeIfNot writes Default() to dir/atlas.toml if no config file
// exists there yet.
func InitializeIfNot(dir string) error {
	ok, err := exists(dir)
	if err != nil {
		return fmt.Errorf("atlasconfig: check config dir: %w", err)
	}
	if !ok {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("atlasconfig: create config dir: %w", err)
		}
	}

	path := filepath.Join(dir, fileName)
	ok, err = exists(path)
	if err != nil {
		return fmt.Errorf("atlasconfig: check config file: %w", err)
	}
	if !ok {
		return Write(dir, Default())
	}
	return nil
}

// Read loads dir/atlas.toml.
func Read(dir string) (Config, error) {
	var cfg Config
	path := filepath.Join(dir, fileName)
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("atlasconfig: read %s: %w", path, err)
	}
	return cfg, nil
}

// Write saves cfg to dir/atlas.toml.
func Write(dir string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(&cfg); err != nil {
		return fmt.Errorf("atlasconfig: encode config: %w", err)
	}
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("atlasconfig: write %s: %w", path, err)
	}
	return nil
}

// Dir resolves the config directory, preferring $XDG_CONFIG_HOME and
// falling back to ~/.config/textatlas, exactly as the reference
// application's configDir()/xdgOrFallback() do.
func Dir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "textatlas")
}

func xdgOrFallback(xdg, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			return dir
		}
	}
	return fallback
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ParsedAntialiasMode decodes the config's string antialias mode into the
// textopts enum, defaulting to Grayscale for an unrecognized value.
func (c Config) ParsedAntialiasMode() textopts.AntialiasMode {
	switch c.AntialiasMode {
	case "none":
		return textopts.AntialiasNone
	case "subpixel":
		return textopts.AntialiasSubPixel
	default:
		return textopts.AntialiasGrayscale
	}
}
