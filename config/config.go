// Package config loads engine settings from a yaml file, falling back to
// defaults when the file is absent.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Vsync  bool   `yaml:"vsync"`
	Msaa   bool   `yaml:"msaa"`
}

type RendererConfig struct {
	ClearColor   [4]float32 `yaml:"clear_color"`
	Transparency bool       `yaml:"transparency"`
}

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Renderer RendererConfig `yaml:"renderer"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "amethyst",
			Width:  1280,
			Height: 720,
			Vsync:  true,
			Msaa:   true,
		},
		Renderer: RendererConfig{
			ClearColor: [4]float32{0, 0, 0, 1},
		},
	}
}

// Load reads the yaml config at path. A missing file is not an error and
// returns the defaults.
func Load(path string) (Config, error) {

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {

		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, errors.New("failed to read config file: " + err.Error())
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, errors.New("failed to parse config file: " + err.Error())
	}

	return cfg, nil
}
