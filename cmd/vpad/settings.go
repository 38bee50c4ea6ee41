// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gioui.org/vpad/config"
)

// settings are read from flags, VPAD_ environment variables and the
// settings file, in that order of precedence.
type settings struct {
	Layout  string
	Title   string
	Width   int
	Height  int
	Verbose bool
	Plot    plotSettings
}

type plotSettings struct {
	Width  int
	Height int
}

func loadSettings(flags *pflag.FlagSet) (settings, error) {
	v := viper.New()

	v.SetDefault("title", "vpad")
	v.SetDefault("width", 800)
	v.SetDefault("height", 480)
	v.SetDefault("plot.width", 72)
	v.SetDefault("plot.height", 12)

	v.SetConfigType("yaml")
	path, _ := flags.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "vpad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VPAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return settings{}, fmt.Errorf("bind flags: %w", err)
	}
	for key, flag := range map[string]string{
		"plot.width":  "plot-width",
		"plot.height": "plot-height",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, fmt.Errorf("bind %s: %w", flag, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}

// loadLayout reads the layout file, or returns the default layout if
// path is empty.
func loadLayout(path string) (*config.Layout, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
