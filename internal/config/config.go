// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads blasbridge settings from defaults, an optional
// config file, BLASBRIDGE_* environment variables and command line flags,
// in increasing order of precedence.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-blasbridge/bridge"
	"github.com/ajroetker/go-blasbridge/bridge/inject"
)

// Config holds application configuration.
type Config struct {
	Log    LogConfig
	Inject InjectConfig
	Demo   DemoConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// InjectConfig selects the injected gemm path.
type InjectConfig struct {
	Enabled bool
	Width   string
}

// DemoConfig holds the operands of the gemm command.
type DemoConfig struct {
	Order string
	Kind  string
	Size  int
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"inject":       "inject.enabled",
	"inject-width": "inject.width",
	"order":        "demo.order",
	"kind":         "demo.kind",
	"size":         "demo.size",
}

// Load reads configuration. path may be empty, in which case
// BLASBRIDGE_CONFIG and then ./blasbridge.yaml are tried. Flags in fs that
// the user set override every other source.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
	v.SetDefault("inject.enabled", false)
	v.SetDefault("inject.width", "narrow")
	v.SetDefault("demo.order", "row")
	v.SetDefault("demo.kind", "float64")
	v.SetDefault("demo.size", 2)

	if path == "" {
		path = os.Getenv("BLASBRIDGE_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("blasbridge")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BLASBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return c, c.Validate()
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	if _, err := c.Log.ZerologLevel(); err != nil {
		return err
	}
	if _, err := c.Inject.IndexWidth(); err != nil {
		return err
	}
	if _, err := c.Demo.StorageOrder(); err != nil {
		return err
	}
	if _, err := c.Demo.ScalarKind(); err != nil {
		return err
	}
	if c.Demo.Size < 0 {
		return errors.Errorf("config: demo.size %d is negative", c.Demo.Size)
	}
	return nil
}

// ZerologLevel parses Level.
func (c LogConfig) ZerologLevel() (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.NoLevel, errors.Wrap(err, "config: log.level")
	}
	return l, nil
}

// IndexWidth parses Width.
func (c InjectConfig) IndexWidth() (inject.IndexWidth, error) {
	return inject.ParseIndexWidth(strings.ToLower(c.Width))
}

// StorageOrder parses Order: "row" or "col".
func (c DemoConfig) StorageOrder() (bridge.Order, error) {
	switch strings.ToLower(c.Order) {
	case "row", "rowmajor":
		return bridge.RowMajor, nil
	case "col", "colmajor":
		return bridge.ColMajor, nil
	default:
		return 0, errors.Errorf("config: unknown demo.order %q", c.Order)
	}
}

// ScalarKind parses Kind as a Go element type name.
func (c DemoConfig) ScalarKind() (bridge.ScalarKind, error) {
	for k := range bridge.ScalarKind(bridge.NumKinds) {
		if k.String() == c.Kind {
			return k, nil
		}
	}
	return 0, errors.Errorf("config: unknown demo.kind %q", c.Kind)
}
