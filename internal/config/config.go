// Copyright 2026 The ghoaa Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config resolves the configuration of an export run from several
// sources with a well-defined precedence order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. A .env file in the working directory
//  4. The YAML configuration file
//  5. Built-in defaults
//
// The configuration file is the --config path when given. Otherwise
// ghoaa/config.yaml is searched for in the XDG config directories, then
// .ghoaa.yaml in the working directory.
package config

import (
	"os"
	"slices"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	ghoaaerrors "github.com/noritada/ghoaa/internal/errors"
)

const (
	xdgConfigFile   = "ghoaa/config.yaml"
	localConfigFile = ".ghoaa.yaml"
	dotEnvFile      = ".env"
)

// Load resolves the run configuration for the given command-line flags.
func Load(flags Flags) (*Run, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	mode, err := ParseMode(string(flags.Mode))
	if err != nil {
		return nil, err
	}

	run := &Run{
		Token:            os.Getenv(cfg.GitHub.TokenEnv),
		Org:              flags.Org,
		OutCSVFile:       flags.OutCSVFile,
		CacheFilePrefix:  cfg.Output.CacheFilePrefix,
		Mode:             mode,
		Endpoint:         cfg.GitHub.GraphQLEndpoint,
		Timeout:          cfg.HTTP.Timeout,
		MaxResponseBytes: cfg.HTTP.MaxResponseBytes,
	}
	if flags.CacheFilePrefix != "" {
		run.CacheFilePrefix = flags.CacheFilePrefix
	}
	if flags.Endpoint != "" {
		run.Endpoint = flags.Endpoint
	}

	if run.Token == "" {
		return nil, errors.Wrapf(ghoaaerrors.ErrMissingToken,
			"environment variable %s is empty", cfg.GitHub.TokenEnv)
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}
	return run, nil
}

// LoadConfig loads the configuration file and applies environment variable
// overrides on top of it. If configPath is empty the standard locations are
// searched, and it is not an error when none exists.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	path := configPath
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadConfigFile(path, cfg); err != nil {
			return nil, err
		}
		logrus.WithField("path", path).Debug("loaded configuration file")
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// findConfigFile returns the first existing default configuration file, or "".
func findConfigFile() string {
	if path, err := xdg.SearchConfigFile(xdgConfigFile); err == nil {
		return path
	}
	if _, err := os.Stat(localConfigFile); err == nil {
		return localConfigFile
	}
	return ""
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}

	return nil
}

// loadDotEnv loads variables from path into the process environment.
// Variables that are already set are left alone.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "failed to load %s", path)
	}
	logrus.WithField("path", path).Debug("loaded environment file")
	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("GHOAA_GRAPHQL_ENDPOINT"); endpoint != "" {
		cfg.GitHub.GraphQLEndpoint = endpoint
	}
	if tokenEnv := os.Getenv("GHOAA_TOKEN_ENV"); tokenEnv != "" {
		cfg.GitHub.TokenEnv = tokenEnv
	}
	if prefix := os.Getenv("GHOAA_CACHE_FILE_PREFIX"); prefix != "" {
		cfg.Output.CacheFilePrefix = prefix
	}
	if timeout := os.Getenv("GHOAA_HTTP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.HTTP.Timeout = d
		} else {
			logrus.WithField("value", timeout).Warn("ignoring invalid GHOAA_HTTP_TIMEOUT")
		}
	}
}

// ParseMode converts a subcommand name into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Modes, m) {
		return "", ghoaaerrors.NewConfigError("mode", "must be one of members, repositories, all; got "+s)
	}
	return m, nil
}

// Validate checks that every value an export run needs is present and sane.
func (r *Run) Validate() error {
	switch {
	case r.Token == "":
		return errors.WithStack(ghoaaerrors.ErrMissingToken)
	case r.Org == "":
		return ghoaaerrors.NewConfigError("organization", "must not be empty")
	case r.OutCSVFile == "":
		return ghoaaerrors.NewConfigError("output file", "must not be empty")
	case !slices.Contains(Modes, r.Mode):
		return ghoaaerrors.NewConfigError("mode", "must be one of members, repositories, all; got "+string(r.Mode))
	case r.Endpoint == "":
		return ghoaaerrors.NewConfigError("graphql endpoint", "must not be empty")
	case r.Timeout <= 0:
		return ghoaaerrors.NewConfigError("http timeout", "must be positive, got "+r.Timeout.String())
	case r.MaxResponseBytes <= 0:
		return ghoaaerrors.NewConfigError("http max response bytes", "must be positive")
	}
	return nil
}
