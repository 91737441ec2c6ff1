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

// Package config types define the configuration structures used throughout
// ghoaa. Config mirrors the YAML configuration file; Run is the resolved,
// validated value an export run is executed with.
package config

import "time"

// Mode selects which CSV files a run produces.
type Mode string

const (
	ModeMembers      Mode = "members"
	ModeRepositories Mode = "repositories"
	ModeAll          Mode = "all"
)

// Modes lists every valid Mode in the order they are documented.
var Modes = []Mode{ModeMembers, ModeRepositories, ModeAll}

// Config represents the contents of a ghoaa configuration file.
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
	Output OutputConfig `yaml:"output"`
	HTTP   HTTPConfig   `yaml:"http"`
}

// GitHubConfig contains the API endpoint and the name of the environment
// variable holding the access token. Pointing GraphQLEndpoint at a GitHub
// Enterprise Server instance is supported.
type GitHubConfig struct {
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
	TokenEnv        string `yaml:"token_env"`
}

// OutputConfig contains output settings that do not vary per invocation.
type OutputConfig struct {
	CacheFilePrefix string `yaml:"cache_file_prefix"`
}

// HTTPConfig bounds a single GraphQL request.
type HTTPConfig struct {
	Timeout          time.Duration `yaml:"timeout"`
	MaxResponseBytes int64         `yaml:"max_response_bytes"`
}

// Run is the immutable configuration of one export run.
type Run struct {
	Token           string
	Org             string
	OutCSVFile      string
	CacheFilePrefix string
	Mode            Mode
	Endpoint        string

	Timeout          time.Duration
	MaxResponseBytes int64
}

// Flags carries the values given on the command line. Empty strings mean
// the flag was not set.
type Flags struct {
	ConfigPath      string
	Mode            Mode
	Org             string
	OutCSVFile      string
	CacheFilePrefix string
	Endpoint        string
}

// DefaultConfig returns the built-in defaults, suitable for github.com.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			GraphQLEndpoint: "https://api.github.com/graphql",
			TokenEnv:        "GITHUB_ACCESS_TOKEN",
		},
		HTTP: HTTPConfig{
			Timeout:          60 * time.Second,
			MaxResponseBytes: 10 * 1024 * 1024,
		},
	}
}
