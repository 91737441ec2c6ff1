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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	ghoaaerrors "github.com/noritada/ghoaa/internal/errors"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GitHub.GraphQLEndpoint != "https://api.github.com/graphql" {
		t.Errorf("GraphQLEndpoint = %s, want https://api.github.com/graphql", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_ACCESS_TOKEN" {
		t.Errorf("TokenEnv = %s, want GITHUB_ACCESS_TOKEN", cfg.GitHub.TokenEnv)
	}
	if cfg.Output.CacheFilePrefix != "" {
		t.Errorf("CacheFilePrefix = %q, want empty", cfg.Output.CacheFilePrefix)
	}
	if cfg.HTTP.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v, want 60s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.MaxResponseBytes != 10*1024*1024 {
		t.Errorf("MaxResponseBytes = %d, want 10MiB", cfg.HTTP.MaxResponseBytes)
	}
}

func TestLoadConfigFile(t *testing.T) {
	unsetenv(t, "GHOAA_GRAPHQL_ENDPOINT")
	unsetenv(t, "GHOAA_CACHE_FILE_PREFIX")
	unsetenv(t, "GHOAA_TOKEN_ENV")
	unsetenv(t, "GHOAA_HTTP_TIMEOUT")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	writeFile(t, configPath, `
github:
  graphql_endpoint: https://github.example.com/api/graphql
  token_env: GHE_TOKEN
output:
  cache_file_prefix: cache/resp
http:
  timeout: 90s
  max_response_bytes: 1048576
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GitHub.GraphQLEndpoint != "https://github.example.com/api/graphql" {
		t.Errorf("GraphQLEndpoint = %s", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GHE_TOKEN" {
		t.Errorf("TokenEnv = %s", cfg.GitHub.TokenEnv)
	}
	if cfg.Output.CacheFilePrefix != "cache/resp" {
		t.Errorf("CacheFilePrefix = %s", cfg.Output.CacheFilePrefix)
	}
	if cfg.HTTP.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.MaxResponseBytes != 1048576 {
		t.Errorf("MaxResponseBytes = %d", cfg.HTTP.MaxResponseBytes)
	}
}

func TestLoadConfigFile_KeepsDefaultsForMissingKeys(t *testing.T) {
	unsetenv(t, "GHOAA_GRAPHQL_ENDPOINT")
	unsetenv(t, "GHOAA_TOKEN_ENV")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, "output:\n  cache_file_prefix: resp\n")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.GitHub.GraphQLEndpoint != "https://api.github.com/graphql" {
		t.Errorf("GraphQLEndpoint = %s, want default", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_ACCESS_TOKEN" {
		t.Errorf("TokenEnv = %s, want default", cfg.GitHub.TokenEnv)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}

	bad := filepath.Join(tmpDir, "bad.yaml")
	writeFile(t, bad, "github: [unterminated")
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("GHOAA_GRAPHQL_ENDPOINT", "https://env.example.com/graphql")
	t.Setenv("GHOAA_CACHE_FILE_PREFIX", "env-prefix")
	t.Setenv("GHOAA_TOKEN_ENV", "ENV_TOKEN")
	t.Setenv("GHOAA_HTTP_TIMEOUT", "5s")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.GitHub.GraphQLEndpoint != "https://env.example.com/graphql" {
		t.Errorf("GraphQLEndpoint = %s", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.Output.CacheFilePrefix != "env-prefix" {
		t.Errorf("CacheFilePrefix = %s", cfg.Output.CacheFilePrefix)
	}
	if cfg.GitHub.TokenEnv != "ENV_TOKEN" {
		t.Errorf("TokenEnv = %s", cfg.GitHub.TokenEnv)
	}
	if cfg.HTTP.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.HTTP.Timeout)
	}
}

func TestEnvironmentOverrides_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("GHOAA_HTTP_TIMEOUT", "soon")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.HTTP.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v, want default", cfg.HTTP.Timeout)
	}
}

func TestLoad_Precedence(t *testing.T) {
	const key = "GHOAA_GRAPHQL_ENDPOINT"

	tests := []struct {
		name     string
		yaml     string
		dotEnv   string
		env      string
		flag     string
		expected string
	}{
		{
			name:     "default",
			expected: "https://api.github.com/graphql",
		},
		{
			name:     "yaml over default",
			yaml:     "https://yaml.example.com/graphql",
			expected: "https://yaml.example.com/graphql",
		},
		{
			name:     "dotenv over yaml",
			yaml:     "https://yaml.example.com/graphql",
			dotEnv:   "https://dotenv.example.com/graphql",
			expected: "https://dotenv.example.com/graphql",
		},
		{
			name:     "env over dotenv",
			yaml:     "https://yaml.example.com/graphql",
			dotEnv:   "https://dotenv.example.com/graphql",
			env:      "https://env.example.com/graphql",
			expected: "https://env.example.com/graphql",
		},
		{
			name:     "flag over everything",
			yaml:     "https://yaml.example.com/graphql",
			dotEnv:   "https://dotenv.example.com/graphql",
			env:      "https://env.example.com/graphql",
			flag:     "https://flag.example.com/graphql",
			expected: "https://flag.example.com/graphql",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)

			unsetenv(t, key)
			unsetenv(t, "GHOAA_TOKEN_ENV")
			unsetenv(t, "GHOAA_CACHE_FILE_PREFIX")
			unsetenv(t, "GHOAA_HTTP_TIMEOUT")
			t.Setenv("GITHUB_ACCESS_TOKEN", "test-token")

			configPath := filepath.Join(dir, "config.yaml")
			content := "output:\n  cache_file_prefix: \"\"\n"
			if tt.yaml != "" {
				content = "github:\n  graphql_endpoint: " + tt.yaml + "\n"
			}
			writeFile(t, configPath, content)

			if tt.dotEnv != "" {
				writeFile(t, filepath.Join(dir, ".env"), key+"="+tt.dotEnv+"\n")
			}
			if tt.env != "" {
				t.Setenv(key, tt.env)
			}

			run, err := Load(Flags{
				ConfigPath: configPath,
				Mode:       ModeMembers,
				Org:        "acme",
				OutCSVFile: "out.csv",
				Endpoint:   tt.flag,
			})
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if run.Endpoint != tt.expected {
				t.Errorf("Endpoint = %s, want %s", run.Endpoint, tt.expected)
			}
		})
	}
}

func TestLoad_TokenFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	unsetenv(t, "GITHUB_ACCESS_TOKEN")
	unsetenv(t, "GHOAA_TOKEN_ENV")

	writeFile(t, filepath.Join(dir, ".env"), "GITHUB_ACCESS_TOKEN=from-dotenv\n")
	configPath := filepath.Join(dir, "config.yaml")
	writeFile(t, configPath, "{}\n")

	run, err := Load(Flags{ConfigPath: configPath, Mode: ModeAll, Org: "acme", OutCSVFile: "out.csv"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if run.Token != "from-dotenv" {
		t.Errorf("Token = %q, want from-dotenv", run.Token)
	}
}

func TestLoad_CacheFilePrefixFlag(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("GITHUB_ACCESS_TOKEN", "test-token")
	t.Setenv("GHOAA_CACHE_FILE_PREFIX", "from-env")
	unsetenv(t, "GHOAA_TOKEN_ENV")

	configPath := filepath.Join(dir, "config.yaml")
	writeFile(t, configPath, "{}\n")

	run, err := Load(Flags{ConfigPath: configPath, Mode: ModeMembers, Org: "acme", OutCSVFile: "out.csv"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if run.CacheFilePrefix != "from-env" {
		t.Errorf("CacheFilePrefix = %q, want from-env", run.CacheFilePrefix)
	}

	run, err = Load(Flags{ConfigPath: configPath, Mode: ModeMembers, Org: "acme", OutCSVFile: "out.csv", CacheFilePrefix: "from-flag"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if run.CacheFilePrefix != "from-flag" {
		t.Errorf("CacheFilePrefix = %q, want from-flag", run.CacheFilePrefix)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	unsetenv(t, "GITHUB_ACCESS_TOKEN")
	unsetenv(t, "GHOAA_TOKEN_ENV")

	configPath := filepath.Join(dir, "config.yaml")
	writeFile(t, configPath, "{}\n")

	_, err := Load(Flags{ConfigPath: configPath, Mode: ModeMembers, Org: "acme", OutCSVFile: "out.csv"})
	if !errors.Is(err, ghoaaerrors.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestLoad_Mode(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("GITHUB_ACCESS_TOKEN", "test-token")
	unsetenv(t, "GHOAA_TOKEN_ENV")

	configPath := filepath.Join(dir, "config.yaml")
	writeFile(t, configPath, "{}\n")

	run, err := Load(Flags{ConfigPath: configPath, Mode: Mode(" Repositories "), Org: "acme", OutCSVFile: "out.csv"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if run.Mode != ModeRepositories {
		t.Errorf("Mode = %q, want %q", run.Mode, ModeRepositories)
	}

	_, err = Load(Flags{ConfigPath: configPath, Mode: Mode("teams"), Org: "acme", OutCSVFile: "out.csv"})
	var configErr *ghoaaerrors.ConfigError
	if !errors.As(err, &configErr) || configErr.Field != "mode" {
		t.Fatalf("expected a mode ConfigError, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "members", want: ModeMembers},
		{in: "repositories", want: ModeRepositories},
		{in: "ALL", want: ModeAll},
		{in: "teams", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Run {
		return Run{
			Token:            "t",
			Org:              "acme",
			OutCSVFile:       "out.csv",
			Mode:             ModeMembers,
			Endpoint:         "https://api.github.com/graphql",
			Timeout:          time.Second,
			MaxResponseBytes: 1,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Run)
		wantField string
	}{
		{name: "valid", mutate: func(*Run) {}},
		{name: "empty org", mutate: func(r *Run) { r.Org = "" }, wantField: "organization"},
		{name: "empty output", mutate: func(r *Run) { r.OutCSVFile = "" }, wantField: "output file"},
		{name: "bad mode", mutate: func(r *Run) { r.Mode = "teams" }, wantField: "mode"},
		{name: "empty endpoint", mutate: func(r *Run) { r.Endpoint = "" }, wantField: "graphql endpoint"},
		{name: "zero timeout", mutate: func(r *Run) { r.Timeout = 0 }, wantField: "http timeout"},
		{name: "zero body limit", mutate: func(r *Run) { r.MaxResponseBytes = 0 }, wantField: "http max response bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(&r)
			err := r.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var cfgErr *ghoaaerrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want ConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}
