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

package integration

import (
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/noritada/ghoaa/test/testutil"
)

// TestConfigPrecedence checks which GraphQL endpoint a run talks to when it is
// configured in more than one place: flag, environment, .env, config file.
func TestConfigPrecedence(t *testing.T) {
	skipUnlessIntegration(t)

	newServer := func() *testutil.GraphQLServer {
		s := testutil.NewGraphQLServer(t)
		s.AddRepositoriesPages(testutil.RepositoriesResponse(testutil.Connection{}))
		return s
	}
	flagServer, envServer, dotEnvServer, fileServer := newServer(), newServer(), newServer(), newServer()

	tests := []struct {
		name       string
		configFile bool
		dotEnv     bool
		env        bool
		flag       bool
		want       *testutil.GraphQLServer
	}{
		{name: "config file only", configFile: true, want: fileServer},
		{name: ".env overrides config file", configFile: true, dotEnv: true, want: dotEnvServer},
		{name: "environment overrides .env", configFile: true, dotEnv: true, env: true, want: envServer},
		{name: "flag overrides everything", configFile: true, dotEnv: true, env: true, flag: true, want: flagServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := []string{}

			if tt.configFile {
				data, err := yaml.Marshal(map[string]interface{}{
					"github": map[string]interface{}{"graphql_endpoint": fileServer.Endpoint()},
				})
				if err != nil {
					t.Fatal(err)
				}
				args = append(args, "--config", testutil.WriteFile(t, dir, "config.yaml", string(data)))
			}
			if tt.dotEnv {
				testutil.WriteFile(t, dir, ".env", "GHOAA_GRAPHQL_ENDPOINT="+dotEnvServer.Endpoint()+"\n")
			}
			env := isolatedEnv(dir, nil)
			if tt.env {
				env["GHOAA_GRAPHQL_ENDPOINT"] = envServer.Endpoint()
			} else {
				delete(env, "GHOAA_GRAPHQL_ENDPOINT")
			}
			if tt.flag {
				args = append(args, "--endpoint", flagServer.Endpoint())
			}
			args = append(args, "--quiet", "repositories", "acme", "repos.csv")

			before := len(tt.want.Requests())
			result := testutil.RunCLIInDir(t, dir, args, env)
			testutil.AssertCLISuccess(t, result)

			if got := len(tt.want.Requests()) - before; got != 1 {
				t.Errorf("Expected 1 request to the winning endpoint, got %d", got)
			}
			testutil.AssertFileExists(t, filepath.Join(dir, "repos.csv"))
		})
	}
}
