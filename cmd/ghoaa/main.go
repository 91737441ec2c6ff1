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

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/noritada/ghoaa/internal/config"
)

var version = "dev"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	cacheFilePrefix string
	configPath      string
	endpoint        string
	debug           bool
	quiet           bool
}

func newRootCommand() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ghoaa",
		Short: "Export GitHub organization members and repositories to CSV",
		Long: `ghoaa exports the members of a GitHub organization, joined with their
SAML single sign-on identities, and the organization's repositories with
their language breakdown, as CSV files for audit and archival.

The GitHub access token is read from the GITHUB_ACCESS_TOKEN environment
variable, which may also be set in a .env file in the working directory.
OUT_FILE may contain strftime directives such as %Y%m%d.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cacheFilePrefix, "cache-file-prefix", "c", "", "Save every raw response body as <prefix>.NN")
	flags.StringVar(&opts.configPath, "config", "", "Configuration file (default: XDG config dir ghoaa/config.yaml, then .ghoaa.yaml)")
	flags.StringVar(&opts.endpoint, "endpoint", "", "GitHub GraphQL API endpoint")
	flags.BoolVar(&opts.debug, "debug", false, "Log every request and print stack traces on error")
	flags.BoolVar(&opts.quiet, "quiet", false, "Suppress progress output and the run summary")

	rootCmd.AddCommand(
		newExportCommand(opts, config.ModeMembers),
		newExportCommand(opts, config.ModeRepositories),
		newExportCommand(opts, config.ModeAll),
	)

	return rootCmd, opts
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd, opts := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err, opts.debug)
		stop()
		os.Exit(mapErrorToExitCode(err))
	}
}
