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
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/noritada/ghoaa/internal/cache"
	"github.com/noritada/ghoaa/internal/config"
	"github.com/noritada/ghoaa/internal/export"
	"github.com/noritada/ghoaa/internal/github"
	"github.com/noritada/ghoaa/internal/metadata"
	"github.com/noritada/ghoaa/internal/progress"
)

var exportDescriptions = map[config.Mode]string{
	config.ModeMembers:      "Export organization members with their SAML NameID",
	config.ModeRepositories: "Export organization repositories with their languages",
	config.ModeAll:          "Export both members and repositories to two files",
}

func newExportCommand(opts *rootOptions, mode config.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   string(mode) + " ORGANIZATION OUT_FILE",
		Short: exportDescriptions[mode],
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), opts, mode, args[0], args[1], cmd.ErrOrStderr())
		},
	}
}

// runExport loads the configuration and runs one export.
// Progress, logs and the run summary go to stderr.
func runExport(ctx context.Context, opts *rootOptions, mode config.Mode, org, outFile string, stderr io.Writer) error {
	tracker := metadata.New()
	setupLogging(stderr, opts, tracker.RunID())

	run, err := config.Load(config.Flags{
		ConfigPath:      opts.configPath,
		Mode:            mode,
		Org:             org,
		OutCSVFile:      outFile,
		CacheFilePrefix: opts.cacheFilePrefix,
		Endpoint:        opts.endpoint,
	})
	if err != nil {
		return err
	}

	var reporter progress.Reporter = progress.Nop{}
	var terminal *progress.Terminal
	if !opts.quiet {
		terminal = newTerminal(stderr)
		reporter = terminal
	}

	logrus.WithFields(logrus.Fields{
		"organization": run.Org,
		"mode":         run.Mode,
		"endpoint":     run.Endpoint,
		"cache_prefix": run.CacheFilePrefix,
	}).Debug("starting export")

	deps := export.Deps{
		NewClient: func(store *cache.Store) github.Client {
			return github.NewGraphQLClient(run.Token, run.Endpoint,
				github.WithTimeout(run.Timeout),
				github.WithMaxResponseBytes(run.MaxResponseBytes),
				github.WithUserAgent("ghoaa/"+version),
				github.WithCache(store),
				github.WithProgress(reporter),
				github.WithLogger(logrus.StandardLogger()),
			)
		},
		Log:     logrus.StandardLogger(),
		Tracker: tracker,
	}

	_, err = export.Run(ctx, deps, run)
	if terminal != nil {
		terminal.Finish()
	}
	if err != nil {
		return err
	}

	if !opts.quiet {
		tracker.Render(stderr)
	}
	return nil
}

// newTerminal renders progress on stderr, with colors and line rewriting
// only when it is a terminal.
func newTerminal(w io.Writer) *progress.Terminal {
	if f, ok := w.(*os.File); ok {
		return progress.NewTerminal(f)
	}
	return progress.NewWriterTerminal(w)
}

// setupLogging configures the standard logger for one run. Every entry
// carries the run ID.
func setupLogging(w io.Writer, opts *rootOptions, runID string) {
	logger := logrus.StandardLogger()
	logger.SetOutput(w)
	logger.ReplaceHooks(make(logrus.LevelHooks))
	logger.AddHook(fieldHook{fields: logrus.Fields{"run_id": runID}})

	switch {
	case opts.debug:
		logger.SetLevel(logrus.DebugLevel)
	case opts.quiet:
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}
}

// fieldHook adds fixed fields to every entry that does not already set them.
type fieldHook struct {
	fields logrus.Fields
}

func (h fieldHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h fieldHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if _, ok := entry.Data[k]; !ok {
			entry.Data[k] = v
		}
	}
	return nil
}

// printError prints err and, when the failure is recognized, a hint on how
// to fix it. With debug set the stack trace is printed as well.
func printError(w io.Writer, err error, debug bool) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if hint := errorHint(err); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
	if debug {
		fmt.Fprintf(w, "\n%+v\n", err)
	}
}
