package main

import (
	"fmt"
	"sync"

	"github.com/dhamidi/jspan/config"
	"github.com/dhamidi/jspan/java/codebase"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

const defaultConfigPath = config.DefaultPath

// Log verbosity 0 in the configuration shows warnings and worse.
const baseVerbosity = -2

// app is the state shared by all commands: global flags and the loaded
// configuration.
type app struct {
	configPath string
	verbose    int
	cfg        *config.Config
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	var logFile *string
	if cfg.Logging.File != "" {
		logFile = &cfg.Logging.File
	}
	commonlog.Configure(baseVerbosity+cfg.Logging.Verbosity+a.verbose, logFile)
	return nil
}

// scanOptions builds codebase options from the configuration, reporting
// progress on the command's stderr when enabled.
func (a *app) scanOptions(cmd *cobra.Command, progress bool) (codebase.Options, error) {
	extractOpts, err := a.cfg.ExtractOptions()
	if err != nil {
		return codebase.Options{}, err
	}
	opts := codebase.Options{
		Includes:  a.cfg.Scan.Includes,
		Excludes:  a.cfg.Scan.Excludes,
		Gitignore: a.cfg.Scan.Gitignore,
		Workers:   a.cfg.Scan.Workers,
		Extract:   extractOpts,
	}
	if progress && a.cfg.Scan.Progress {
		opts.Progress = newProgress(cmd)
	}
	return opts, nil
}

func newProgress(cmd *cobra.Command) func(done, total int, path string) {
	var mu sync.Mutex
	var bar *progressbar.ProgressBar
	return func(done, total int, path string) {
		mu.Lock()
		defer mu.Unlock()
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("Scanning"),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Add(1)
	}
}

func reportParseErrors(cmd *cobra.Command, errs []error) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d files could not be parsed:\n", len(errs))
	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", err)
	}
}
