// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/MEGORD/t-methods-calculator/internal/config"
	"github.com/MEGORD/t-methods-calculator/internal/logging"
	"github.com/MEGORD/t-methods-calculator/modi"
)

// Process exit codes.
const (
	exitOK         = 0
	exitError      = 1
	exitNotOptimal = 2
)

const (
	commandName     = "tmethods"
	flagFile        = "file"
	flagMethod      = "method"
	flagMaxIter     = "max-iterations"
	flagTimeLimit   = "time-limit"
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagLogFile     = "log-file"
	flagMetricsFile = "metrics-file"
)

// rootOptions is shared by every subcommand. conf and log are ready once
// PersistentPreRunE has run.
type rootOptions struct {
	v          *viper.Viper
	configPath string

	conf *config.Config
	log  *logging.Logger

	out    io.Writer
	errOut io.Writer
}

func newRootOptions(out, errOut io.Writer) *rootOptions {
	return &rootOptions{v: viper.New(), out: out, errOut: errOut}
}

// NewCommandRoot builds the command tree around o.
func NewCommandRoot(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           commandName,
		Short:         "Solve balanced transportation problems with the method of potentials",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return o.Complete()
		},
	}
	cmd.SetOut(o.out)
	cmd.SetErr(o.errOut)

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, flagConfig, "", "config file (toml, yaml or json)")
	pf.String(flagLogLevel, "info", "log level: debug, info, warn, error")
	pf.String(flagLogFormat, "text", "log format: text or json")
	pf.String(flagLogFile, "", "write logs to this file with rotation instead of stderr")
	pf.String(flagMetricsFile, "", "write Prometheus metrics to this textfile after solving")
	o.bind("log.level", pf.Lookup(flagLogLevel))
	o.bind("log.format", pf.Lookup(flagLogFormat))
	o.bind("log.file", pf.Lookup(flagLogFile))
	o.bind("metrics.file", pf.Lookup(flagMetricsFile))

	cmd.AddCommand(NewCommandInitial(o), NewCommandOptimal(o))

	return cmd
}

// Complete loads configuration and builds the logger.
func (o *rootOptions) Complete() error {
	conf, err := config.Load(o.v, o.configPath)
	if err != nil {
		return err
	}
	o.conf = conf
	o.log = logging.New(conf.Log, o.errOut)

	return nil
}

// Close releases the log file opened by Complete.
func (o *rootOptions) Close() error {
	if o.log == nil {
		return nil
	}

	return o.log.Close()
}

// bind ties a flag to a config key. BindPFlag fails only for a nil flag.
func (o *rootOptions) bind(key string, f *pflag.Flag) {
	if err := o.v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}

// run executes the command line and maps errors to exit codes.
func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	o := newRootOptions(out, errOut)
	defer o.Close()

	cmd := NewCommandRoot(o)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(errOut, "%s: %v\n", commandName, err)

	return exitCode(err)
}

// exitCode returns exitNotOptimal for solver budget and stall errors.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, modi.ErrIterationLimit),
		errors.Is(err, modi.ErrTimeLimit),
		errors.Is(err, modi.ErrStalled):
		return exitNotOptimal
	default:
		return exitError
	}
}
