// SPDX-License-Identifier: MIT

// Package commands implements the dyntree subcommands.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/malbarbo/fera-sub000/config"
	"github.com/malbarbo/fera-sub000/workload"
)

// flagKeys maps command-line flags onto configuration keys. A flag only
// overrides the configuration when it is set explicitly.
var flagKeys = map[string]string{
	"log-level":      "logging.level",
	"log-format":     "logging.format",
	"checks":         "checks",
	"engine":         "engine",
	"engines":        "engines",
	"n":              "stress.n",
	"steps":          "stress.steps",
	"seed":           "stress.seed",
	"cut-ratio":      "stress.cut_ratio",
	"snapshot-every": "stress.snapshot_every",
	"clear-every":    "stress.clear_every",
}

// options is shared by every subcommand and filled before it runs.
type options struct {
	configPath string
	cfg        *config.Config
	log        *zap.Logger
}

// NewRootCommand builds the dyntree command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "dyntree",
		Short: "Replay and cross-check dynamic forest workloads",
		Long: `dyntree drives the link-cut and Euler-tour forests through scripted or
random workloads and compares them against a naive reference.

Commands:
  replay    Replay a YAML script on one engine
  stress    Run a random workload on every engine and compare
  generate  Write a generated script as YAML`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default ./dyntree.yaml)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	flags.String("log-format", config.DefaultLogFormat, "log format: console or json")
	flags.Bool("checks", false, "verify engine consistency after every mutation")

	root.AddCommand(newReplayCommand(opts))
	root.AddCommand(newStressCommand(opts))
	root.AddCommand(newGenerateCommand(opts))
	root.AddCommand(newVersionCommand())

	return root
}

func (o *options) load(cmd *cobra.Command) error {
	v, err := config.NewViper(o.configPath)
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := config.Decode(v)
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}
	log, err := newLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	o.cfg, o.log = cfg, log
	o.log.Debug("configuration loaded",
		zap.String("file", v.ConfigFileUsed()),
		zap.String("engine", cfg.Engine),
		zap.Strings("engines", cfg.Engines),
		zap.Bool("checks", cfg.Checks))

	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag --%s", name)
		}
	}

	return nil
}

func (o *options) runOptions() []workload.RunOption {
	opts := []workload.RunOption{workload.WithEngineSeed(uint64(o.cfg.Stress.Seed))}
	if o.cfg.Checks {
		opts = append(opts, workload.WithConsistencyChecks())
	}

	return opts
}
