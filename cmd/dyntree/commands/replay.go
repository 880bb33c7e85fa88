// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/malbarbo/fera-sub000/config"
	"github.com/malbarbo/fera-sub000/workload"
)

func newReplayCommand(opts *options) *cobra.Command {
	var compare bool

	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Replay a YAML script on one engine",
		Long: `Replay runs every op of SCRIPT on the selected engine and prints the
outcome of each link, connected and snapshot op. With --compare the trace is
also checked against the naive engine.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.OutOrStdout(), opts, args[0], compare)
		},
	}

	cmd.Flags().String("engine", config.DefaultEngine, "engine to replay on")
	cmd.Flags().BoolVar(&compare, "compare", false, "compare the trace against the naive engine")

	return cmd
}

func runReplay(w io.Writer, opts *options, path string, compare bool) error {
	s, err := readScript(path)
	if err != nil {
		return err
	}

	engine := opts.cfg.Engine
	start := time.Now()
	tr, err := workload.Run(engine, s, opts.runOptions()...)
	if err != nil {
		return errors.Wrapf(err, "replay %s", path)
	}
	opts.log.Info("script replayed",
		zap.String("script", s.Name),
		zap.String("engine", engine),
		zap.Int("ops", len(s.Ops)),
		zap.Duration("elapsed", time.Since(start)))

	if err := printTrace(w, s, tr); err != nil {
		return errors.Wrap(err, "write trace")
	}

	if compare && engine != workload.EngineNaive {
		want, err := workload.Run(workload.EngineNaive, s)
		if err != nil {
			return errors.Wrapf(err, "replay %s", path)
		}
		if err := workload.Diff(want, tr); err != nil {
			return errors.Wrapf(err, "engine %s", engine)
		}
		opts.log.Info("trace matches naive engine", zap.String("engine", engine))
	}

	return nil
}

func readScript(path string) (*workload.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open script")
	}
	defer f.Close()

	s, err := workload.LoadScript(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load script %s", path)
	}

	return s, nil
}

// printTrace writes one line per observable op, pairing the script with
// the trace it produced.
func printTrace(w io.Writer, s *workload.Script, tr *workload.Trace) error {
	var links, answers, snapshots int
	for _, op := range s.Ops {
		var err error
		switch op.Kind {
		case workload.OpLink:
			_, err = fmt.Fprintf(w, "%s %s\n", op, linkOutcome(tr.Links[links]))
			links++
		case workload.OpConnected:
			_, err = fmt.Fprintf(w, "%s %t\n", op, tr.Answers[answers])
			answers++
		case workload.OpSnapshot:
			_, err = fmt.Fprintf(w, "%s %v\n", op, tr.Snapshots[snapshots])
			snapshots++
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func linkOutcome(ok bool) string {
	if ok {
		return "linked"
	}

	return "rejected"
}
