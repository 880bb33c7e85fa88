// SPDX-License-Identifier: MIT

package commands

import (
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/malbarbo/fera-sub000/config"
	"github.com/malbarbo/fera-sub000/workload"
)

// ErrStressFailed is returned when at least one engine disagrees with the
// naive engine or fails outright.
var ErrStressFailed = errors.New("stress: engines disagree with the naive reference")

// stressResult is one row of the stress report.
type stressResult struct {
	engine  string
	elapsed time.Duration
	err     error
}

func newStressCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run a random workload on every engine and compare",
		Long: `Stress generates a random op script, replays it on the naive engine and on
every configured engine, and reports time and agreement per engine. It exits
with an error when any engine disagrees.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStress(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringSlice("engines", nil, "engines to compare (default from configuration)")
	flags.Int("n", config.DefaultN, "vertex count")
	flags.Int("steps", config.DefaultSteps, "random steps")
	flags.Int64("seed", config.DefaultSeed, "generator seed")
	flags.Float64("cut-ratio", config.DefaultCutRatio, "probability of a cut on a connected pair")
	flags.Int("snapshot-every", config.DefaultSnapshotEvery, "snapshot interval in steps (0 disables)")
	flags.Int("clear-every", 0, "clear interval in steps (0 disables)")

	return cmd
}

func runStress(w io.Writer, opts *options) error {
	sc := opts.cfg.Stress
	s, err := workload.RandomOps(sc.N, sc.Steps, generatorOptions(sc)...)
	if err != nil {
		return errors.Wrap(err, "generate workload")
	}
	opts.log.Info("workload generated",
		zap.String("script", s.Name),
		zap.Int("n", s.N),
		zap.Int("ops", len(s.Ops)),
		zap.Int64("seed", sc.Seed))

	start := time.Now()
	want, err := workload.Run(workload.EngineNaive, s)
	if err != nil {
		return errors.Wrap(err, "naive reference")
	}
	results := []stressResult{{engine: workload.EngineNaive, elapsed: time.Since(start)}}

	failed := 0
	for _, engine := range opts.cfg.Engines {
		if engine == workload.EngineNaive {
			continue
		}
		r := stressResult{engine: engine}
		start := time.Now()
		got, err := workload.Run(engine, s, opts.runOptions()...)
		r.elapsed = time.Since(start)
		if err == nil {
			err = workload.Diff(want, got)
		}
		if err != nil {
			r.err = err
			failed++
			opts.log.Error("engine disagrees", zap.String("engine", engine), zap.Error(err))
		} else {
			opts.log.Debug("engine agrees", zap.String("engine", engine), zap.Duration("elapsed", r.elapsed))
		}
		results = append(results, r)
	}

	renderStress(w, s, results)

	if failed > 0 {
		return errors.Wrapf(ErrStressFailed, "%d of %d engines", failed, len(results)-1)
	}

	return nil
}

func renderStress(w io.Writer, s *workload.Script, results []stressResult) {
	counts := s.Counts()

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("%s: %s vertices, %s ops (%s links, %s cuts, %s queries)",
		s.Name,
		humanize.Comma(int64(s.N)),
		humanize.Comma(int64(len(s.Ops))),
		humanize.Comma(int64(counts[workload.OpLink])),
		humanize.Comma(int64(counts[workload.OpCut])),
		humanize.Comma(int64(counts[workload.OpConnected])))
	tbl.AppendHeader(table.Row{"Engine", "Elapsed", "Ops/s", "Result"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Elapsed", Align: text.AlignRight},
		{Name: "Ops/s", Align: text.AlignRight},
	})

	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed, color.Bold).SprintFunc()
	for _, r := range results {
		result := ok("ok")
		if r.err != nil {
			result = bad("MISMATCH: " + r.err.Error())
		}
		tbl.AppendRow(table.Row{r.engine, r.elapsed.Round(time.Microsecond), opsPerSecond(len(s.Ops), r.elapsed), result})
	}
	tbl.Render()
}

func opsPerSecond(ops int, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "-"
	}

	return humanize.Comma(int64(float64(ops) / elapsed.Seconds()))
}
