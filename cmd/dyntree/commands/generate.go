// SPDX-License-Identifier: MIT

package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/malbarbo/fera-sub000/config"
	"github.com/malbarbo/fera-sub000/workload"
)

// Shapes accepted by generate.
const (
	shapePath   = "path"
	shapeStar   = "star"
	shapeRandom = "random"
	shapeOps    = "ops"
)

// ErrUnknownShape is returned for an unsupported --shape value.
var ErrUnknownShape = errors.New("unknown shape")

func newGenerateCommand(opts *options) *cobra.Command {
	var shape, output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated script as YAML",
		Long: `Generate writes a path, star, random tree or random op script. Sizes and
the seed come from the stress section of the configuration unless given as
flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := generateScript(shape, opts.cfg.Stress)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return writeScript(cmd.OutOrStdout(), s)
			}

			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(err, "create output")
			}
			if err := writeScript(f, s); err != nil {
				_ = f.Close()
				return err
			}
			opts.log.Info("script written", zap.String("file", output), zap.Int("ops", len(s.Ops)))

			return errors.Wrap(f.Close(), "close output")
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&shape, "shape", shapeOps, "script shape: path, star, random or ops")
	flags.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	flags.Int("n", config.DefaultN, "vertex count")
	flags.Int("steps", config.DefaultSteps, "random steps for the ops shape")
	flags.Int64("seed", config.DefaultSeed, "generator seed")
	flags.Float64("cut-ratio", config.DefaultCutRatio, "probability of a cut on a connected pair")
	flags.Int("snapshot-every", config.DefaultSnapshotEvery, "snapshot interval in steps (0 disables)")
	flags.Int("clear-every", 0, "clear interval in steps (0 disables)")

	return cmd
}

func generateScript(shape string, sc config.StressConfig) (*workload.Script, error) {
	var (
		s   *workload.Script
		err error
	)
	switch shape {
	case shapePath:
		s, err = workload.Path(sc.N)
	case shapeStar:
		s, err = workload.Star(sc.N)
	case shapeRandom:
		s, err = workload.RandomTree(sc.N, workload.WithSeed(sc.Seed))
	case shapeOps:
		s, err = workload.RandomOps(sc.N, sc.Steps, generatorOptions(sc)...)
	default:
		return nil, errors.Wrapf(ErrUnknownShape, "%q", shape)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "generate %s", shape)
	}

	return s, nil
}

func generatorOptions(sc config.StressConfig) []workload.Option {
	return []workload.Option{
		workload.WithSeed(sc.Seed),
		workload.WithCutRatio(sc.CutRatio),
		workload.WithSnapshotEvery(sc.SnapshotEvery),
		workload.WithClearEvery(sc.ClearEvery),
	}
}

func writeScript(w io.Writer, s *workload.Script) error {
	return errors.Wrap(s.Write(w), "write script")
}
