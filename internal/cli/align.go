// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swalign/fasta"
	"github.com/katalvlaran/swalign/internal/config"
	"github.com/katalvlaran/swalign/internal/logger"
	"github.com/katalvlaran/swalign/render"
	"github.com/katalvlaran/swalign/smithwaterman"
)

// job is everything one run needs after configuration has been resolved.
type job struct {
	cfg     *config.Config
	align   smithwaterman.Options
	render  render.Options
	query   fasta.Record
	subject fasta.Record
	a, b    []rune
	matrix  bool
	ignored int
}

func runAlign(cmd *cobra.Command, f *flags, path string) error {
	logger.SetVerbose(f.verbose)

	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	alignOpts, err := cfg.AlignOptions()
	if err != nil {
		return err
	}

	records, err := fasta.ReadFile(path)
	if err != nil {
		return err
	}
	query, subject, extra, err := fasta.FirstPair(records)
	if err != nil {
		return err
	}
	if extra > 0 {
		logger.Warn("File contains more than two sequences. Aligning the first two only.", "ignored", extra)
	}

	j := &job{
		cfg:     cfg,
		align:   alignOpts,
		render:  cfg.RenderOptions(),
		query:   query,
		subject: subject,
		a:       []rune(string(query.Seq)),
		b:       []rune(string(subject.Seq)),
		matrix:  f.matrix,
		ignored: extra,
	}
	if logger.IsVerbose() {
		logger.Debug("aligning",
			"query", query.ID, "query_len", len(j.a),
			"subject", subject.ID, "subject_len", len(j.b),
			"policy", alignOpts.Policy, "max_alignments", alignOpts.MaxAlignments)
	}

	return j.run(cmd)
}

// resolveConfig loads .env, the config file and the environment, then
// applies the flags the user set explicitly.
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}
	cfg, used, err := config.LoadDefault(f.configPath)
	if err != nil {
		return nil, err
	}
	if used != "" {
		logger.Debug("loaded config", "path", used)
	}

	fl := cmd.Flags()
	if fl.Changed("policy") {
		cfg.Traceback.Policy = f.policy
	}
	if fl.Changed("max-alignments") {
		cfg.Traceback.MaxAlignments = f.maxAlignments
	}
	if fl.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fl.Changed("filler") {
		cfg.Output.Filler = f.filler
	}
	if fl.Changed("gap") {
		cfg.Output.Gap = f.gap
	}
	if fl.Changed("color") {
		cfg.Output.Color = f.color
	}
	if fl.Changed("midline") {
		cfg.Output.Midline = f.midline
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (j *job) run(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	res, err := smithwaterman.Align(j.a, j.b, smithwaterman.WithOptions(j.align))
	if err != nil {
		return err
	}
	if j.matrix {
		if err := render.Table(out, j.a, j.b, res.Matrix); err != nil {
			return err
		}
		if logger.IsVerbose() {
			// raw scores, no arrows
			if _, err := fmt.Fprint(cmd.ErrOrStderr(), res.Matrix.String()); err != nil {
				return err
			}
		}
	}
	if res.Truncated {
		logger.Warn("alignment limit reached; further optimal alignments were not reported",
			"max_alignments", j.align.MaxAlignments)
	}
	logger.Info("aligned", "score", res.Score, "alignments", len(res.Alignments))

	switch j.cfg.Output.Format {
	case config.FormatJSON:
		return writeJSON(out, j.report(res))
	case config.FormatYAML:
		return writeYAML(out, j.report(res))
	default:
		return writeText(out, j, res)
	}
}
