// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"clientgen/internal/helper"
	"clientgen/internal/loader"
	"clientgen/internal/model"
	"clientgen/internal/pipeline"
	"clientgen/internal/report"
	"clientgen/internal/validate"
)

func (c *cli) generateCommand() *cobra.Command {

	return &cobra.Command{
		Use:   "generate [patterns...]",
		Short: "Generate a client from descriptor documents",
		Long: `Generate loads descriptor documents matching the patterns (or the configured
input), builds client functions and writes the client files to the output directory.
Diagnostics are printed to stderr; with --strict any error fails the run and
nothing is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				c.cfg.Input = args
			}
			_, err := c.generate(cmd.Context(), cmd.ErrOrStderr())
			return err
		},
	}
}

func (c *cli) generate(ctx context.Context, stderr io.Writer) (res *pipeline.Result, err error) {

	if err = validate.ValidateOutDir(c.cfg.Output); err != nil {
		return
	}
	var docs []*model.Document
	if docs, err = loader.Load(c.cfg.Input); err != nil {
		return
	}
	if res, err = pipeline.Generate(ctx, c.cfg, docs); err != nil && !errors.Is(err, pipeline.ErrStrict) {
		return nil, err
	}
	if len(res.Diagnostics) > 0 {
		if reportErr := report.Diagnostics(stderr, res.Diagnostics, report.FormatText); reportErr != nil {
			slog.Warn("failed to print diagnostics", slog.String("error", reportErr.Error()))
		}
	}
	if err != nil {
		return res, fmt.Errorf("%w: nothing written to %s", err, c.cfg.Output)
	}
	if err = helper.Write(c.cfg.Output, res.Files); err != nil {
		return
	}
	slog.Info("client generated",
		slog.String("runId", res.RunID),
		slog.String("target", res.Target),
		slog.String("output", c.cfg.Output),
		slog.Int("functions", len(res.Functions)),
		slog.Int("files", len(res.Files)),
		slog.Duration("duration", res.Duration),
	)
	return
}
