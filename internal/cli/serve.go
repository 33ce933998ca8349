// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"clientgen/internal/config"
	"clientgen/internal/service"
)

func (c *cli) serveCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve client generation over HTTP",
		Long: `Serve starts an HTTP service: POST /generate accepts a descriptor document
and returns the generated files with diagnostics, GET /healthz reports liveness.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	_ = c.v.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func (c *cli) serve(ctx context.Context, stderr io.Writer) error {

	srv := service.New(c.cfg, newAccessLogger(stderr, c.cfg.Log))
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Listen(c.cfg.Serve.Addr)
	})
	group.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown()
	})
	return group.Wait()
}

func newAccessLogger(w io.Writer, cfg config.LogConfig) zerolog.Logger {

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("component", "service").Logger()
}
