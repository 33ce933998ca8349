// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"clientgen/internal/config"
	"clientgen/internal/telemetry"
)

const telemetryShutdownTimeout = 5 * time.Second

type cli struct {
	v        *viper.Viper
	cfgFile  string
	cfg      *config.Config
	shutdown telemetry.Shutdown
}

// flagKeys связывает флаги с ключами конфигурации.
var flagKeys = map[string]string{
	"input":            "input",
	"output":           "output",
	"target":           "target",
	"style":            "style",
	"strict":           "strict",
	"workers":          "workers",
	"string-as-string": "stringAsString",
	"client":           "client.name",
	"package":          "client.package",
	"module":           "client.module",
	"types-package":    "client.typesPackage",
	"log-level":        "log.level",
	"log-format":       "log.format",
}

func NewRootCommand() *cobra.Command {

	c := &cli{v: config.New()}
	root := &cobra.Command{
		Use:   "clientgen",
		Short: "HTTP client code generator",
		Long: `clientgen builds typed HTTP client functions from API operation descriptors.

Descriptors are JSON or YAML documents listing operations with their route,
parameters and return type. Each operation becomes a blocking and/or async
client method for the chosen target language.

Example:
  clientgen generate api/*.yaml -o client          # Go client from descriptors
  clientgen generate -t ts --style async -o web    # TypeScript client
  clientgen watch                                  # regenerate on change
  clientgen serve --addr :8080                     # generation over HTTP`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.cfgFile, "config", "c", "", "config file (default: clientgen.yaml)")
	flags.StringSliceP("input", "i", nil, "descriptor glob patterns")
	flags.StringP("output", "o", "", "output directory")
	flags.StringP("target", "t", "", "target language: go, ts")
	flags.String("style", "", "call style: sync, async, both")
	flags.Bool("strict", false, "fail when generation reports errors")
	flags.Int("workers", 0, "parallel generation workers")
	flags.Bool("string-as-string", false, "return string results as raw response text")
	flags.String("client", "", "client type name")
	flags.String("package", "", "go package name of the client")
	flags.String("module", "", "go module path, enables go.mod generation")
	flags.String("types-package", "", "go package or ts module with API types")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text, json")
	bindFlags(c.v, flags)

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(versionCommand())
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {

	for name, key := range flagKeys {
		if flag := flags.Lookup(name); flag != nil {
			_ = v.BindPFlag(key, flag)
		}
	}
}

func (c *cli) setup(cmd *cobra.Command, _ []string) (err error) {

	if c.cfg, err = config.Load(c.v, c.cfgFile); err != nil {
		return
	}
	if err = c.cfg.Validate(); err != nil {
		return
	}
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), c.cfg.Log))

	c.shutdown, err = telemetry.Setup(cmd.Context(), telemetry.Options{
		Endpoint:    c.cfg.Telemetry.Endpoint,
		Insecure:    c.cfg.Telemetry.Insecure,
		ServiceName: c.cfg.Telemetry.ServiceName,
		Version:     Version,
	})
	return
}

func (c *cli) teardown(_ *cobra.Command, _ []string) error {

	if c.shutdown == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
	defer cancel()
	if err := c.shutdown(ctx); err != nil {
		return fmt.Errorf("failed to flush telemetry: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
