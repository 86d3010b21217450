package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/toolgen/toolgen/internal/config"
	"github.com/toolgen/toolgen/internal/server"
)

type rootOptions struct {
	configPath string
	host       string
	port       int
	debug      bool
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "toolgen",
		Short:         "Serve tool skeleton generation over HTTP",
		Long:          "toolgen serves POST /generate_tool, turning a tool description into a Python or JavaScript skeleton.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, version)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("toolgen v%s\n", version))

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "path to a JSON config file (default $TOOLGEN_CONFIG)")
	f.StringVar(&opts.host, "host", "", "listen host (overrides config)")
	f.IntVar(&opts.port, "port", 0, "listen port (overrides config)")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions, version string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = opts.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = opts.port
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = opts.debug
	}

	if err := setupLogging(cfg); err != nil {
		return err
	}
	cfg.Version = version

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(ctx, cfg).Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

func setupLogging(cfg *config.Config) error {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if cfg.Debug {
		level = zerolog.DebugLevel
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	zerolog.SetGlobalLevel(level)
	return nil
}
