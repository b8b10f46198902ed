package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arcana-labs/intentsync/api"
	"github.com/arcana-labs/intentsync/config"
	"github.com/arcana-labs/intentsync/core"
	"github.com/arcana-labs/intentsync/logger"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func InitRootCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(startCmd())
	rootCmd.AddCommand(versionCmd())
}

func startCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the intent sync engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			log := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.LogSampler)

			engine, err := core.NewEngine(cfg, log)
			if err != nil {
				return err
			}

			server := api.NewServer(log, engine.Store(), cfg.StatusPort)
			if err := server.Start(); err != nil {
				_ = engine.Close()
				return err
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// The engine gets its own context so an in-flight tick runs to
			// completion on shutdown instead of being cancelled mid-phase.
			engine.Start(context.Background())

			<-sigCtx.Done()
			log.Info().Msg("shutdown signal received")

			if err := server.Stop(); err != nil {
				log.Error().Err(err).Msg("status server shutdown error")
			}
			return engine.Stop()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (embedded defaults when empty)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print intentsyncd version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("intentsyncd %s\n", Version)
		},
	}
}
