// Package main provides the CLI entrypoint for the pass rate calculator.
// It wires subcommands (calc, session, serve), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"passrate/internal/config"
	"passrate/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "passrate",
		Short: "Probability that more than half of a group passes",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		calcCommand(cfg),
		sessionCommand(cfg),
		serveCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
