package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var envFile string

func main() {
	rootCmd := &cobra.Command{
		Use:          "portfolio-api",
		Short:        "Portfolio backend: books, blog, features, contacts and book checkout",
		SilenceUsage: true,
		// Running the binary without a subcommand starts the server.
		RunE: runServe,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to an optional .env file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	logger := zerolog.New(os.Stdout)
	if format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	}
	log.Logger = logger.With().Timestamp().Str("service", "portfolio-api").Logger()
}
