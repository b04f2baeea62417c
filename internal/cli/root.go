package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"quiz-game/internal/config"
)

// version is stamped at build time with -ldflags "-X quiz-game/internal/cli.version=...".
var version = "dev"

// Execute runs the CLI.
func Execute() error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	var (
		configPath string
		opts       playOptions
	)
	cmd := &cobra.Command{
		Use:          "quiz",
		Short:        "A simple timed quiz game",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuiz(cmd, configPath, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.Flags().StringVarP(&opts.csvPath, "csv-path", "c", "input/test-1.csv", "CSV file with question,answer rows")
	cmd.Flags().StringVar(&opts.bankID, "bank", "", "load this question bank from Postgres instead of the CSV file")
	cmd.Flags().BoolVar(&opts.untimed, "untimed", false, "play without a time limit")
	cmd.Flags().UintVar(&opts.limit, "limit", 0, "time limit in seconds, overriding the question bank")
	cmd.Flags().StringVar(&opts.color, "color", "", "color output: auto or never")
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)

	cmd.AddCommand(NewMigrateCmd(&configPath))
	return cmd
}

// normalizeFlagName keeps the historical --cvs-path spelling working.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "cvs-path" {
		name = "csv-path"
	}
	return pflag.NormalizedName(name)
}

// loadConfig reads the YAML config. The default path may be absent; an
// explicitly requested one may not.
func loadConfig(cmd *cobra.Command, path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		explicit := cmd.Flags().Changed("config") || os.Getenv("CONFIG_PATH") != ""
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = config.Config{}
	}
	config.ApplyEnv(&cfg)
	return cfg, nil
}
