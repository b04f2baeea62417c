package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"quiz-game/internal/app"
	"quiz-game/internal/config"
	"quiz-game/internal/console"
	"quiz-game/internal/domain"
	"quiz-game/internal/infra/csvfile"
	"quiz-game/internal/infra/memory"
	pgloader "quiz-game/internal/infra/postgres"
	redisbank "quiz-game/internal/infra/redis"
)

type playOptions struct {
	csvPath string
	bankID  string
	untimed bool
	limit   uint
	color   string
}

func runQuiz(cmd *cobra.Command, configPath string, opts playOptions) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd, configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colorMode := opts.color
	if colorMode == "" {
		colorMode = cfg.Output.Color
	}
	noColor, err := console.NoColor(colorMode, out)
	if err != nil {
		return err
	}

	source := opts.csvPath
	if opts.bankID != "" {
		source = opts.bankID
	}
	banks, closeBanks, err := newBankRepository(ctx, cfg, opts.bankID != "")
	if err != nil {
		return err
	}
	defer closeBanks()

	limit := config.TTLDuration(cfg.Quiz.TimeLimit, 0)
	if opts.limit > domain.MaxTimeLimitSeconds {
		return fmt.Errorf("--limit: %w: %d exceeds %d seconds", domain.ErrInvalidTimeLimit, opts.limit, domain.MaxTimeLimitSeconds)
	}
	if opts.limit > 0 {
		limit = domain.SecondsToDuration(opts.limit)
	}

	service := app.NewQuizService(banks, out)
	_, err = service.Play(ctx, source, app.PlayOptions{
		Timed:     !opts.untimed && !cfg.Quiz.Untimed,
		TimeLimit: limit,
		Prompter:  console.NewPrompter(cmd.InOrStdin(), out),
		Reporter:  console.NewReporter(out, noColor),
	})
	return err
}

// newBankRepository picks where question banks come from. CSV files are read
// fresh on every run; Postgres banks go through a cache, Redis when configured.
func newBankRepository(ctx context.Context, cfg config.Config, fromDatabase bool) (app.BankRepository, func(), error) {
	if !fromDatabase {
		return memory.NewBankRepository(csvfile.NewBankLoader(), 0), func() {}, nil
	}
	if cfg.Postgres.URL == "" {
		return nil, nil, fmt.Errorf("postgres url not configured")
	}

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return nil, nil, err
	}
	loader := pgloader.NewBankLoader(pool)
	ttl := config.TTLDuration(cfg.Cache.TTL, 10*time.Minute)

	if cfg.Redis.Addr == "" {
		return memory.NewBankRepository(loader, ttl), pool.Close, nil
	}

	log.Printf("caching question banks in redis at %s", cfg.Redis.Addr)
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	closeAll := func() {
		_ = client.Close()
		pool.Close()
	}
	return redisbank.NewBankRepository(client, loader, ttl), closeAll, nil
}
