package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"quiz-game/internal/domain"
)

// BankLoader loads question banks stored as JSONB rows in Postgres.
type BankLoader struct {
	pool *pgxpool.Pool
}

func NewBankLoader(pool *pgxpool.Pool) *BankLoader {
	return &BankLoader{pool: pool}
}

func (l *BankLoader) LoadBank(ctx context.Context, id string) (domain.Bank, error) {
	var (
		limit *int32
		raw   []byte
	)
	err := l.pool.QueryRow(ctx, `SELECT time_limit_seconds, questions FROM question_banks WHERE id=$1`, id).Scan(&limit, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Bank{}, fmt.Errorf("%w: %s", domain.ErrBankNotFound, id)
	}
	if err != nil {
		return domain.Bank{}, fmt.Errorf("%w: load bank %s: %w", domain.ErrBankUnreadable, id, err)
	}
	return decodeBank(limit, raw)
}

func decodeBank(limit *int32, raw []byte) (domain.Bank, error) {
	bank := domain.Bank{TimeLimitSeconds: domain.DefaultTimeLimitSeconds}
	if limit != nil {
		if *limit < 0 {
			return domain.Bank{}, fmt.Errorf("%w: %d", domain.ErrInvalidTimeLimit, *limit)
		}
		bank.TimeLimitSeconds = uint(*limit)
	}
	if err := json.Unmarshal(raw, &bank.Questions); err != nil {
		return domain.Bank{}, fmt.Errorf("%w: unmarshal questions: %w", domain.ErrMalformedRow, err)
	}
	if bank.Questions == nil {
		bank.Questions = []domain.Question{}
	}
	return bank, nil
}
