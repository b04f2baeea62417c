package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"quiz-game/internal/domain"
)

// BankLoader reads question banks from comma separated files on disk.
// The source passed to LoadBank is the file path.
type BankLoader struct{}

func NewBankLoader() *BankLoader {
	return &BankLoader{}
}

func (l *BankLoader) LoadBank(_ context.Context, path string) (domain.Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Bank{}, fmt.Errorf("%w: %w", domain.ErrBankUnreadable, err)
	}
	defer f.Close()

	bank, err := ParseBank(f)
	if err != nil {
		return domain.Bank{}, fmt.Errorf("load %s: %w", path, err)
	}
	return bank, nil
}

// ParseBank decodes rows of a headerless, ragged CSV stream.
//   - one field: time limit in seconds, the last one wins
//   - two or more fields: prompt, answer; extra fields are ignored
//
// Questions are returned in file order.
func ParseBank(r io.Reader) (domain.Bank, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	bank := domain.Bank{
		Questions:        []domain.Question{},
		TimeLimitSeconds: domain.DefaultTimeLimitSeconds,
	}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return domain.Bank{}, fmt.Errorf("%w: %w", domain.ErrMalformedRow, err)
			}
			return domain.Bank{}, fmt.Errorf("%w: %w", domain.ErrBankUnreadable, err)
		}
		if len(row) == 0 {
			return domain.Bank{}, domain.ErrMalformedRow
		}
		line, _ := reader.FieldPos(0)

		switch len(row) {
		case 1:
			limit, err := strconv.ParseUint(strings.TrimSpace(row[0]), 10, 0)
			if err != nil || limit > uint64(domain.MaxTimeLimitSeconds) {
				return domain.Bank{}, fmt.Errorf("line %d: %w %q", line, domain.ErrInvalidTimeLimit, row[0])
			}
			bank.TimeLimitSeconds = uint(limit)
		default:
			bank.Questions = append(bank.Questions, domain.Question{
				Prompt: row[0],
				Answer: row[1],
			})
		}
	}
	return bank, nil
}
