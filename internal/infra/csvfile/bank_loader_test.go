package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"quiz-game/internal/domain"
)

func TestParseBankCountsQuestionRows(t *testing.T) {
	input := strings.Join([]string{
		"5+5,10",
		"What is the capital of France?,Paris,extra,fields",
		"60",
		"1+1,2",
		"45",
	}, "\n")

	bank, err := ParseBank(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(bank.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(bank.Questions))
	}
	if bank.TimeLimitSeconds != 45 {
		t.Fatalf("expected last time-limit row to win, got %d", bank.TimeLimitSeconds)
	}
	want := domain.Question{Prompt: "What is the capital of France?", Answer: "Paris"}
	if bank.Questions[1] != want {
		t.Fatalf("expected %+v, got %+v", want, bank.Questions[1])
	}
}

func TestParseBankDefaultsTimeLimit(t *testing.T) {
	bank, err := ParseBank(strings.NewReader("1+1,2\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if bank.TimeLimitSeconds != domain.DefaultTimeLimitSeconds {
		t.Fatalf("expected default limit, got %d", bank.TimeLimitSeconds)
	}
}

func TestParseBankSingleFieldRowSetsLimitOnly(t *testing.T) {
	bank, err := ParseBank(strings.NewReader("45\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if bank.TimeLimitSeconds != 45 || len(bank.Questions) != 0 {
		t.Fatalf("expected 45s and no questions, got %d and %d", bank.TimeLimitSeconds, len(bank.Questions))
	}
}

func TestParseBankRejectsBadTimeLimit(t *testing.T) {
	for _, input := range []string{"soon\n", "-5\n", "1+1,2\n3.5\n"} {
		_, err := ParseBank(strings.NewReader(input))
		if !errors.Is(err, domain.ErrInvalidTimeLimit) {
			t.Fatalf("input %q: expected ErrInvalidTimeLimit, got %v", input, err)
		}
	}
}

func TestParseBankTimeLimitBoundary(t *testing.T) {
	longest := strconv.FormatUint(uint64(domain.MaxTimeLimitSeconds), 10)
	bank, err := ParseBank(strings.NewReader("2+2,4\n" + longest + "\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if bank.TimeLimit() <= 0 {
		t.Fatalf("expected a positive limit, got %s", bank.TimeLimit())
	}

	over := strconv.FormatUint(uint64(domain.MaxTimeLimitSeconds)+1, 10)
	if _, err := ParseBank(strings.NewReader("2+2,4\n" + over + "\n")); !errors.Is(err, domain.ErrInvalidTimeLimit) {
		t.Fatalf("expected ErrInvalidTimeLimit for %s, got %v", over, err)
	}
	if _, err := ParseBank(strings.NewReader("2+2,4\n18446744073\n")); !errors.Is(err, domain.ErrInvalidTimeLimit) {
		t.Fatalf("expected ErrInvalidTimeLimit, got %v", err)
	}
}

func TestParseBankRejectsMalformedCSV(t *testing.T) {
	_, err := ParseBank(strings.NewReader("\"unterminated,answer\n"))
	if !errors.Is(err, domain.ErrMalformedRow) {
		t.Fatalf("expected ErrMalformedRow, got %v", err)
	}
}

func TestParseBankEmptyInput(t *testing.T) {
	bank, err := ParseBank(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(bank.Questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(bank.Questions))
	}
}

func TestLoadBankFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.csv")
	if err := os.WriteFile(path, []byte("2+2,4\n10\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	bank, err := NewBankLoader().LoadBank(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(bank.Questions) != 1 || bank.TimeLimitSeconds != 10 {
		t.Fatalf("unexpected bank %+v", bank)
	}
}

func TestLoadBankMissingFile(t *testing.T) {
	_, err := NewBankLoader().LoadBank(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, domain.ErrBankUnreadable) {
		t.Fatalf("expected ErrBankUnreadable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}
