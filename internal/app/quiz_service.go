package app

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"quiz-game/internal/domain"
)

// BankRepository abstracts where question banks come from (file, cache, database).
type BankRepository interface {
	GetBank(ctx context.Context, source string) (domain.Bank, error)
}

// AnswerPrompter reads one non-empty answer from the player.
type AnswerPrompter interface {
	ReadAnswer(ctx context.Context) (string, error)
}

// ResultReporter renders the final tally.
type ResultReporter interface {
	Report(result domain.Result)
}

// PlayOptions configures a single play-through.
type PlayOptions struct {
	// Timed races the questions against the time limit.
	Timed bool
	// TimeLimit overrides the bank limit when positive.
	TimeLimit time.Duration
	Prompter  AnswerPrompter
	Reporter  ResultReporter
}

// QuizService contains the quiz use cases.
type QuizService struct {
	banks BankRepository
	out   io.Writer

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewQuizService(banks BankRepository, out io.Writer) *QuizService {
	return NewQuizServiceWithRand(banks, out, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewQuizServiceWithRand is test-only for deterministic shuffles.
func NewQuizServiceWithRand(banks BankRepository, out io.Writer, rnd *rand.Rand) *QuizService {
	return &QuizService{banks: banks, out: out, rnd: rnd}
}

// Prepare loads a bank and builds a session over a shuffled copy of its questions.
func (s *QuizService) Prepare(ctx context.Context, source string) (*Session, domain.Bank, error) {
	bank, err := s.banks.GetBank(ctx, source)
	if err != nil {
		return nil, domain.Bank{}, err
	}
	questions := make([]domain.Question, len(bank.Questions))
	copy(questions, bank.Questions)
	s.shuffle(questions)
	return NewSession(questions, s.out), bank, nil
}

// Play runs one quiz from source and reports the result exactly once.
// Nothing is reported when loading fails or the player's input breaks.
func (s *QuizService) Play(ctx context.Context, source string, opts PlayOptions) (domain.Result, error) {
	session, bank, err := s.Prepare(ctx, source)
	if err != nil {
		return domain.Result{}, err
	}

	var result domain.Result
	if opts.Timed {
		limit := bank.TimeLimit()
		if opts.TimeLimit > 0 {
			limit = opts.TimeLimit
		}
		result, err = NewTimedRunner(limit).Run(ctx, session, opts.Prompter)
	} else {
		_, _, err = session.Run(ctx, opts.Prompter)
		result = session.Seal()
	}
	if err != nil {
		return domain.Result{}, err
	}

	opts.Reporter.Report(result)
	return result, nil
}

// shuffle applies a uniform Fisher-Yates permutation.
func (s *QuizService) shuffle(questions []domain.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
