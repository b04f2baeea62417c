package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"quiz-game/internal/domain"
)

// Session is one play-through of a shuffled question list.
// The question loop is the only writer of the tally; anyone else reads it
// through Snapshot or Seal.
type Session struct {
	questions []domain.Question
	out       io.Writer

	mu       sync.RWMutex
	correct  int
	finished bool
	sealed   bool
}

// NewSession takes ownership of questions; their order is fixed from here on.
func NewSession(questions []domain.Question, out io.Writer) *Session {
	return &Session{
		questions: questions,
		out:       out,
	}
}

// Run asks every question in order and returns the tally. It only returns an
// error when the prompter fails, and stops quietly once the session is sealed.
func (s *Session) Run(ctx context.Context, prompter AnswerPrompter) (int, int, error) {
	for i, question := range s.questions {
		if !s.announce(i+1, question) {
			break
		}
		answer, err := prompter.ReadAnswer(ctx)
		if err != nil {
			return s.tally(), len(s.questions), err
		}
		if !s.record(question.Check(answer)) {
			break
		}
	}
	s.finish()
	return s.tally(), len(s.questions), nil
}

// Snapshot returns the current tally.
func (s *Session) Snapshot() domain.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resultLocked()
}

// Seal freezes the tally. Answers recorded by the loop after this point are
// discarded and nothing more is written to the output.
func (s *Session) Seal() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sealed = true
	return s.resultLocked()
}

// Len is the number of questions in the session.
func (s *Session) Len() int {
	return len(s.questions)
}

func (s *Session) announce(num int, question domain.Question) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed {
		return false
	}
	fmt.Fprintf(s.out, "\nQuestion #%d:\n%s\n", num, question.Prompt)
	return true
}

func (s *Session) record(correct bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed {
		return false
	}
	if correct {
		s.correct++
		fmt.Fprintln(s.out, "🎉 ¡Correct! 🎉")
	} else {
		fmt.Fprintln(s.out, "❌ Incorrect ❌")
	}
	return true
}

func (s *Session) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.sealed {
		s.finished = true
	}
}

func (s *Session) tally() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.correct
}

func (s *Session) resultLocked() domain.Result {
	return domain.Result{
		Correct:  s.correct,
		Total:    len(s.questions),
		Finished: s.finished,
	}
}
