package app

import (
	"context"
	"time"

	"quiz-game/internal/domain"
)

// TimedRunner races a session's question loop against a global deadline.
type TimedRunner struct {
	limit time.Duration
}

func NewTimedRunner(limit time.Duration) *TimedRunner {
	return &TimedRunner{limit: limit}
}

type outcome struct {
	timedOut bool
	err      error
}

// Run starts the question loop and the countdown side by side and returns
// the tally as it stood when the first of them finished.
//
// The countdown never touches the session. Once a signal arrives the session
// is sealed, so a loop that lost the race cannot change the result. That loop
// is not joined: its context is cancelled, but a read already blocked on the
// player's input stays parked until the process exits.
func (r *TimedRunner) Run(ctx context.Context, session *Session, prompter AnswerPrompter) (domain.Result, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Single slot: the first signal wins, later ones are dropped.
	done := make(chan outcome, 1)
	signal := func(o outcome) {
		select {
		case done <- o:
		default:
		}
	}

	go func() {
		_, _, err := session.Run(runCtx, prompter)
		signal(outcome{err: err})
	}()

	go func() {
		timer := time.NewTimer(r.limit)
		defer timer.Stop()
		select {
		case <-timer.C:
			signal(outcome{timedOut: true})
		case <-runCtx.Done():
		}
	}()

	var o outcome
	select {
	case o = <-done:
	case <-ctx.Done():
		session.Seal()
		return domain.Result{}, ctx.Err()
	}

	result := session.Seal()
	if o.err != nil {
		return domain.Result{}, o.err
	}
	if o.timedOut {
		result.Finished = false
	}
	return result, nil
}
