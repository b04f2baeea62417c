package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"quiz-game/internal/domain"
)

// Prompter reads answers line by line from the player.
//
// Lines are read by a single background goroutine so a caller can give up
// waiting through its context. A read already blocked on the input is left
// parked; it is reclaimed when the process exits.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan line
}

type line struct {
	text string
	err  error
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    in,
		out:   out,
		lines: make(chan line),
	}
}

// ReadAnswer returns the next non-blank line, trimmed. Blank lines are
// re-prompted. A closed or failing input yields domain.ErrInputClosed.
func (p *Prompter) ReadAnswer(ctx context.Context) (string, error) {
	p.once.Do(func() { go p.scan() })
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case l, ok := <-p.lines:
			if !ok {
				return "", fmt.Errorf("%w: %w", domain.ErrInputClosed, io.EOF)
			}
			if l.err != nil {
				return "", fmt.Errorf("%w: %w", domain.ErrInputClosed, l.err)
			}
			answer := strings.TrimSpace(l.text)
			if answer == "" {
				fmt.Fprintln(p.out, "Please enter an answer")
				continue
			}
			return answer, nil
		}
	}
}

func (p *Prompter) scan() {
	defer close(p.lines)
	scanner := bufio.NewScanner(p.in)
	for scanner.Scan() {
		p.lines <- line{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	p.lines <- line{err: err}
}
