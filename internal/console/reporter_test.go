package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"quiz-game/internal/domain"
)

func TestReportVerdicts(t *testing.T) {
	cases := []struct {
		name   string
		result domain.Result
		want   string
	}{
		{"genius", domain.Result{Correct: 4, Total: 4, Finished: true}, "Congratulations you are a GENIUS"},
		{"amazing", domain.Result{Correct: 2, Total: 4, Finished: true}, "You are amazing"},
		{"study", domain.Result{Correct: 1, Total: 4, Finished: true}, "You need to study more"},
		{"truncated half", domain.Result{Correct: 2, Total: 5, Finished: true}, "You are amazing"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			NewReporter(&out, true).Report(tc.result)
			if !strings.Contains(out.String(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, out.String())
			}
			if strings.Contains(out.String(), "Time is up") {
				t.Fatalf("unexpected time-up notice in %q", out.String())
			}
		})
	}
}

func TestReportTimedOut(t *testing.T) {
	var out bytes.Buffer
	NewReporter(&out, true).Report(domain.Result{Correct: 1, Total: 3})

	want := "⏲️⏲️ Time is up! ⏲️⏲️\nLets see how you did...\nYou got 1 out of 3\n"
	if !strings.HasPrefix(out.String(), want) {
		t.Fatalf("expected output to start with %q, got %q", want, out.String())
	}
}

func TestReportStyledStaysReadableOffTerminal(t *testing.T) {
	var out bytes.Buffer
	NewReporter(&out, false).Report(domain.Result{Correct: 3, Total: 3, Finished: true})
	if !strings.Contains(out.String(), "You got 3 out of 3") {
		t.Fatalf("expected score line, got %q", out.String())
	}
}

func TestNoColor(t *testing.T) {
	original := isTerminal
	defer func() { isTerminal = original }()

	isTerminal = func(io.Writer) bool { return true }
	if noColor, err := NoColor("auto", io.Discard); err != nil || noColor {
		t.Fatalf("expected color on a terminal, got noColor=%v err=%v", noColor, err)
	}
	if noColor, err := NoColor("never", io.Discard); err != nil || !noColor {
		t.Fatalf("expected never to disable color, got noColor=%v err=%v", noColor, err)
	}

	isTerminal = func(io.Writer) bool { return false }
	if noColor, _ := NoColor("", io.Discard); !noColor {
		t.Fatalf("expected plain output off a terminal")
	}
	if _, err := NoColor("rainbow", io.Discard); err == nil {
		t.Fatalf("expected invalid mode error")
	}
}
