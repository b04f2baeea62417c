package domain

import (
	"math"
	"strings"
	"time"
)

// DefaultTimeLimitSeconds applies when a bank does not carry a time-limit row.
const DefaultTimeLimitSeconds uint = 30

// MaxTimeLimitSeconds is the longest limit a time.Duration can hold.
const MaxTimeLimitSeconds uint = math.MaxInt64 / uint(time.Second)

// Question is an immutable prompt/answer pair.
type Question struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// Check reports whether answer matches the expected answer exactly (case-sensitive) after trimming.
func (q Question) Check(answer string) bool {
	return q.Answer == strings.TrimSpace(answer)
}

// Bank is a loaded question set plus its global time limit.
type Bank struct {
	Questions        []Question `json:"questions"`
	TimeLimitSeconds uint       `json:"timeLimitSeconds"`
}

// TimeLimit returns the bank limit as a duration, capped at MaxTimeLimitSeconds.
func (b Bank) TimeLimit() time.Duration {
	return SecondsToDuration(b.TimeLimitSeconds)
}

// SecondsToDuration converts whole seconds without wrapping past the largest duration.
func SecondsToDuration(seconds uint) time.Duration {
	if seconds > MaxTimeLimitSeconds {
		seconds = MaxTimeLimitSeconds
	}
	return time.Duration(seconds) * time.Second
}

// Result is the final tally of a quiz run.
type Result struct {
	Correct  int
	Total    int
	Finished bool
}

// Verdict is the qualitative rating printed after the score.
type Verdict int

const (
	VerdictStudyMore Verdict = iota
	VerdictAmazing
	VerdictGenius
)

func (v Verdict) String() string {
	switch v {
	case VerdictGenius:
		return "genius"
	case VerdictAmazing:
		return "amazing"
	default:
		return "study more"
	}
}

// VerdictFor rates a result. The middle band is an exact match on total/2 with
// integer division, so 2 of 5 rates "amazing" while 3 of 5 does not.
func VerdictFor(correct, total int) Verdict {
	if correct == total {
		return VerdictGenius
	}
	if correct == total/2 {
		return VerdictAmazing
	}
	return VerdictStudyMore
}
