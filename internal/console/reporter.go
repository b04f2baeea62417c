package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"quiz-game/internal/domain"
)

// Reporter prints the final score and verdict.
type Reporter struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	noColor  bool
}

func NewReporter(out io.Writer, noColor bool) *Reporter {
	return &Reporter{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		noColor:  noColor,
	}
}

func (r *Reporter) Report(result domain.Result) {
	if !result.Finished {
		fmt.Fprintln(r.out, r.stylize("⏲️⏲️ Time is up! ⏲️⏲️", "11"))
		fmt.Fprintln(r.out, "Lets see how you did...")
	}
	fmt.Fprintln(r.out, r.stylize(fmt.Sprintf("You got %d out of %d", result.Correct, result.Total), "15"))

	switch domain.VerdictFor(result.Correct, result.Total) {
	case domain.VerdictGenius:
		fmt.Fprintln(r.out, r.stylize("🎉🎉🎉 Congratulations you are a GENIUS 🎉🎉🎉", "10"))
	case domain.VerdictAmazing:
		fmt.Fprintln(r.out, r.stylize("👍 You are amazing 👍", "14"))
	default:
		fmt.Fprintln(r.out, r.stylize("👎 You need to study more 👎", "9"))
	}
}

func (r *Reporter) stylize(text string, color lipgloss.Color) string {
	if r.noColor {
		return text
	}
	return r.renderer.NewStyle().Foreground(color).Render(text)
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// NoColor resolves an output color mode (auto|never) for out.
func NoColor(mode string, out io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return !isTerminal(out), nil
	case "never":
		return true, nil
	default:
		return false, fmt.Errorf("invalid color mode %q (expected auto|never)", mode)
	}
}

func defaultIsTerminal(out io.Writer) bool {
	if file, ok := out.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
