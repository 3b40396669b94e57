// Package output renders devloop's terminal output: status lines, section
// dividers, and boxed result banners, all styled through a [theme.Theme].
//
// All pass/fail signaling in devloop is textual. The [Printer] is the single
// place that text is produced, so tests capture it with
// [NewPrinterWithWriter] and assert on the buffer.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"devloop/internal/theme"
)

// ruleWidth is the width of divider rules and banner boxes.
const ruleWidth = 63

// Printer writes themed status output to a single destination.
type Printer struct {
	w  io.Writer
	th theme.Theme
}

// NewPrinter returns a Printer writing to stdout.
func NewPrinter(th theme.Theme) *Printer {
	return &Printer{w: os.Stdout, th: th}
}

// NewPrinterWithWriter returns a Printer writing to w.
//
// Tests use this with a bytes.Buffer to capture output.
func NewPrinterWithWriter(w io.Writer, th theme.Theme) *Printer {
	return &Printer{w: w, th: th}
}

// Infof prints an informational status line.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintln(p.w, p.th.Info.Render(fmt.Sprintf(format, args...)))
}

// Successf prints a single-line success message.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.w, p.th.Success.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warnf prints a warning line for "nothing to do" conditions.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.w, p.th.Warn.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// Errorf prints a single-line error message.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.w, p.th.Error.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Output prints captured tool output verbatim, unstyled, ensuring a
// trailing newline. Empty output prints nothing.
func (p *Printer) Output(s string) {
	if s == "" {
		return
	}
	fmt.Fprint(p.w, s)
	if !strings.HasSuffix(s, "\n") {
		fmt.Fprintln(p.w)
	}
}

// Divider prints the section rule that separates pipeline phases.
func (p *Printer) Divider(title string) {
	rule := strings.Repeat("═", ruleWidth)
	fmt.Fprintln(p.w, p.th.Divider.Render(rule))
	fmt.Fprintln(p.w, p.th.Divider.Render("  "+title))
	fmt.Fprintln(p.w, p.th.Divider.Render(rule))
}

// SuccessBanner prints a boxed success banner. The first line carries the
// check mark; additional lines are indented detail.
func (p *Printer) SuccessBanner(lines ...string) {
	p.banner(p.th.Success, "✓", lines)
}

// ErrorBanner prints a boxed failure banner.
func (p *Printer) ErrorBanner(lines ...string) {
	p.banner(p.th.Error, "✗", lines)
}

func (p *Printer) banner(style lipgloss.Style, mark string, lines []string) {
	rule := strings.Repeat("═", ruleWidth)
	fmt.Fprintln(p.w, style.Render("╔"+rule+"╗"))
	for i, line := range lines {
		prefix := "  "
		if i == 0 {
			prefix = mark + " "
		}
		fmt.Fprintln(p.w, style.Render("║  "+prefix+line))
	}
	fmt.Fprintln(p.w, style.Render("╚"+rule+"╝"))
}
