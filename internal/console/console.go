package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Printer writes colored progress lines for the seeding phases.
type Printer struct {
	out io.Writer

	info    *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	title   *color.Color
}

func New(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		title:   color.New(color.FgGreen, color.Bold),
	}
}

func Stdout() *Printer {
	return New(os.Stdout)
}

func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", 50)
	p.title.Fprintln(p.out, rule)
	p.title.Fprintln(p.out, title)
	p.title.Fprintln(p.out, rule)
}

func (p *Printer) Phase(format string, args ...interface{}) {
	p.info.Fprintf(p.out, "🌱 "+format+"\n", args...)
}

func (p *Printer) Done(format string, args ...interface{}) {
	p.success.Fprintf(p.out, "✅ "+format+"\n", args...)
}

func (p *Printer) Warn(format string, args ...interface{}) {
	p.warn.Fprintf(p.out, "⚠️  "+format+"\n", args...)
}

func (p *Printer) Downloading(name string) {
	fmt.Fprintf(p.out, "  ⬇️  downloading %s...\n", name)
}

func (p *Printer) Skipped(name string) {
	p.warn.Fprintf(p.out, "  ⏭️  skipping existing %s\n", name)
}

func (p *Printer) Failed(name string, err error) {
	p.fail.Fprintf(p.out, "  ❌ failed to download %s: %v\n", name, err)
}

// NextSteps prints the numbered post-run instructions.
func (p *Printer) NextSteps(steps ...string) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(p.out)
	p.title.Fprintln(p.out, rule)
	p.title.Fprintln(p.out, "Done! Next steps:")
	for i, step := range steps {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, step)
	}
	p.title.Fprintln(p.out, rule)
}
