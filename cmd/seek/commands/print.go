package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/seek/internal/ui/output"
	"go.trai.ch/seek/internal/ui/style"
)

// printer writes human or JSON output for one command.
type printer struct {
	w    io.Writer
	out  *termenv.Output
	json bool
}

func (c *CLI) printer(w io.Writer) *printer {
	return &printer{w: w, out: output.New(w), json: c.jsonOut}
}

func (p *printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) color(s, hex string) string {
	return p.out.String(s).Foreground(termenv.RGBColor(hex)).String()
}

func (p *printer) Line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) Success(format string, args ...any) {
	p.Line(p.color(style.Check, style.Green)+" "+format, args...)
}

func (p *printer) Item(label, detail string) {
	p.Line("%s %s  %s", p.color(style.Dot, style.Iris), label, p.color(detail, style.Slate))
}
