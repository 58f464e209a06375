package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/seek/internal/ui/output"
	"go.trai.ch/seek/internal/ui/style"
)

// PrettyHandler is a slog.Handler producing colored single-line records.
// Attributes render as key=value; values holding spaces, common in install
// paths, are quoted.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	// attrs are rendered when added so they keep the group active at that time.
	attrs []string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	msg, color := r.Message, style.Slate
	switch {
	case r.Level >= slog.LevelError:
		msg, color = style.Cross+" "+msg, style.Red
	case r.Level >= slog.LevelWarn:
		msg, color = style.Warning+" "+msg, style.Yellow
	}

	parts := append([]string{msg}, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})

	styled := h.out.String(strings.Join(parts, " ")).Foreground(termenv.RGBColor(color))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]string(nil), h.attrs...)
	for _, attr := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, attr)
	}
	return &next
}

// WithGroup returns a new Handler nesting later attributes under name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}
	if attr.Value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner += attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			parts = appendAttr(parts, inner, a)
		}
		return parts
	}
	return append(parts, prefix+attr.Key+"="+formatValue(attr.Value))
}

func formatValue(v slog.Value) string {
	s := v.String()
	if strings.ContainsAny(s, " \t\"") {
		return strconv.Quote(s)
	}
	return s
}
