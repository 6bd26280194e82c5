package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/bound/internal/ui/output"
	"go.trai.ch/bound/internal/ui/style"
)

var _ slog.Handler = (*PrettyHandler)(nil)

// PrettyHandler writes one colored line per record: the level icon, the
// message and then every attribute as key=value.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// groups opened through WithGroup, outermost first.
	groups []string
	// attrs added through WithAttrs, already rendered with a leading space each.
	attrs string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether records at level are written.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := decorate(r.Level)

	var b strings.Builder
	if icon != "" {
		b.WriteString(icon + " ")
	}
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.groups, a)
		return true
	})

	line := h.out.String(b.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := fmt.Fprintln(h.out, line.String())
	return err
}

// WithAttrs returns a handler that renders attrs on every record,
// qualified by the groups open at this point.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(&b, h.groups, a)
	}

	clone := *h
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a handler that qualifies later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(slices.Clip(h.groups), name)
	return &clone
}

// decorate picks the icon and color used for a level.
func decorate(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	default:
		return "", style.Slate
	}
}

// writeAttr renders a as " group.key=value". Group values are flattened and
// empty attributes are dropped.
func writeAttr(b *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		nested := groups
		if a.Key != "" {
			nested = append(slices.Clip(groups), a.Key)
		}
		for _, member := range a.Value.Group() {
			writeAttr(b, nested, member)
		}
		return
	}

	b.WriteByte(' ')
	for _, g := range groups {
		b.WriteString(g + ".")
	}
	b.WriteString(a.Key + "=" + a.Value.String())
}
