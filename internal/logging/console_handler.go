package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiGray   = "\x1b[90m"
)

// consoleHandler renders one line per record:
//
//	15:04:05 INF [pipeline] homonym group resolved "kuusi" line 12 group_size=2 run=3f2a9c1b
//
// The component tag, the word/line pair and the shortened run id are lifted
// out of the attribute list; everything else follows as key=value.
type consoleHandler struct {
	mu        *sync.Mutex
	w         io.Writer
	level     slog.Leveler
	addSource bool
	color     bool
	prefix    string
	attrs     []slog.Attr
}

func newConsoleHandler(w io.Writer, level slog.Leveler, addSource, color bool) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, w: w, level: level, addSource: addSource, color: color}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var line consoleLine
	for _, attr := range h.attrs {
		line.add(attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		line.add(prefixed(h.prefix, attr))
		return true
	})

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var b strings.Builder
	b.WriteString(ts.Format(time.TimeOnly))
	b.WriteByte(' ')
	b.WriteString(h.levelTag(record.Level))
	if line.component != "" {
		b.WriteString(" [")
		b.WriteString(line.component)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(strings.TrimSpace(record.Message))
	if line.word != "" {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(line.word))
	}
	if line.line > 0 {
		b.WriteString(" line ")
		b.WriteString(strconv.Itoa(line.line))
	}
	for _, attr := range line.rest {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteByte('=')
		b.WriteString(consoleValue(attr.Value))
	}
	if line.runID != "" {
		b.WriteString(" run=")
		b.WriteString(shortID(line.runID))
	}
	if h.addSource {
		if src := record.Source(); src != nil && src.File != "" {
			fmt.Fprintf(&b, " src=%s:%d", filepath.Base(src.File), src.Line)
		}
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, prefixed(h.prefix, attr))
	}
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = joinKey(h.prefix, name)
	return &clone
}

func (h *consoleHandler) levelTag(level slog.Level) string {
	var tag, color string
	switch {
	case level >= slog.LevelError:
		tag, color = "ERR", ansiRed
	case level >= slog.LevelWarn:
		tag, color = "WRN", ansiYellow
	case level >= slog.LevelInfo:
		tag, color = "INF", ansiCyan
	default:
		tag, color = "DBG", ansiGray
	}
	if !h.color {
		return tag
	}
	return color + tag + ansiReset
}

// consoleLine sorts attributes into the parts the console layout lifts out.
type consoleLine struct {
	component string
	runID     string
	word      string
	line      int
	rest      []slog.Attr
}

func (l *consoleLine) add(attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		for _, member := range attr.Value.Group() {
			l.add(prefixed(attr.Key, member))
		}
		return
	}
	switch attr.Key {
	case "":
	case FieldComponent:
		l.component = attr.Value.String()
	case FieldRunID:
		l.runID = attr.Value.String()
	case FieldWord:
		l.word = attr.Value.String()
	case FieldLine:
		if attr.Value.Kind() == slog.KindInt64 {
			l.line = int(attr.Value.Int64())
			return
		}
		l.rest = append(l.rest, attr)
	default:
		l.rest = append(l.rest, attr)
	}
}

func prefixed(prefix string, attr slog.Attr) slog.Attr {
	if prefix == "" || attr.Key == "" {
		return attr
	}
	attr.Key = joinKey(prefix, attr.Key)
	return attr
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func consoleValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindDuration:
		return v.Duration().Round(time.Millisecond).String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return quoteIfNeeded(err.Error())
		}
	}
	return quoteIfNeeded(v.String())
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
