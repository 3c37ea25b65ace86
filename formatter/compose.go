package formatter

import (
	"strconv"
	"strings"

	"github.com/philipp01105/applog/core"
)

// DefaultGlyph is used for levels outside the known set
const DefaultGlyph = "[Default]"

var levelGlyphs = [...]string{
	core.DebugLevel:   "[🛠️]",
	core.InfoLevel:    "[ℹ️]",
	core.DefaultLevel: "[⚠️]",
	core.ErrorLevel:   "[🛑]",
	core.FaultLevel:   "[💥]",
}

// LevelGlyph returns the bracketed glyph that prefixes messages of level l
func LevelGlyph(l core.Level) string {
	if !l.Valid() {
		return DefaultGlyph
	}
	return levelGlyphs[l]
}

// CallLocation renders the call site as "[file | function + line]"
func CallLocation(c core.CallerInfo) string {
	var b strings.Builder
	b.Grow(len(c.ShortFile) + len(c.Function) + 16)
	writeLocation(&b, c)
	return b.String()
}

func writeLocation(b *strings.Builder, c core.CallerInfo) {
	b.WriteByte('[')
	b.WriteString(c.ShortFile)
	b.WriteString(" | ")
	b.WriteString(c.Function)
	b.WriteString(" + ")
	b.WriteString(strconv.Itoa(c.Line))
	b.WriteByte(']')
}

// Compose builds "glyph location message"
func Compose(l core.Level, c core.CallerInfo, msg string) string {
	glyph := LevelGlyph(l)

	var b strings.Builder
	b.Grow(len(glyph) + len(c.ShortFile) + len(c.Function) + len(msg) + 18)
	b.WriteString(glyph)
	b.WriteByte(' ')
	writeLocation(&b, c)
	b.WriteByte(' ')
	b.WriteString(msg)
	return b.String()
}

// ComposeConsole builds "location message [item, item]" for console
// logs. There is no glyph. Items are rendered with Field.Display, so a
// private log never carries their values. The item list is omitted when
// there are no items.
func ComposeConsole(c core.CallerInfo, msg string, items []core.Field, private bool) string {
	var b strings.Builder
	b.Grow(len(c.ShortFile) + len(c.Function) + len(msg) + 16 + 16*len(items))
	writeLocation(&b, c)
	b.WriteByte(' ')
	b.WriteString(msg)

	if len(items) == 0 {
		return b.String()
	}

	b.WriteString(" [")
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.Display(private))
	}
	b.WriteByte(']')
	return b.String()
}
