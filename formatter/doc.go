// Package formatter renders applog messages and serializes entries.
//
// Message composition lives in compose.go: LevelGlyph maps a level to its
// bracketed glyph, CallLocation renders "[file | function + line]", and
// Compose and ComposeConsole build the message text that is handed to a
// sink. The original message text is never escaped or truncated.
//
// Writer-backed sinks then serialize the Entry with a Formatter. Two
// interfaces exist: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers check
// for WriterFormatter at construction time and prefer it when available.
//
// Both built-in formatters (TextFormatter and JSONFormatter) implement
// both interfaces and use a pooled bytes.Buffer internally. Buffers
// larger than 64 KiB are not returned to the pool to prevent a single
// large log line from permanently inflating memory usage.
package formatter
