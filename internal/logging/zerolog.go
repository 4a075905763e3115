package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of rs/zerolog.
type ZerologLogger struct {
	l zerolog.Logger
}

// NewZerolog builds a console logger writing to stderr, so log lines never
// interleave with the interactive prompt on stdout. Unknown level strings
// fall back to "info".
func NewZerolog(level string) *ZerologLogger {
	return newZerolog(level, os.Stderr)
}

func newZerolog(level string, out io.Writer) *ZerologLogger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}

	l := zerolog.New(output).With().Timestamp().Logger()

	switch strings.ToLower(level) {
	case "debug":
		l = l.Level(zerolog.DebugLevel)
	case "warn":
		l = l.Level(zerolog.WarnLevel)
	case "error":
		l = l.Level(zerolog.ErrorLevel)
	default:
		l = l.Level(zerolog.InfoLevel)
	}

	return &ZerologLogger{l: l}
}

func fields(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, args[i+1])
	}
	return e
}

func (z *ZerologLogger) Debug(_ context.Context, msg string, args ...any) {
	fields(z.l.Debug(), args).Msg(msg)
}

func (z *ZerologLogger) Info(_ context.Context, msg string, args ...any) {
	fields(z.l.Info(), args).Msg(msg)
}

func (z *ZerologLogger) Warn(_ context.Context, msg string, args ...any) {
	fields(z.l.Warn(), args).Msg(msg)
}

func (z *ZerologLogger) Error(_ context.Context, msg string, args ...any) {
	fields(z.l.Error(), args).Msg(msg)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		c = c.Interface(key, args[i+1])
	}
	return &ZerologLogger{l: c.Logger()}
}
