package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Generated definitions may go to stdout, so logs go to stderr.
var logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)

// SetOutput replaces the log destination. Console output is human readable.
func SetOutput(w io.Writer, console bool) {
	if console {
		w = zerolog.ConsoleWriter{Out: w}
	}
	logger = logger.Output(w)
}

// SetLevel parses and applies a level such as "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	logger = logger.Level(lvl)
	return nil
}

func Logger() *zerolog.Logger {
	return &logger
}

func Debug() *zerolog.Event { return logger.Debug() }
func Info() *zerolog.Event  { return logger.Info() }
func Warn() *zerolog.Event  { return logger.Warn() }
func Error() *zerolog.Event { return logger.Error() }

func Print(v ...interface{}) {
	logger.Print(v...)
}

func Println(v ...interface{}) {
	Print(v...)
}

func Fatal(v ...interface{}) {
	Print(v...)
	os.Exit(1)
}
