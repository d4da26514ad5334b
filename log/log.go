package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger   zerolog.Logger
	logReady bool
)

// Init routes log output to stderr; the generated assets are the only things
// this tool writes anywhere else.
func Init() {
	InitWriter(os.Stderr)
}

// InitWriter configures the logger against an arbitrary writer.
func InitWriter(w io.Writer) {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	logger = zerolog.New(cw).With().Timestamp().Logger()
	logReady = true
}

func Info(msg string) {
	if logReady {
		logger.Info().Msg(msg)
	}
}

func Infof(format string, args ...any) {
	if logReady {
		logger.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		logger.Error().Msg(fmt.Sprintf(format, args...))
	}
}

// Stage records the duration of one pipeline stage.
func Stage(name string, d time.Duration) {
	if logReady {
		logger.Info().
			Str("stage", name).
			Float64("ms", float64(d.Microseconds())/1000).
			Msg("render_stage")
	}
}

// Wrote records one emitted output file.
func Wrote(path string, bytes int64) {
	if logReady {
		logger.Info().
			Str("path", path).
			Int64("bytes", bytes).
			Msg("wrote")
	}
}
