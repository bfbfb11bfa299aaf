package app

import (
	"io"
	"runtime"

	"go.uber.org/zap"

	"shadigest/internal/report"
	"shadigest/internal/source"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Format report.Format // output rendering, default text
	Codec  source.Codec  // input decoding, default none
	Double bool          // report SHA-256d instead of SHA-256
	Jobs   int           // parallel inputs; <= 0 means GOMAXPROCS
	Stdin  io.Reader     // optional; defaults to os.Stdin
	Logger *zap.Logger   // optional; defaults to a no-op logger
}

func (c Config) withDefaults() Config {
	if c.Format == "" {
		c.Format = report.FormatText
	}
	if c.Jobs <= 0 {
		c.Jobs = runtime.GOMAXPROCS(0)
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
