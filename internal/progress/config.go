package progress

import (
	"io"
	"log/slog"
	"os"

	"github.com/wesleyorama2/benchkit/internal/output"
)

// Config configures the console observers.
type Config struct {
	Writer  io.Writer
	NoColor bool
	Logger  *slog.Logger
}

func (c Config) writer() io.Writer {
	if c.Writer == nil {
		return os.Stdout
	}
	return c.Writer
}

func (c Config) scheme() *output.ColorScheme {
	return output.SchemeFor(output.UseColors(c.writer(), c.NoColor))
}
