package renderer

import (
	"log"
	"os"

	"github.com/df07/pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing timestamped lines to
// stdout, via the standard log package.
type DefaultLogger struct {
	*log.Logger
}

// NewDefaultLogger creates a logger that writes to os.Stdout.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{Logger: log.New(os.Stdout, "", log.LstdFlags)}
}
