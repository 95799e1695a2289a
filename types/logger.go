package types

import (
	"log"
	"os"
)

// Logger is the diagnostic-text sink a Config carries. The components,
// registries and scheduler of this module report through the message
// bus and do not write to it; nothing in this module calls fmt.Println
// or the package-level log functions directly.
type Logger interface {
	Printf(format string, v ...any)
}

// DefaultLogger returns a Logger backed by the standard log package,
// writing to stderr with a microsecond timestamp prefix.
func DefaultLogger() Logger {
	return log.New(os.Stderr, "hopsancore: ", log.Ldate|log.Ltime|log.Lmicroseconds)
}

// NopLogger discards everything written to it. Useful in tests that don't
// care about log output but still need a non-nil Logger.
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}
