package output

import (
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Global printer instance for convenience functions.
var (
	globalPrinter *Printer
	globalMu      sync.RWMutex
)

func init() {
	globalPrinter = NewPrinter()
}

// SetGlobalPrinter swaps the global printer, returning the previous one so
// tests can restore it.
func SetGlobalPrinter(p *Printer) *Printer {
	globalMu.Lock()
	defer globalMu.Unlock()
	prev := globalPrinter
	globalPrinter = p
	return prev
}

// Get returns the current global printer.
func Get() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}

// Println outputs a plain line using the global printer.
func Println(text string) { Get().Println(text) }

// Printf outputs formatted text using the global printer.
func Printf(format string, args ...interface{}) { Get().Printf(format, args...) }

// Info outputs an informational line using the global printer.
func Info(text string) { Get().Info(text) }

// Success outputs a success line using the global printer.
func Success(text string) { Get().Success(text) }

// Warning outputs a warning line using the global printer.
func Warning(text string) { Get().Warning(text) }

// Errorf outputs an error line using the global printer.
func Errorf(format string, args ...interface{}) { Get().Errorf(format, args...) }

// Dim outputs a muted line using the global printer.
func Dim(text string) { Get().Dim(text) }

// Bold outputs emphasized text using the global printer.
func Bold(text string) { Get().Bold(text) }

// Ask prompts on the global printer and reads one line.
func Ask(prompt string) (string, error) { return Get().Ask(prompt) }

// Writer returns the global printer's writer for table rendering.
func Writer() io.Writer { return Get().Writer() }

// SupportsColor reports whether stdout can take styled output.
func SupportsColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return termenv.DefaultOutput().Profile != termenv.Ascii
}
