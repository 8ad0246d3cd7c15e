package log

import "sync"

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// SetDefaultLogger installs the logger constructors fall back to when a
// caller passes nil. The CLI sets it once after flag parsing.
func SetDefaultLogger(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// DefaultLogger returns the installed default, lazily creating one with the
// stock configuration so early callers never see nil.
func DefaultLogger() *Logger {
	defaultMu.RLock()
	if defaultLogger != nil {
		defer defaultMu.RUnlock()
		return defaultLogger
	}
	defaultMu.RUnlock()

	logger := Default()
	SetDefaultLogger(logger)
	return logger
}
