// Package logger provides logging functionality for the workdeck application.
package logger

import (
	"fmt"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes to stdout.
type defaultLogger struct {
	mu sync.Mutex
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger() Logger {
	return &defaultLogger{}
}

// Logf writes a formatted message to stdout with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Printf(format+"\n", args...)
}

// prefixedLogger prepends a fixed component prefix to every message.
type prefixedLogger struct {
	prefix string
	next   Logger
}

// NewPrefixedLogger wraps a logger so every message carries a component
// prefix, used to tell feature modules apart in the shared log.
func NewPrefixedLogger(prefix string, next Logger) Logger {
	return &prefixedLogger{
		prefix: prefix,
		next:   next,
	}
}

// Logf forwards the message with the prefix prepended.
func (p *prefixedLogger) Logf(format string, args ...interface{}) {
	p.next.Logf("["+p.prefix+"] "+format, args...)
}
