// Package logger is a small facade dispatching to one or more logging backends.
// Nothing is logged until Init has been called.
package logger

import "sync"

// Instance is a logging backend
type Instance interface {
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
}

var (
	mu        sync.RWMutex
	instances []Instance
)

// Init replaces the configured backends
func Init(backends ...Instance) {
	mu.Lock()
	defer mu.Unlock()
	instances = backends
}

func each(fn func(Instance)) {
	mu.RLock()
	defer mu.RUnlock()
	for _, instance := range instances {
		fn(instance)
	}
}

// Debug writes a message at DEBUG level to all backends
func Debug(message string, keyvals ...any) {
	each(func(i Instance) { i.Debug(message, keyvals...) })
}

// Info writes a message at INFO level to all backends
func Info(message string, keyvals ...any) {
	each(func(i Instance) { i.Info(message, keyvals...) })
}

// Warn writes a message at WARN level to all backends
func Warn(message string, keyvals ...any) {
	each(func(i Instance) { i.Warn(message, keyvals...) })
}

// Error writes a message at ERROR level to all backends
func Error(message string, keyvals ...any) {
	each(func(i Instance) { i.Error(message, keyvals...) })
}
