package logger

import (
	"sync"
)

// registry is the global named-logger registry.
var registry = &loggerRegistry{
	loggers: make(map[string]*Logger),
}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
	global  *Logger
}

// Register stores a named logger in the registry.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
}

// Get retrieves a named logger. If the name is not registered it returns the
// global logger tagged with the requested component name.
func Get(name string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[name]
	registry.mu.RUnlock()
	if ok {
		return l
	}
	return Global().WithComponent(name)
}

// SetGlobal replaces the global logger.
func SetGlobal(l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.global = l
}

// Global returns the global logger, creating a default one if needed.
func Global() *Logger {
	registry.mu.RLock()
	l := registry.global
	registry.mu.RUnlock()
	if l != nil {
		return l
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.global == nil {
		registry.global = NewDefault("")
	}
	return registry.global
}
