package logging

import (
	"log/slog"
	"sort"
	"sync"
)

// Registry hands out one named logger per component.
//
// A Registry is created once at startup with the process base logger and
// passed to every constructor that needs logging. All loggers it returns
// share the base handler, so they write to the same sink, and carry a
// "component" attribute with their name.
type Registry struct {
	base *slog.Logger

	mu      sync.RWMutex
	loggers map[string]*slog.Logger
}

// NewRegistry returns a Registry backed by base.
// A nil base uses slog.Default().
func NewRegistry(base *slog.Logger) *Registry {
	if base == nil {
		base = slog.Default()
	}
	return &Registry{
		base:    base,
		loggers: make(map[string]*slog.Logger),
	}
}

// Logger returns the logger registered under name, creating it on first use.
// Repeated calls with the same name return the same *slog.Logger.
func (r *Registry) Logger(name string) *slog.Logger {
	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[name]; ok {
		return l
	}
	l = r.base.With(slog.String("component", name))
	r.loggers[name] = l
	return l
}

// Names lists registered component names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.loggers))
	for n := range r.loggers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
