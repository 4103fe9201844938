package stt

import (
	"context"
	"fmt"
	"sync"
)

// Registry manages the configured speech-to-text engines and supports
// primary/fallback transcription. Engines are registered once at startup and
// shared read-only across requests; the mutex only guards configuration.
type Registry struct {
	mu       sync.RWMutex
	engines  map[string]Engine
	primary  string
	fallback string
}

// NewRegistry creates an empty engine registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]Engine)}
}

// Register adds an engine. The first registered engine becomes the primary by
// default.
func (r *Registry) Register(name string, e Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[name] = e
	if r.primary == "" {
		r.primary = name
	}
}

// SetPrimary selects the primary engine by name.
func (r *Registry) SetPrimary(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.primary = name
}

// SetFallback selects the fallback engine by name.
func (r *Registry) SetFallback(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = name
}

// Get returns an engine by name, or false if not registered.
func (r *Registry) Get(name string) (Engine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[name]
	return e, ok
}

// Primary returns the primary engine, or nil if none is configured.
func (r *Registry) Primary() Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.engines[r.primary]
}

// Fallback returns the fallback engine, or nil if none is configured.
func (r *Registry) Fallback() Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fallback == "" {
		return nil
	}
	return r.engines[r.fallback]
}

// Transcribe runs the primary engine, falling back on error. With no engines
// registered it reports ErrUnavailable.
func (r *Registry) Transcribe(ctx context.Context, filePath string) (string, error) {
	primary := r.Primary()
	if primary == nil {
		return "", ErrUnavailable
	}

	text, err := primary.Transcribe(ctx, filePath)
	if err == nil {
		return text, nil
	}

	fallback := r.Fallback()
	if fallback == nil {
		return "", fmt.Errorf("stt: engine %q failed: %w", primary.Name(), err)
	}

	text, fbErr := fallback.Transcribe(ctx, filePath)
	if fbErr != nil {
		return "", fmt.Errorf("stt: engine %q failed (%v), fallback %q also failed: %w", primary.Name(), err, fallback.Name(), fbErr)
	}
	return text, nil
}
