// Where: cli/internal/engine/hooks.go
// What: Lifecycle hook contract and the registry of compiled hook sets.
// Why: Templates declare hooks by name; the engine drives them in a fixed order.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/poruru/sprout/cli/internal/domain/pipeline"
)

// ErrUnknownHooks is returned when a manifest references an unregistered hook set.
var ErrUnknownHooks = errors.New("unknown hook set")

// Config is the computed project configuration produced by BeforeRender.
type Config interface {
	Locals() map[string]any
}

// Hooks is the typed lifecycle of a template. A is the ambient context
// gathered by Before and handed by value to the later stages; C is the
// configuration derived from the answers.
type Hooks[A any, C Config] interface {
	Before(ctx context.Context, u *Utils) A
	Configure(ambient A) []Question
	BeforeRender(ambient A, answers Answers) (C, error)
	After(ctx context.Context, u *Utils, cfg C) (pipeline.Report, error)
}

// Lifecycle is a Hooks value with its type parameters erased.
type Lifecycle interface {
	Before(ctx context.Context, u *Utils) Session
}

// Session carries the ambient context between stages of one run.
type Session interface {
	Configure() []Question
	BeforeRender(answers Answers) (Config, error)
	After(ctx context.Context, u *Utils) (pipeline.Report, error)
}

// Bind erases the type parameters of h.
func Bind[A any, C Config](h Hooks[A, C]) Lifecycle {
	return bound[A, C]{hooks: h}
}

type bound[A any, C Config] struct {
	hooks Hooks[A, C]
}

func (b bound[A, C]) Before(ctx context.Context, u *Utils) Session {
	return &session[A, C]{hooks: b.hooks, ambient: b.hooks.Before(ctx, u)}
}

type session[A any, C Config] struct {
	hooks   Hooks[A, C]
	ambient A
	cfg     C
	ready   bool
}

func (s *session[A, C]) Configure() []Question {
	return s.hooks.Configure(s.ambient)
}

func (s *session[A, C]) BeforeRender(answers Answers) (Config, error) {
	cfg, err := s.hooks.BeforeRender(s.ambient, answers)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	s.ready = true
	return cfg, nil
}

func (s *session[A, C]) After(ctx context.Context, u *Utils) (pipeline.Report, error) {
	if !s.ready {
		return pipeline.Report{}, errors.New("after hook called before configuration was derived")
	}
	return s.hooks.After(ctx, u, s.cfg)
}

// Registry maps hook-set names to lifecycles.
type Registry struct {
	mu    sync.RWMutex
	hooks map[string]Lifecycle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{hooks: map[string]Lifecycle{}}
}

// Register adds a lifecycle. Names are unique.
func (r *Registry) Register(name string, lc Lifecycle) error {
	if name == "" || lc == nil {
		return fmt.Errorf("register hooks: name and lifecycle are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.hooks[name]; exists {
		return fmt.Errorf("register hooks: %q already registered", name)
	}
	r.hooks[name] = lc
	return nil
}

// Lookup returns the lifecycle registered under name.
func (r *Registry) Lookup(name string) (Lifecycle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lc, ok := r.hooks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHooks, name)
	}
	return lc, nil
}

// Names returns registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.hooks))
	for name := range r.hooks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
