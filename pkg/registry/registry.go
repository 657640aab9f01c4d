// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/nscmd/nscmd/pkg/types"
)

// ErrNotRegistered is the sentinel wrapped by NotRegisteredError.
var ErrNotRegistered = errors.New("type not registered")

// Default is the process-wide registry used when a loader is not given one.
var Default = New()

type (
	// Command is a constructed command handler. The registry and the loader
	// never call into it.
	Command any

	// Factory constructs a command instance with no arguments.
	Factory func() Command

	// Registry maps type names to factories. It is safe for concurrent use.
	Registry struct {
		mu        sync.RWMutex
		factories map[string]registration
	}

	// NotRegisteredError is returned by New for unknown type names.
	NotRegisteredError struct {
		TypeName string
	}

	registration struct {
		typeName string
		factory  Factory
	}
)

// New creates an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]registration)}
}

// Register sets the factory for typeName. It panics if typeName is empty,
// factory is nil, or a type with the same name (ignoring case) exists.
func (r *Registry) Register(typeName string, factory Factory) {
	name := canonical(typeName)
	if name == "" {
		panic("registry: empty type name")
	}
	if factory == nil {
		panic(fmt.Sprintf("registry: nil factory for %s", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(name)
	if existing, exists := r.factories[key]; exists {
		panic(fmt.Sprintf("registry: type %s already registered as %s", name, existing.typeName))
	}
	r.factories[key] = registration{typeName: name, factory: factory}
}

// Has reports whether typeName is registered.
func (r *Registry) Has(typeName string) bool {
	_, ok := r.lookup(typeName)
	return ok
}

// New constructs a fresh instance of typeName.
func (r *Registry) New(typeName string) (Command, error) {
	reg, ok := r.lookup(typeName)
	if !ok {
		return nil, &NotRegisteredError{TypeName: canonical(typeName)}
	}
	cmd := reg.factory()
	if cmd == nil {
		return nil, fmt.Errorf("registry: factory for %s returned nil", reg.typeName)
	}
	return cmd, nil
}

// Names returns the registered type names, as declared, in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for _, reg := range maps.Values(r.factories) {
		names = append(names, reg.typeName)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

func (r *Registry) lookup(typeName string) (registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.factories[strings.ToLower(canonical(typeName))]
	return reg, ok
}

// Register adds a factory to Default.
func Register(typeName string, factory Factory) {
	Default.Register(typeName, factory)
}

// RegisterType registers a factory that returns a new zero *T.
func RegisterType[T any](r *Registry, typeName string) {
	r.Register(typeName, func() Command { return new(T) })
}

// Error implements the error interface.
func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("type %s is not registered", e.TypeName)
}

// Unwrap returns ErrNotRegistered for errors.Is() compatibility.
func (e *NotRegisteredError) Unwrap() error { return ErrNotRegistered }

func canonical(typeName string) string {
	return strings.TrimLeft(strings.TrimSpace(typeName), types.NamespaceSeparator)
}
