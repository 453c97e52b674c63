// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package binding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/davetashner/turbodash/internal/dasherr"
)

// Registry errors.
var (
	ErrFrozen        = errors.New("registry is frozen")
	ErrDuplicate     = errors.New("output already registered")
	ErrUnknownOutput = errors.New("no callback for output")
)

// Func computes an output value from one value per declared input.
type Func func(ctx context.Context, values []any) (any, error)

// Callback is a reactive binding: Output is recomputed by Fn whenever any
// of Inputs changes.
type Callback struct {
	Output Dependency
	Inputs []Dependency
	Fn     Func
}

// Value is a runtime value reported for one input.
type Value struct {
	Dependency
	Value any `json:"value"`
}

// Registry holds the callbacks of a dashboard. Callbacks are registered
// while the dashboard is assembled; Freeze ends registration and the
// registry is read-only afterwards.
type Registry struct {
	mu        sync.RWMutex
	callbacks []Callback
	index     map[Dependency]int
	frozen    bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[Dependency]int)}
}

// Register adds a callback. Each output may be registered once.
func (r *Registry) Register(cb Callback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("register %s: %w", cb.Output, ErrFrozen)
	}
	if cb.Fn == nil {
		return fmt.Errorf("register %s: nil callback", cb.Output)
	}
	if _, exists := r.index[cb.Output]; exists {
		return fmt.Errorf("register %s: %w", cb.Output, ErrDuplicate)
	}
	cb.Inputs = append([]Dependency(nil), cb.Inputs...)
	r.index[cb.Output] = len(r.callbacks)
	r.callbacks = append(r.callbacks, cb)
	return nil
}

// RegisterBinding registers the update function of a chart binding.
func (r *Registry) RegisterBinding(b *Binding) error {
	return r.Register(Callback{
		Output: b.Output(),
		Inputs: b.Inputs(),
		Fn: func(_ context.Context, values []any) (any, error) {
			return b.Update(values)
		},
	})
}

// Freeze ends registration.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether registration has ended.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Callbacks returns the registered callbacks in registration order.
func (r *Registry) Callbacks() []Callback {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Callback(nil), r.callbacks...)
}

// Lookup returns the callback for output.
func (r *Registry) Lookup(output Dependency) (Callback, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[output]
	if !ok {
		return Callback{}, false
	}
	return r.callbacks[i], true
}

// Dispatch invokes the callback for output with positional values.
func (r *Registry) Dispatch(ctx context.Context, output Dependency, values []any) (any, error) {
	cb, ok := r.Lookup(output)
	if !ok {
		return nil, fmt.Errorf("%s: %w", output, ErrUnknownOutput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(values) != len(cb.Inputs) {
		return nil, &dasherr.ContractMismatchError{Output: output.String(), Want: len(cb.Inputs), Got: len(values)}
	}
	slog.Debug("dispatch", slog.String("output", output.String()), slog.Int("inputs", len(values)))
	return cb.Fn(ctx, values)
}

// DispatchNamed invokes the callback for output with values that name the
// input they belong to. They must list exactly the declared inputs, in
// declared order.
func (r *Registry) DispatchNamed(ctx context.Context, output Dependency, inputs []Value) (any, error) {
	cb, ok := r.Lookup(output)
	if !ok {
		return nil, fmt.Errorf("%s: %w", output, ErrUnknownOutput)
	}
	if len(inputs) != len(cb.Inputs) {
		return nil, &dasherr.ContractMismatchError{Output: output.String(), Want: len(cb.Inputs), Got: len(inputs)}
	}
	values := make([]any, len(inputs))
	for i, in := range inputs {
		if in.Dependency != cb.Inputs[i] {
			return nil, &dasherr.ContractMismatchError{
				Output: output.String(),
				Detail: fmt.Sprintf("input %d is %s, declared %s", i, in.Dependency, cb.Inputs[i]),
			}
		}
		values[i] = in.Value
	}
	return r.Dispatch(ctx, output, values)
}
