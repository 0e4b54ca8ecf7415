/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package engine

import (
	"context"
	"fmt"

	"github.com/macaroni-os/jessica/pkg/compiler"
	specs "github.com/macaroni-os/jessica/pkg/specs"
)

// Params is a parameter name specification, e.g. "a, b".
type Params string

// Handle holds what Dispatch produced: a precompiled renderer or the
// deferred outcome of a render.
type Handle struct {
	Renderer compiler.SafeRenderer
	Result   *Result
}

// Dispatch selects the mode from arg, the way a single entry point would:
// nil or Params precompile source, *Options or Options render it.
func (e *Engine) Dispatch(ctx context.Context, source string, arg interface{}, cb Callback) (*Handle, error) {
	switch val := arg.(type) {
	case nil:
		return &Handle{Renderer: e.Precompile(source)}, nil
	case Params:
		return &Handle{Renderer: e.Precompile(source, string(val))}, nil
	case *Options:
		return &Handle{Result: e.Render(ctx, source, val, cb)}, nil
	case Options:
		return &Handle{Result: e.Render(ctx, source, &val, cb)}, nil
	default:
		return nil, fmt.Errorf("unsupported render argument of type %T", arg)
	}
}

// ViewFunc is the renderer signature expected by view pipelines:
// path of the view, options, optional callback.
type ViewFunc func(path string, opts *Options, cb Callback) *Result

// ViewFunc returns the engine as a pluggable view renderer.
func (e *Engine) ViewFunc() ViewFunc {
	return func(path string, opts *Options, cb Callback) *Result {
		return e.Render(context.Background(), path, opts, cb)
	}
}

// HostViewFunc decodes the settings map of a host framework ("views" and
// "view engine") and returns a view renderer using them for the options
// without Settings.
func (e *Engine) HostViewFunc(settings map[string]interface{}) (ViewFunc, error) {
	vs, err := specs.NewViewSettingsFromMap(settings)
	if err != nil {
		return nil, err
	}

	return func(path string, opts *Options, cb Callback) *Result {
		o := Options{}
		if opts != nil {
			o = *opts
		}
		if o.Settings == nil {
			o.Settings = vs
		}
		return e.Render(context.Background(), path, &o, cb)
	}, nil
}
