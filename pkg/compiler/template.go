/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package compiler

import (
	"strings"

	"github.com/pkg/errors"
)

// Renderer evaluates a compiled template against positional values.
// An evaluation failure is raised as a panic carrying the error; use
// Evaluate to turn it back into an error value.
type Renderer func(values ...interface{}) string

// SafeRenderer evaluates a compiled template against positional values and
// never panics: every evaluation failure is returned as the error.
type SafeRenderer func(values ...interface{}) (string, error)

// Template is a template body bound to an ordered list of parameter names.
// It holds no mutable state and may be executed concurrently.
type Template struct {
	body     string
	params   []string
	index    map[string]int
	segments []segment
	// err is reported on every execution.
	err error
}

// New binds body to the parameter specification (see ParseParams).
// Syntax errors are kept and surface when the template is executed.
func New(body string, params ...string) *Template {
	t := &Template{
		body:  body,
		index: make(map[string]int),
	}

	t.params, t.err = ParseParams(params...)
	if t.err != nil {
		return t
	}
	// With duplicated names the last binding wins.
	for idx, name := range t.params {
		t.index[name] = idx
	}

	t.segments, t.err = parse(body)

	return t
}

func (t *Template) Body() string     { return t.body }
func (t *Template) Params() []string { return t.params }

// Execute substitutes every expression with its bound value. The Nth
// parameter name is bound to the Nth value; names without a value are
// unbound.
func (t *Template) Execute(values ...interface{}) (string, error) {
	if t.err != nil {
		return "", t.err
	}

	var b strings.Builder
	b.Grow(len(t.body))

	for idx := range t.segments {
		seg := &t.segments[idx]
		if !seg.isExpr() {
			b.WriteString(seg.text)
			continue
		}

		v, err := t.resolve(seg.path, values)
		if err != nil {
			return "", err
		}
		b.WriteString(Stringify(v))
	}

	return b.String(), nil
}

func (t *Template) resolve(path []string, values []interface{}) (interface{}, error) {
	pos, ok := t.index[path[0]]
	if !ok || pos >= len(values) {
		return nil, &ReferenceError{Name: path[0]}
	}

	v := values[pos]
	for i := 1; i < len(path); i++ {
		v, ok = lookupField(v, path[i])
		if !ok {
			return nil, &ReferenceError{Name: strings.Join(path[:i+1], ".")}
		}
	}

	return v, nil
}

// Renderer returns the raising form of the template.
func (t *Template) Renderer() Renderer {
	return func(values ...interface{}) string {
		out, err := t.Execute(values...)
		if err != nil {
			panic(err)
		}
		return out
	}
}

// SafeRenderer returns the non raising form of the template.
func (t *Template) SafeRenderer() SafeRenderer {
	return t.Execute
}

// Compile returns a Renderer that panics on evaluation failures.
func Compile(body string, params ...string) Renderer {
	return New(body, params...).Renderer()
}

// Precompile returns a SafeRenderer: evaluation failures are returned, never
// raised.
func Precompile(body string, params ...string) SafeRenderer {
	return New(body, params...).SafeRenderer()
}

// Evaluate invokes a raising Renderer and recovers its failure as an error.
// Panics that do not carry an error are wrapped into one.
func Evaluate(r Renderer, values ...interface{}) (out string, err error) {
	defer func() {
		if e := recover(); e != nil {
			rerr, ok := e.(error)
			if !ok {
				rerr = errors.Errorf("renderer panicked: %v", e)
			}
			out, err = "", rerr
		}
	}()

	return r(values...), nil
}
