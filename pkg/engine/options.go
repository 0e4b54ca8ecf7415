/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package engine

import (
	"sort"

	specs "github.com/macaroni-os/jessica/pkg/specs"
)

// Locals are the named values available to a template body.
type Locals map[string]interface{}

// Partials maps a name to a locator: a path, or a name resolved against the
// view directories. Partial names share the namespace of the locals.
type Partials map[string]string

// Options of a render invocation.
type Options struct {
	Locals   Locals
	Partials Partials
	Settings *specs.ViewSettings
	// Template marks the source as inline text instead of a path.
	Template bool
}

// Keys returns the names of the locals in sorted order.
func (l Locals) Keys() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// namespace binds names to values in order. Setting an existing name
// replaces its value in place.
type namespace struct {
	names  []string
	values []interface{}
	index  map[string]int
}

func newNamespace(locals Locals) *namespace {
	ns := &namespace{index: make(map[string]int, len(locals))}
	for _, k := range locals.Keys() {
		ns.set(k, locals[k])
	}
	return ns
}

func (ns *namespace) set(name string, value interface{}) {
	if idx, ok := ns.index[name]; ok {
		ns.values[idx] = value
		return
	}
	ns.index[name] = len(ns.names)
	ns.names = append(ns.names, name)
	ns.values = append(ns.values, value)
}
