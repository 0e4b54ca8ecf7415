/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package engine

import (
	"fmt"

	"github.com/macaroni-os/jessica/pkg/compiler"
	"github.com/macaroni-os/jessica/pkg/loader"
	"github.com/macaroni-os/jessica/pkg/resolver"
)

// Errors of the render pipeline, re-exported so that callers need a single
// import to classify a failure.
var (
	ErrUndefinedReference = compiler.ErrUndefinedReference
	ErrSyntax             = compiler.ErrSyntax
	ErrNotFound           = loader.ErrNotFound
)

type (
	ReferenceError  = compiler.ReferenceError
	SyntaxError     = compiler.SyntaxError
	ResolutionError = resolver.ResolutionError
)

// SourceError reports a main template that could not be read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("error on read template %s: %s", e.Path, e.Err.Error())
}

func (e *SourceError) Cause() error  { return e.Err }
func (e *SourceError) Unwrap() error { return e.Err }

// PartialError reports a partial whose body failed to evaluate.
type PartialError struct {
	Name string
	Err  error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("error on evaluate partial %s: %s", e.Name, e.Err.Error())
}

func (e *PartialError) Cause() error  { return e.Err }
func (e *PartialError) Unwrap() error { return e.Err }
