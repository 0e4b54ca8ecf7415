/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package compiler

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUndefinedReference matches any *ReferenceError through errors.Is.
	ErrUndefinedReference = errors.New("undefined reference")
	// ErrSyntax matches any *SyntaxError through errors.Is.
	ErrSyntax = errors.New("template syntax error")
)

// ReferenceError is returned when a template references a name that has no
// bound value.
type ReferenceError struct {
	Name string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s is not defined", e.Name)
}

func (e *ReferenceError) Is(target error) bool { return target == ErrUndefinedReference }

// SyntaxError describes a malformed expression or an invalid parameter list.
// It is reported only when the renderer is invoked.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", ErrSyntax.Error(), e.Msg)
	}
	return fmt.Sprintf("%s at offset %d: %s", ErrSyntax.Error(), e.Offset, e.Msg)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
