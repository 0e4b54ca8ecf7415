/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package compiler

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultParam is the implicit parameter bound when no names are given.
// Callers pass a single object and reference its fields as ${$.field}.
const DefaultParam = "$"

// ParseParams normalizes a parameter specification. Every entry may hold a
// single name or a comma separated list ("a, b"). An empty specification
// yields the implicit DefaultParam.
func ParseParams(spec ...string) ([]string, error) {
	ans := []string{}

	for _, entry := range spec {
		for _, name := range strings.Split(entry, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				if strings.TrimSpace(entry) == "" && len(spec) == 1 {
					// An empty string stands for "no names".
					continue
				}
				return nil, &SyntaxError{Offset: -1,
					Msg: fmt.Sprintf("empty parameter name in %q", entry)}
			}
			if !IsIdentifier(name) {
				return nil, &SyntaxError{Offset: -1,
					Msg: fmt.Sprintf("invalid parameter name %q", name)}
			}
			ans = append(ans, name)
		}
	}

	if len(ans) == 0 {
		ans = append(ans, DefaultParam)
	}

	return ans, nil
}

// IsIdentifier reports whether s can be bound as a parameter name.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !isIdentRune(r, i == 0) {
			return false
		}
	}
	return true
}

func isIdentRune(r rune, first bool) bool {
	if r == '_' || r == '$' || unicode.IsLetter(r) {
		return true
	}
	return !first && unicode.IsDigit(r)
}
