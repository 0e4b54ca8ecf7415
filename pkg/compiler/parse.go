/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package compiler

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type segment struct {
	text string
	// path is empty for literal segments.
	path   []string
	offset int
}

func (s *segment) isExpr() bool { return len(s.path) > 0 }

// parse splits a template body into literal text and ${...} expressions.
// An expression is an identifier optionally followed by .field selectors.
func parse(body string) ([]segment, error) {
	segments := []segment{}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			segments = append(segments, segment{text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(body) {
		switch {
		case strings.HasPrefix(body[i:], `\${`):
			lit.WriteString("${")
			i += 3

		case strings.HasPrefix(body[i:], "${"):
			end := strings.IndexByte(body[i+2:], '}')
			if end < 0 {
				return nil, &SyntaxError{Offset: i, Msg: "unterminated expression"}
			}
			path, err := parsePath(body[i+2:i+2+end], i)
			if err != nil {
				return nil, err
			}
			flush()
			segments = append(segments, segment{
				text:   body[i : i+3+end],
				path:   path,
				offset: i,
			})
			i += 3 + end

		default:
			_, size := utf8.DecodeRuneInString(body[i:])
			lit.WriteString(body[i : i+size])
			i += size
		}
	}
	flush()

	return segments, nil
}

func parsePath(expr string, offset int) ([]string, error) {
	expr = strings.TrimFunc(expr, unicode.IsSpace)
	if expr == "" {
		return nil, &SyntaxError{Offset: offset, Msg: "empty expression"}
	}

	path := strings.Split(expr, ".")
	for _, p := range path {
		if !IsIdentifier(p) {
			return nil, &SyntaxError{Offset: offset,
				Msg: "unsupported expression " + expr}
		}
	}

	return path, nil
}
