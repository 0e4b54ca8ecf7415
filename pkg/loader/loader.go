/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package loader

import (
	"context"
	"fmt"
	"unicode/utf8"

	log "github.com/macaroni-os/jessica/pkg/logger"
	specs "github.com/macaroni-os/jessica/pkg/specs"

	"github.com/pkg/errors"
)

// ErrNotFound matches every read failure caused by a missing template.
var ErrNotFound = errors.New("template not found")

// Loader reads a whole template file as UTF-8 text. It fails when the file
// doesn't exist or is unreadable.
type Loader interface {
	ReadFile(ctx context.Context, path string) (string, error)
	GetType() string
	SetLogger(l *log.JessicaLogger)
}

type LoaderCommon struct {
	Config *specs.JessicaConfig
	Logger *log.JessicaLogger
}

func NewLoaderCommon(c *specs.JessicaConfig) *LoaderCommon {
	return &LoaderCommon{
		Config: c,
		Logger: log.GetDefaultLogger(),
	}
}

func (l *LoaderCommon) SetLogger(logger *log.JessicaLogger) { l.Logger = logger }

// NewLoader returns the loader of the selected backend: dir|s3|http.
func NewLoader(c *specs.JessicaConfig, backend string, opts map[string]string) (Loader, error) {
	if opts == nil {
		opts = make(map[string]string, 0)
	}

	switch backend {
	case "", "dir":
		l := NewDirLoader(c, opts["dir-root"])
		if err := l.CheckRoot(); err != nil {
			return nil, err
		}
		return l, nil
	case "s3":
		return NewS3Loader(c, opts)
	case "http":
		return NewHttpLoader(c, opts)
	default:
		return nil, fmt.Errorf("invalid loader backend %s", backend)
	}
}

func toText(path string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %s is not valid UTF-8 text", path)
	}
	return string(data), nil
}

// notFound wraps err so that errors.Is(err, ErrNotFound) holds and the
// original error stays reachable through errors.Cause.
type notFound struct {
	path  string
	cause error
}

func (e *notFound) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrNotFound.Error(), e.path, e.cause.Error())
}

func (e *notFound) Cause() error         { return e.cause }
func (e *notFound) Unwrap() error        { return e.cause }
func (e *notFound) Is(target error) bool { return target == ErrNotFound }
