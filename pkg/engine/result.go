/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package engine

import (
	"context"
	"fmt"
	"sync"

	log "github.com/macaroni-os/jessica/pkg/logger"
)

// Callback receives the outcome of a render with the error first
// convention. On failure a non nil return value replaces the error
// delivered to the Result; on success the return value is ignored.
//
// The callback runs on the render goroutine before the Result is resolved:
// waiting on the Result of the same render from inside the callback blocks
// forever.
type Callback func(err error, content string) error

// Result is the deferred outcome of a render. It is resolved exactly once.
type Result struct {
	done    chan struct{}
	content string
	err     error
}

func newResult() *Result {
	return &Result{done: make(chan struct{})}
}

// Done is closed when the outcome is available.
func (r *Result) Done() <-chan struct{} { return r.done }

// Wait blocks until the outcome is available or ctx is done. Giving up the
// wait doesn't stop the render.
func (r *Result) Wait(ctx context.Context) (string, error) {
	select {
	case <-r.done:
		return r.content, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Content and Err are valid once Done is closed.
func (r *Result) Content() string { return r.content }
func (r *Result) Err() error      { return r.err }

func (r *Result) resolve(content string, err error) {
	r.content, r.err = content, err
	close(r.done)
}

// completion records the single outcome of an invocation and delivers it
// to the callback, when present, and to the Result.
type completion struct {
	once   sync.Once
	cb     Callback
	result *Result
	logger *log.JessicaLogger
}

func newCompletion(cb Callback, logger *log.JessicaLogger) *completion {
	return &completion{
		cb:     cb,
		result: newResult(),
		logger: logger,
	}
}

func (c *completion) succeed(content string) {
	c.once.Do(func() {
		defer c.result.resolve(content, nil)
		c.invoke(nil, content)
	})
}

func (c *completion) fail(err error) {
	c.once.Do(func() {
		delivered := err
		defer func() { c.result.resolve("", delivered) }()
		if formatted := c.invoke(err, ""); formatted != nil {
			delivered = formatted
		}
	})
}

func (c *completion) invoke(err error, content string) (ans error) {
	if c.cb == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error(fmt.Sprintf("render callback panicked: %v", r))
			ans = nil
		}
	}()

	return c.cb(err, content)
}
