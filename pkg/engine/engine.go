/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package engine

import (
	"context"
	"fmt"

	"github.com/macaroni-os/jessica/pkg/compiler"
	"github.com/macaroni-os/jessica/pkg/loader"
	log "github.com/macaroni-os/jessica/pkg/logger"
	"github.com/macaroni-os/jessica/pkg/resolver"
	specs "github.com/macaroni-os/jessica/pkg/specs"
)

// Engine renders templates with locals and partials. It keeps no state
// between invocations and is safe for concurrent use.
type Engine struct {
	Loader   loader.Loader
	Resolver *resolver.Resolver
	Logger   *log.JessicaLogger
}

// NewEngine returns an engine reading through l. A nil loader reads files
// relative to the working directory.
func NewEngine(l loader.Loader) *Engine {
	if l == nil {
		l = loader.NewDirLoader(specs.NewJessicaConfig(nil), "")
	}
	return &Engine{
		Loader:   l,
		Resolver: resolver.NewResolver(l),
		Logger:   log.GetDefaultLogger(),
	}
}

func (e *Engine) SetLogger(l *log.JessicaLogger) {
	e.Logger = l
	e.Resolver.SetLogger(l)
	e.Loader.SetLogger(l)
}

// Precompile returns a reusable renderer bound to the parameter names. It
// performs no I/O and the renderer never panics.
func (e *Engine) Precompile(body string, params ...string) compiler.SafeRenderer {
	return compiler.Precompile(body, params...)
}

// Render produces the text of source with opts. The outcome is delivered
// to cb, when not nil, and to the returned Result. The render runs on its
// own goroutine and ignores the cancellation of ctx.
func (e *Engine) Render(ctx context.Context, source string, opts *Options, cb Callback) *Result {
	if opts == nil {
		opts = &Options{}
	}

	c := newCompletion(cb, e.Logger)
	go e.run(context.WithoutCancel(ctx), source, opts, c)

	return c.result
}

// RenderString renders an inline template and waits for the outcome.
func (e *Engine) RenderString(body string, locals Locals) (string, error) {
	return e.Render(context.Background(), body,
		&Options{Template: true, Locals: locals}, nil,
	).Wait(context.Background())
}

func (e *Engine) run(ctx context.Context, source string, opts *Options, c *completion) {
	body, err := e.acquire(ctx, source, opts)
	if err != nil {
		e.Logger.Debug(fmt.Sprintf(":cross_mark:%s", err.Error()))
		c.fail(err)
		return
	}

	ns := newNamespace(opts.Locals)

	if len(opts.Partials) > 0 {
		if err = e.mergePartials(ctx, ns, opts); err != nil {
			e.Logger.Debug(fmt.Sprintf(":cross_mark:%s", err.Error()))
			c.fail(err)
			return
		}
	}

	out, err := evaluate(body, ns)
	if err != nil {
		e.Logger.Debug(fmt.Sprintf(":cross_mark:%s", err.Error()))
		c.fail(err)
		return
	}

	c.succeed(out)
}

func (e *Engine) acquire(ctx context.Context, source string, opts *Options) (string, error) {
	if opts.Template {
		return source, nil
	}

	body, err := e.Loader.ReadFile(ctx, source)
	if err != nil {
		return "", &SourceError{Path: source, Err: err}
	}
	return body, nil
}

// mergePartials resolves every partial and binds its raw content under
// its name. The partials are then evaluated in declaration order and each
// output replaces the raw content: a partial sees the outputs of the
// partials evaluated before it and the raw content of the others.
func (e *Engine) mergePartials(ctx context.Context, ns *namespace, opts *Options) error {
	contents, err := e.Resolver.ResolveAll(ctx, opts.Partials, opts.Settings)
	if err != nil {
		return err
	}

	names := resolver.SortedNames(opts.Partials)
	for _, name := range names {
		if content, found := contents[name]; found {
			ns.set(name, content)
		}
	}

	for _, name := range names {
		content, found := contents[name]
		if !found {
			continue
		}

		out, err := evaluate(content, ns)
		if err != nil {
			return &PartialError{Name: name, Err: err}
		}
		ns.set(name, out)
	}

	return nil
}

func evaluate(body string, ns *namespace) (string, error) {
	return compiler.Evaluate(compiler.Compile(body, ns.names...), ns.values...)
}
