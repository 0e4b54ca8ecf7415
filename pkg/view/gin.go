/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package view

import (
	"context"
	"fmt"
	"net/http"

	"github.com/macaroni-os/jessica/pkg/compiler"
	"github.com/macaroni-os/jessica/pkg/engine"
	specs "github.com/macaroni-os/jessica/pkg/specs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

var htmlContentType = []string{"text/html; charset=utf-8"}

// HTMLRender plugs the engine into the gin render pipeline. View names are
// resolved like partials, against the view settings.
type HTMLRender struct {
	Engine   *engine.Engine
	Settings *specs.ViewSettings
	// Partials shared by every view.
	Partials engine.Partials
}

// Ensure HTMLRender implements gin HTMLRender.
var _ render.HTMLRender = (*HTMLRender)(nil)

func NewHTMLRender(e *engine.Engine, settings *specs.ViewSettings, partials engine.Partials) *HTMLRender {
	return &HTMLRender{
		Engine:   e,
		Settings: settings,
		Partials: partials,
	}
}

func (r *HTMLRender) Instance(name string, data any) render.Render {
	return &HTML{
		View: r,
		Name: name,
		Data: data,
	}
}

// HTML renders a single view.
type HTML struct {
	View *HTMLRender
	Name string
	Data any
}

var _ render.Render = (*HTML)(nil)

func (h *HTML) Render(w http.ResponseWriter) error {
	h.WriteContentType(w)

	ctx := context.Background()

	content, found, err := h.View.Engine.Resolver.Resolve(ctx, h.Name, h.View.Settings)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("view %s not found", h.Name)
	}

	out, err := h.View.Engine.Render(ctx, content, &engine.Options{
		Template: true,
		Locals:   ToLocals(h.Data),
		Partials: h.View.Partials,
		Settings: h.View.Settings,
	}, nil).Wait(ctx)
	if err != nil {
		return err
	}

	_, err = w.Write([]byte(out))
	return err
}

func (h *HTML) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}

// ToLocals converts view data into locals. Maps become locals as they are,
// any other value is bound to the implicit $ parameter.
func ToLocals(data any) engine.Locals {
	switch val := data.(type) {
	case nil:
		return engine.Locals{}
	case engine.Locals:
		return val
	case gin.H:
		return engine.Locals(val)
	case map[string]any:
		return engine.Locals(val)
	default:
		return engine.Locals{compiler.DefaultParam: data}
	}
}
