/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package view_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/macaroni-os/jessica/pkg/engine"
	"github.com/macaroni-os/jessica/pkg/loader"
	specs "github.com/macaroni-os/jessica/pkg/specs"
	. "github.com/macaroni-os/jessica/pkg/view"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type page struct {
	Title string
}

var _ = Describe("Gin view", func() {
	var (
		d1, d2 string
		e      *engine.Engine
		hr     *HTMLRender
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)

		base := GinkgoT().TempDir()
		d1 = filepath.Join(base, "d1")
		d2 = filepath.Join(base, "d2")
		Expect(os.MkdirAll(d1, 0755)).Should(BeNil())
		Expect(os.MkdirAll(d2, 0755)).Should(BeNil())
		Expect(os.WriteFile(filepath.Join(d1, "index.tpl"),
			[]byte("<h1>${name}</h1>${footer}"), 0644)).Should(BeNil())
		Expect(os.WriteFile(filepath.Join(d2, "footer.tpl"),
			[]byte("<footer>${name}</footer>"), 0644)).Should(BeNil())
		Expect(os.WriteFile(filepath.Join(d2, "page.tpl"),
			[]byte("${$.Title}"), 0644)).Should(BeNil())

		e = engine.NewEngine(loader.NewDirLoader(specs.NewJessicaConfig(nil), ""))
		hr = NewHTMLRender(e, specs.NewViewSearch("tpl", d1, d2),
			engine.Partials{"footer": "footer"})
	})

	It("Renders a view through gin", func() {
		router := gin.New()
		router.HTMLRender = hr
		router.GET("/", func(c *gin.Context) {
			c.HTML(http.StatusOK, "index", gin.H{"name": "Ann"})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(Equal("text/html; charset=utf-8"))
		Expect(w.Body.String()).To(Equal("<h1>Ann</h1><footer>Ann</footer>"))
	})

	It("Binds non map data to $", func() {
		plain := NewHTMLRender(e, specs.NewViewSearch("tpl", d1, d2), nil)
		w := httptest.NewRecorder()
		err := plain.Instance("page", &page{Title: "Home"}).Render(w)
		Expect(err).Should(BeNil())
		Expect(w.Body.String()).To(Equal("Home"))
	})

	It("Fails on a missing view", func() {
		w := httptest.NewRecorder()
		err := hr.Instance("missing", nil).Render(w)
		Expect(err).ShouldNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("missing"))
	})

	It("Fails on undefined references", func() {
		w := httptest.NewRecorder()
		err := hr.Instance("index", nil).Render(w)
		Expect(err).ShouldNot(BeNil())
		Expect(w.Body.Len()).To(Equal(0))
	})

	It("Converts data to locals", func() {
		Expect(ToLocals(nil)).To(Equal(engine.Locals{}))
		Expect(ToLocals(gin.H{"a": 1})).To(Equal(engine.Locals{"a": 1}))
		Expect(ToLocals(map[string]any{"a": 1})).To(Equal(engine.Locals{"a": 1}))
		Expect(ToLocals("x")).To(Equal(engine.Locals{"$": "x"}))
	})
})
