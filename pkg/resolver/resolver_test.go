/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package resolver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/macaroni-os/jessica/pkg/loader"
	log "github.com/macaroni-os/jessica/pkg/logger"
	. "github.com/macaroni-os/jessica/pkg/resolver"
	specs "github.com/macaroni-os/jessica/pkg/specs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// slowLoader serves contents from memory, delaying some paths.
type slowLoader struct {
	files  map[string]string
	delays map[string]time.Duration
}

func (l *slowLoader) GetType() string                { return "memory" }
func (l *slowLoader) SetLogger(_ *log.JessicaLogger) {}
func (l *slowLoader) ReadFile(_ context.Context, p string) (string, error) {
	if d, ok := l.delays[p]; ok {
		time.Sleep(d)
	}
	content, ok := l.files[p]
	if !ok {
		return "", loader.ErrNotFound
	}
	return content, nil
}

var _ = Describe("Partial resolver", func() {
	var (
		d1, d2 string
		r      *Resolver
		ctx    = context.Background()
	)

	BeforeEach(func() {
		base := GinkgoT().TempDir()
		d1 = filepath.Join(base, "d1")
		d2 = filepath.Join(base, "d2")
		Expect(os.MkdirAll(d1, 0755)).Should(BeNil())
		Expect(os.MkdirAll(d2, 0755)).Should(BeNil())
		Expect(os.WriteFile(filepath.Join(d2, "footer.tpl"), []byte("footer from d2"), 0644)).Should(BeNil())
		Expect(os.WriteFile(filepath.Join(d1, "header.tpl"), []byte("header from d1"), 0644)).Should(BeNil())
		Expect(os.WriteFile(filepath.Join(d2, "header.tpl"), []byte("header from d2"), 0644)).Should(BeNil())

		r = NewResolver(loader.NewDirLoader(specs.NewJessicaConfig(nil), ""))
	})

	Context("Without settings", func() {

		It("Reads the locator as a path", func() {
			content, found, err := r.Resolve(ctx, filepath.Join(d2, "footer.tpl"), nil)
			Expect(err).Should(BeNil())
			Expect(found).To(BeTrue())
			Expect(content).To(Equal("footer from d2"))
		})

		It("Propagates the read failure", func() {
			_, found, err := r.Resolve(ctx, filepath.Join(d1, "footer.tpl"), nil)
			Expect(found).To(BeFalse())
			Expect(errors.Is(err, loader.ErrNotFound)).To(BeTrue())
		})
	})

	Context("Single view directory", func() {

		It("Joins the name with the directory and the extension", func() {
			content, found, err := r.Resolve(ctx, "footer", specs.NewViewDir(d2, "tpl"))
			Expect(err).Should(BeNil())
			Expect(found).To(BeTrue())
			Expect(content).To(Equal("footer from d2"))
		})

		It("Propagates the read failure", func() {
			_, _, err := r.Resolve(ctx, "footer", specs.NewViewDir(d1, "tpl"))
			Expect(errors.Is(err, loader.ErrNotFound)).To(BeTrue())
		})

		It("Reads a locator with the extension directly", func() {
			content, _, err := r.Resolve(ctx, filepath.Join(d2, "footer.tpl"), specs.NewViewDir(d1, "tpl"))
			Expect(err).Should(BeNil())
			Expect(content).To(Equal("footer from d2"))
		})
	})

	Context("Search list", func() {

		It("Returns the first directory holding the partial", func() {
			content, found, err := r.Resolve(ctx, "footer", specs.NewViewSearch("tpl", d1, d2))
			Expect(err).Should(BeNil())
			Expect(found).To(BeTrue())
			Expect(content).To(Equal("footer from d2"))

			content, _, err = r.Resolve(ctx, "header", specs.NewViewSearch("tpl", d1, d2))
			Expect(err).Should(BeNil())
			Expect(content).To(Equal("header from d1"))

			content, _, err = r.Resolve(ctx, "header", specs.NewViewSearch("tpl", d2, d1))
			Expect(err).Should(BeNil())
			Expect(content).To(Equal("header from d2"))
		})

		It("Reports a missing partial without error", func() {
			content, found, err := r.Resolve(ctx, "sidebar", specs.NewViewSearch("tpl", d1, d2))
			Expect(err).Should(BeNil())
			Expect(found).To(BeFalse())
			Expect(content).To(Equal(""))
		})

		It("Keeps list order regardless of completion order", func() {
			mem := &slowLoader{
				files: map[string]string{
					"/a/p.tpl": "from a",
					"/b/p.tpl": "from b",
				},
				delays: map[string]time.Duration{
					"/a/p.tpl": 50 * time.Millisecond,
				},
			}
			r := NewResolver(mem)

			content, found, err := r.Resolve(ctx, "p", specs.NewViewSearch("tpl", "/a", "/b"))
			Expect(err).Should(BeNil())
			Expect(found).To(BeTrue())
			Expect(content).To(Equal("from a"))
		})

		It("Records failed reads as outcomes", func() {
			outcomes, err := r.Search(ctx, []string{
				filepath.Join(d1, "footer.tpl"),
				filepath.Join(d2, "footer.tpl"),
			})
			Expect(err).Should(BeNil())
			Expect(outcomes).To(HaveLen(2))
			Expect(outcomes[0].Found).To(BeFalse())
			Expect(outcomes[0].Err).ShouldNot(BeNil())
			Expect(outcomes[1].Found).To(BeTrue())
		})
	})

	Context("ResolveAll", func() {

		It("Resolves every partial", func() {
			ans, err := r.ResolveAll(ctx, map[string]string{
				"footer":  "footer",
				"header":  "header",
				"sidebar": "sidebar",
			}, specs.NewViewSearch("tpl", d1, d2))
			Expect(err).Should(BeNil())
			Expect(ans).To(Equal(map[string]string{
				"footer": "footer from d2",
				"header": "header from d1",
			}))
		})

		It("Fails when a partial can't be read", func() {
			_, err := r.ResolveAll(ctx, map[string]string{
				"footer": "footer",
				"header": "header",
			}, specs.NewViewDir(d1, "tpl"))

			var rerr *ResolutionError
			Expect(errors.As(err, &rerr)).To(BeTrue())
			Expect(rerr.Name).To(Equal("footer"))
			Expect(errors.Is(err, loader.ErrNotFound)).To(BeTrue())
		})

		It("Returns the names in declaration order", func() {
			Expect(SortedNames(map[string]string{"b": "", "a": "", "c": ""})).To(Equal([]string{"a", "b", "c"}))
		})
	})
})
