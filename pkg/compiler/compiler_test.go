/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package compiler_test

import (
	"errors"

	. "github.com/macaroni-os/jessica/pkg/compiler"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type engineInfo struct {
	Name  string
	Place string
	owner string
}

type EngineMeta struct {
	License string
}

type engineRelease struct {
	*EngineMeta
	Version string
}

var _ = Describe("Expression compiler", func() {

	Context("Precompile with named parameters", func() {

		It("binds the names positionally", func() {
			r := Precompile("${a}-${b}", "a,b")
			out, err := r("x", "y")
			Expect(err).Should(BeNil())
			Expect(out).To(Equal("x-y"))
		})

		It("accepts the names as separate entries", func() {
			r := Precompile("${engineName} in the whole ${place}!", "engineName", "place")
			out, err := r("jessica", "multiverse")
			Expect(err).Should(BeNil())
			Expect(out).To(Equal("jessica in the whole multiverse!"))
		})

		It("trims spaces around the names", func() {
			r := Precompile("${engineName} in the whole ${place}!", "engineName, place")
			out, err := r("jessica", "multiverse")
			Expect(err).Should(BeNil())
			Expect(out).To(Equal("jessica in the whole multiverse!"))
		})

		It("returns an undefined reference error as a value", func() {
			r := Precompile("${engineName} in the whole ${place}!", "engineName")
			out, err := r("jessica", "multiverse")
			Expect(out).To(Equal(""))
			Expect(errors.Is(err, ErrUndefinedReference)).To(BeTrue())

			var rerr *ReferenceError
			Expect(errors.As(err, &rerr)).To(BeTrue())
			Expect(rerr.Name).To(Equal("place"))
		})

		It("treats a name without value as unbound", func() {
			r := Precompile("${a}-${b}", "a,b")
			_, err := r("x")
			Expect(errors.Is(err, ErrUndefinedReference)).To(BeTrue())
		})

		It("can be invoked many times", func() {
			r := Precompile("hello ${who}", "who")
			for _, who := range []string{"Ann", "Bo", "Cy"} {
				out, err := r(who)
				Expect(err).Should(BeNil())
				Expect(out).To(Equal("hello " + who))
			}
		})
	})

	Context("Default parameter", func() {

		It("exposes map fields through $", func() {
			r := Precompile("${$.engineName} in the whole ${$.place}!")
			out, err := r(map[string]interface{}{
				"engineName": "jessica",
				"place":      "multiverse",
			})
			Expect(err).Should(BeNil())
			Expect(out).To(Equal("jessica in the whole multiverse!"))
		})

		It("exposes exported struct fields through $", func() {
			r := Precompile("${ $.Name } @ ${$.Place}", "")
			out, err := r(&engineInfo{Name: "jessica", Place: "home"})
			Expect(err).Should(BeNil())
			Expect(out).To(Equal("jessica @ home"))
		})

		It("fails on unknown or unexported fields", func() {
			r := Precompile("${$.owner}")
			_, err := r(engineInfo{owner: "me"})
			var rerr *ReferenceError
			Expect(errors.As(err, &rerr)).To(BeTrue())
			Expect(rerr.Name).To(Equal("$.owner"))
		})

		It("reads promoted fields of embedded pointers", func() {
			r := Precompile("${$.Version} ${$.License}")
			out, err := r(engineRelease{EngineMeta: &EngineMeta{License: "MIT"}, Version: "1.0"})
			Expect(err).Should(BeNil())
			Expect(out).To(Equal("1.0 MIT"))
		})

		It("treats promoted fields of a nil embedded pointer as unbound", func() {
			r := Precompile("${$.License}")
			var out string
			var err error
			Expect(func() { out, err = r(engineRelease{Version: "1.0"}) }).NotTo(Panic())
			Expect(out).To(Equal(""))
			var rerr *ReferenceError
			Expect(errors.As(err, &rerr)).To(BeTrue())
			Expect(rerr.Name).To(Equal("$.License"))

			_, err = Evaluate(Compile("${$.License}"), &engineRelease{})
			Expect(errors.Is(err, ErrUndefinedReference)).To(BeTrue())
		})
	})

	Context("Compile", func() {

		It("raises evaluation failures", func() {
			r := Compile("${missing}", "present")
			Expect(func() { r("x") }).To(PanicWith(&ReferenceError{Name: "missing"}))
		})

		It("recovers raised failures through Evaluate", func() {
			out, err := Evaluate(Compile("${missing}", "present"), "x")
			Expect(out).To(Equal(""))
			Expect(errors.Is(err, ErrUndefinedReference)).To(BeTrue())

			out, err = Evaluate(Compile("${present}!", "present"), "x")
			Expect(err).Should(BeNil())
			Expect(out).To(Equal("x!"))
		})

		It("turns panics without an error into errors", func() {
			var out string
			var err error
			Expect(func() {
				out, err = Evaluate(func(values ...interface{}) string {
					panic("boom")
				})
			}).NotTo(Panic())
			Expect(out).To(Equal(""))
			Expect(err).ShouldNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("boom"))
		})

		It("lets the last duplicated name win", func() {
			out, err := New("${a}", "a", "a").Execute("first", "second")
			Expect(err).Should(BeNil())
			Expect(out).To(Equal("second"))
		})
	})

	Context("Syntax", func() {

		It("reports syntax errors only on execution", func() {
			t := New("hello ${name", "name")
			Expect(t).ToNot(BeNil())

			_, err := t.Execute("x")
			Expect(errors.Is(err, ErrSyntax)).To(BeTrue())
		})

		It("rejects expressions beyond named values", func() {
			_, err := Precompile("${a + b}", "a,b")("1", "2")
			Expect(errors.Is(err, ErrSyntax)).To(BeTrue())
		})

		It("rejects invalid parameter names", func() {
			_, err := Precompile("${a}", "a,1b")("x", "y")
			Expect(errors.Is(err, ErrSyntax)).To(BeTrue())

			_, err = Precompile("${a}", "a,,b")("x", "y")
			Expect(errors.Is(err, ErrSyntax)).To(BeTrue())
		})

		It("keeps escaped delimiters", func() {
			out, err := Precompile(`\${a} is ${a}`, "a")("x")
			Expect(err).Should(BeNil())
			Expect(out).To(Equal("${a} is x"))
		})

		It("keeps text without expressions verbatim", func() {
			out, err := Precompile("plain $ {text} with ünicode", "a")("x")
			Expect(err).Should(BeNil())
			Expect(out).To(Equal("plain $ {text} with ünicode"))
		})
	})

	Context("Values", func() {

		It("writes values without escaping", func() {
			out, err := Precompile("${a}", "a")("<b>&</b>")
			Expect(err).Should(BeNil())
			Expect(out).To(Equal("<b>&</b>"))
		})

		It("stringifies scalars, nil and slices", func() {
			Expect(Stringify(nil)).To(Equal("null"))
			Expect(Stringify(42)).To(Equal("42"))
			Expect(Stringify(true)).To(Equal("true"))
			Expect(Stringify(1.5)).To(Equal("1.5"))
			Expect(Stringify([]interface{}{1, "a", nil})).To(Equal("1,a,null"))
			Expect(Stringify([]string{"x", "y"})).To(Equal("x,y"))
		})
	})

	Context("ParseParams", func() {

		It("defaults to $", func() {
			params, err := ParseParams()
			Expect(err).Should(BeNil())
			Expect(params).To(Equal([]string{DefaultParam}))

			params, err = ParseParams("")
			Expect(err).Should(BeNil())
			Expect(params).To(Equal([]string{DefaultParam}))
		})

		It("splits comma separated lists", func() {
			params, err := ParseParams("a, b", "c")
			Expect(err).Should(BeNil())
			Expect(params).To(Equal([]string{"a", "b", "c"}))
		})
	})
})
