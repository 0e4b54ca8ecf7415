/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/macaroni-os/jessica/pkg/logger"
	specs "github.com/macaroni-os/jessica/pkg/specs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	var (
		config *specs.JessicaConfig
		buf    *bytes.Buffer
		log    *JessicaLogger
	)

	BeforeEach(func() {
		config = specs.NewJessicaConfig(nil)
		config.GetLogging().Level = "info"
		config.GetLogging().Color = false
		config.GetLogging().EnableEmoji = false
		buf = &bytes.Buffer{}
		log = NewJessicaLogger(config)
		log.Writer = buf
	})

	It("Filters messages above the configured level", func() {
		log.Debug("hidden")
		log.Info("shown", 1)
		Expect(buf.String()).To(Equal("shown 1\n"))
	})

	It("Shows debug messages in debug mode", func() {
		config.GetGeneral().Debug = true
		log.Debug("visible")
		Expect(buf.String()).To(Equal("visible\n"))
	})

	It("Strips emoji shortcodes when disabled", func() {
		log.Warning(":truck:loading")
		Expect(buf.String()).To(Equal("loading\n"))
	})

	It("Ignores messages on a nil logger", func() {
		var l *JessicaLogger
		Expect(func() { l.Info("nothing") }).ToNot(Panic())
	})

	It("Writes to the log file", func() {
		config.GetLogging().Path = filepath.Join(GinkgoT().TempDir(), "jessica.log")
		Expect(log.InitLogger2File()).Should(BeNil())

		log.Error("failure")
		log.Sync()

		data, err := os.ReadFile(config.GetLogging().Path)
		Expect(err).Should(BeNil())
		Expect(string(data)).To(ContainSubstring("failure"))
	})
})
