package console_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/sarchlab/z80field/config"
	"github.com/sarchlab/z80field/console"
	"github.com/sarchlab/z80field/insts"
)

var _ = Describe("ParseCommand", func() {
	DescribeTable("should parse edits",
		func(line string, want console.Command) {
			cmd, err := console.ParseCommand(line)
			Expect(err).NotTo(HaveOccurred())
			Expect(cmd).To(Equal(want))
		},
		Entry("bare opcode", "0x3E", console.Command{Field: insts.FieldOpcode, Text: "0x3E"}),
		Entry("upper prefix", " 0X3e", console.Command{Field: insts.FieldOpcode, Text: "0X3e"}),
		Entry("op assignment", "op=0x76", console.Command{Field: insts.FieldOpcode, Text: "0x76"}),
		Entry("field assignment", "p=0", console.Command{Field: insts.FieldP, Text: "0"}),
		Entry("spaced assignment", "Y = 5", console.Command{Field: insts.FieldY, Text: "5"}),
		Entry("field and value", "z 7", console.Command{Field: insts.FieldZ, Text: "7"}),
		Entry("empty value", "q=", console.Command{Field: insts.FieldQ, Text: ""}),
	)

	It("should reject unknown fields", func() {
		_, err := console.ParseCommand("w=1")
		Expect(errors.Is(err, insts.ErrUnknownField)).To(BeTrue())
	})

	It("should reject lines that are not commands", func() {
		_, err := console.ParseCommand("decode everything now")
		Expect(err).To(MatchError(console.ErrUnknownCommand))
	})
})

var _ = Describe("Session", func() {
	var (
		out     *bytes.Buffer
		cfg     *config.DisplayConfig
		logger  *logrus.Logger
		hook    *test.Hook
		session *console.Session
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		cfg = config.DefaultDisplayConfig()
		cfg.Color = false

		logger, hook = test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		session = console.NewSession(insts.NewForm(0x3E), console.NewRenderer(out, cfg), logger)
	})

	It("should apply an edit and print the result", func() {
		quit, err := session.Execute("p=0")
		Expect(err).NotTo(HaveOccurred())
		Expect(quit).To(BeFalse())

		Expect(session.Form().Y).To(Equal("1"))
		Expect(session.Form().Opcode).To(Equal("0xE"))
		Expect(out.String()).To(ContainSubstring("opcode 0xE\n"))
		Expect(out.String()).To(ContainSubstring("x y z  0 1 6\n"))
	})

	It("should log applied edits", func() {
		_, err := session.Execute("0x76")
		Expect(err).NotTo(HaveOccurred())

		entry := hook.LastEntry()
		Expect(entry).NotTo(BeNil())
		Expect(entry.Message).To(Equal("edit applied"))
		Expect(entry.Data).To(HaveKeyWithValue("field", "opcode"))
		Expect(entry.Data).To(HaveKeyWithValue("opcode", "0x76"))
	})

	It("should keep the form and report bad input", func() {
		before := session.Form()

		_, err := session.Execute("0xZZ")
		Expect(errors.Is(err, insts.ErrParse)).To(BeTrue())
		Expect(session.Form()).To(Equal(before))
		Expect(out.String()).To(BeEmpty())

		entry := hook.LastEntry()
		Expect(entry.Message).To(Equal("edit rejected"))
		Expect(entry.Data).To(HaveKey(logrus.ErrorKey))
	})

	It("should report unknown commands", func() {
		_, err := session.Execute("frobnicate")
		Expect(err).To(MatchError(console.ErrUnknownCommand))
	})

	It("should ignore blank lines", func() {
		quit, err := session.Execute("   ")
		Expect(err).NotTo(HaveOccurred())
		Expect(quit).To(BeFalse())
		Expect(out.String()).To(BeEmpty())
	})

	DescribeTable("should stop on quit commands",
		func(line string) {
			quit, err := session.Execute(line)
			Expect(err).NotTo(HaveOccurred())
			Expect(quit).To(BeTrue())
		},
		Entry("quit", "quit"),
		Entry("exit", "EXIT"),
	)

	It("should print the form on show", func() {
		_, err := session.Execute("show")
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal(
			"opcode 0x3E\n" +
				"x y z  0 7 6\n" +
				"p q    3 1\n" +
				"bits   00 111 110  (00 11 1 110)\n"))
	})

	It("should print help", func() {
		_, err := session.Execute("help")
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(HavePrefix("commands:"))
	})
})

var _ = Describe("Renderer", func() {
	var (
		out *bytes.Buffer
		cfg *config.DisplayConfig
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		cfg = config.DefaultDisplayConfig()
		cfg.Color = false
	})

	It("should omit the binary line when disabled", func() {
		cfg.ShowBinary = false
		r := console.NewRenderer(out, cfg)

		Expect(r.Render(insts.NewForm(0xC3))).To(Succeed())
		Expect(out.String()).To(Equal("opcode 0xC3\nx y z  3 0 3\np q    0 0\n"))
	})

	It("should print json", func() {
		cfg.Format = config.FormatJSON
		r := console.NewRenderer(out, cfg)

		Expect(r.Render(insts.NewForm(0x3E))).To(Succeed())
		Expect(out.String()).To(MatchJSON(`{"opcode":"0x3E","x":0,"y":7,"z":6,"p":3,"q":1}`))
	})

	It("should print masked values for out-of-range text", func() {
		cfg.Format = config.FormatJSON
		r := console.NewRenderer(out, cfg)

		form, err := insts.NewForm(0x3E).Apply(insts.FieldX, "7")
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Render(form)).To(Succeed())
		Expect(out.String()).To(MatchJSON(`{"opcode":"0xFE","x":3,"y":7,"z":6,"p":3,"q":1}`))
	})

	It("should fail on a form that does not parse", func() {
		r := console.NewRenderer(out, cfg)
		Expect(r.Render(insts.Form{})).To(HaveOccurred())
	})

	It("should print errors without color", func() {
		r := console.NewRenderer(out, cfg)
		r.Error(errors.New("boom"))
		Expect(out.String()).To(Equal("error: boom\n"))
	})
})

var _ = Describe("Complete", func() {
	It("should complete field names", func() {
		Expect(console.Complete("o")).To(Equal([]string{"op=", "opcode="}))
	})

	It("should complete commands case-insensitively", func() {
		Expect(console.Complete("Q")).To(Equal([]string{"q=", "quit"}))
	})

	It("should offer everything for an empty line", func() {
		Expect(console.Complete("")).To(HaveLen(12))
	})

	It("should return nothing for unknown prefixes", func() {
		Expect(console.Complete("w")).To(BeEmpty())
	})
})
