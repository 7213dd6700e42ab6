package naming

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Name", func() {
	It("should parse indexed tokens", func() {
		n := Parse("Ruby.L1Cache[3].TriggerQueue")

		Expect(n.Tokens).To(HaveLen(3))
		Expect(n.Tokens[1].ElemName).To(Equal("L1Cache"))
		Expect(n.Tokens[1].Index).To(Equal([]int{3}))
		Expect(n.Last().ElemName).To(Equal("TriggerQueue"))
		Expect(n.Parent()).To(Equal("Ruby.L1Cache[3]"))
		Expect(n.String()).To(Equal("Ruby.L1Cache[3].TriggerQueue"))
	})

	It("should build names", func() {
		Expect(BuildName("", "Ruby")).To(Equal("Ruby"))
		Expect(BuildName("Ruby", "Network")).To(Equal("Ruby.Network"))
		Expect(BuildNameWithIndex("Ruby", "DMA", 1)).To(Equal("Ruby.DMA[1]"))
	})

	DescribeTable("validity",
		func(name string, valid bool) {
			Expect(IsValid(name)).To(Equal(valid))
		},
		Entry("dotted", "Ruby.Directory[0]", true),
		Entry("trailing dot", "Ruby.", false),
		Entry("lower case", "Ruby.l1Cache", false),
		Entry("underscore", "Ruby.L1_Cache", false),
		Entry("open bracket", "Ruby.L1Cache[0", false),
		Entry("non integer index", "Ruby.L1Cache[a]", false),
	)

	It("should panic on invalid names", func() {
		Expect(func() { NameMustBeValid("Ruby..A") }).To(Panic())
		Expect(func() { MakeNamedBase("bad") }).To(Panic())
	})
})
