package l1cache

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tardis/config"
	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/sequencer"
	"github.com/sarchlab/tardis/timing"
)

var _ = Describe("Builder", func() {
	var (
		net     *fabric.Network
		domain  timing.ClockDomain
		builder Builder
	)

	BeforeEach(func() {
		net = fabric.NewNetwork("Ruby.Network")
		domain = timing.NewSrcClockDomain("Cpu[0].ClkDomain", 2*timing.GHz)
		builder = MakeBuilder().
			WithNetwork(net).
			WithClockDomain(domain).
			WithICache(32*config.KB, 2).
			WithDCache(64*config.KB, 4).
			WithPorts(8).
			WithSendEvictions(true)
	})

	It("should build a controller named after its core", func() {
		l1 := builder.WithVersion(3).Build("Ruby")

		Expect(l1.Name()).To(Equal("Ruby.L1Cache[3]"))
		Expect(l1.Kind()).To(Equal(fabric.KindL1Cache))
		Expect(l1.Version()).To(Equal(3))
		Expect(l1.TransitionsPerCycle).To(Equal(8))
		Expect(l1.SendEvictions).To(BeTrue())
		Expect(l1.ProgTSGlobal).To(Equal(1))
		Expect(l1.ClockDomain).To(BeIdenticalTo(domain))
	})

	It("should configure the cache arrays", func() {
		l1 := builder.Build("Ruby")

		Expect(l1.L1ICache.Size).To(Equal(32 * config.KB))
		Expect(l1.L1ICache.Assoc).To(Equal(2))
		Expect(l1.L1ICache.IsICache).To(BeTrue())
		Expect(l1.L1DCache.Size).To(Equal(64 * config.KB))
		Expect(l1.L1DCache.Assoc).To(Equal(4))
		Expect(l1.L1DCache.IsICache).To(BeFalse())
		Expect(l1.CacheMemory.Size).To(Equal(16 * config.KB))
		Expect(l1.CacheMemory.Assoc).To(Equal(8))
	})

	DescribeTable("index-bit offset follows the line size",
		func(lineSize, bit int) {
			l1 := builder.WithBlockSizeBits(config.Log2(lineSize)).Build("Ruby")

			Expect(l1.L1ICache.StartIndexBit).To(Equal(bit))
			Expect(l1.L1DCache.StartIndexBit).To(Equal(bit))
			Expect(l1.CacheMemory.StartIndexBit).To(Equal(bit))
		},
		Entry("64-byte lines", 64, 6),
		Entry("128-byte lines", 128, 7),
	)

	It("should own a sequencer bound to the data cache", func() {
		l1 := builder.WithVersion(1).Build("Ruby")

		seq := l1.Sequencer
		dcache, ok := seq.DCache()
		Expect(ok).To(BeTrue())
		Expect(dcache).To(Equal(l1.L1DCache))
		Expect(seq.Kind()).To(Equal(sequencer.KindCPU))
		Expect(seq.Version()).To(Equal(1))
		Expect(seq.ClockDomain()).To(BeIdenticalTo(domain))
		Expect(seq.Owner()).To(BeIdenticalTo(l1))
		Expect(seq.Name()).To(Equal("Ruby.L1Cache[1].Sequencer"))
	})

	It("should wire every required channel", func() {
		l1 := builder.Build("Ruby")

		Expect(fabric.VerifyBindings([]fabric.Node{l1}, 6)).To(Succeed())
		Expect(l1.MustGetChannel(fabric.RequestFromDir).Role()).
			To(Equal(fabric.RoleInbound))
		Expect(l1.MustGetChannel(fabric.ResponseToDir).Role()).
			To(Equal(fabric.RoleOutbound))
		Expect(l1.MustGetChannel(fabric.TriggerQueue).IsOrdered()).To(BeTrue())
	})

	It("should panic without a network or a clock domain", func() {
		Expect(func() {
			MakeBuilder().WithClockDomain(domain).Build("Ruby")
		}).To(Panic())
		Expect(func() {
			MakeBuilder().WithNetwork(net).Build("Ruby")
		}).To(Panic())
	})
})
