package dma

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/naming"
	"github.com/sarchlab/tardis/sequencer"
)

var _ = Describe("BuildSet", func() {
	var (
		net     *fabric.Network
		sources []Source
	)

	BeforeEach(func() {
		net = fabric.NewNetwork("Ruby.Network")
		sources = []Source{
			naming.MakeNamedBase("System.Disk.DMA"),
			naming.MakeNamedBase("System.Ethernet.DMA"),
		}
	})

	It("should build one controller per source in order", func() {
		dmas, io := BuildSet("Ruby", sources, false, 8, net)

		Expect(io).To(BeNil())
		Expect(dmas).To(HaveLen(2))
		for i, d := range dmas {
			Expect(d.Version()).To(Equal(i))
			Expect(d.Kind()).To(Equal(fabric.KindDMA))
			Expect(d.IsIO()).To(BeFalse())
			Expect(d.TransitionsPerCycle).To(Equal(8))
			Expect(d.Sequencer.Kind()).To(Equal(sequencer.KindDMA))
			Expect(d.Sequencer.Version()).To(Equal(i))
			Expect(d.Sequencer.Source()).To(Equal(sources[i]))
			Expect(d.Sequencer.Owner()).To(BeIdenticalTo(d))
		}
		Expect(dmas[1].Name()).To(Equal("Ruby.DMA[1]"))
	})

	It("should wire DMA controllers without a trigger queue", func() {
		dmas, _ := BuildSet("Ruby", sources, false, 4, net)

		Expect(fabric.VerifyBindings([]fabric.Node{dmas[0], dmas[1]}, 6)).
			To(Succeed())
		Expect(dmas[0].Channels()).To(HaveLen(4))
		Expect(dmas[0].ChannelByName(fabric.TriggerQueue)).To(BeNil())
		Expect(dmas[0].MustGetChannel(fabric.ResponseFromDir).Role()).
			To(Equal(fabric.RoleInbound))
		Expect(dmas[0].MustGetChannel(fabric.RequestToDir).Role()).
			To(Equal(fabric.RoleOutbound))
		Expect(dmas[0].MustGetChannel(fabric.ResponseToDir).Role()).
			To(Equal(fabric.RoleOutbound))
	})

	It("should append the I/O controller in full-system mode", func() {
		dmas, io := BuildSet("Ruby", sources, true, 4, net)

		Expect(io).ToNot(BeNil())
		Expect(io.IsIO()).To(BeTrue())
		Expect(io.Name()).To(Equal("Ruby.IO"))
		Expect(io.Version()).To(Equal(len(sources)))
		Expect(io.Sequencer.Version()).To(Equal(len(sources)))
		Expect(io.Sequencer.HasSource()).To(BeFalse())
		Expect(io.TransitionsPerCycle).To(Equal(DefaultIOTransitionsPerCycle))
		Expect(io.MustGetChannel(fabric.TriggerQueue).IsOrdered()).To(BeTrue())

		nodes := []fabric.Node{dmas[0], dmas[1], io}
		Expect(fabric.VerifyBindings(nodes, 6)).To(Succeed())
		Expect(fabric.CheckOrder(nodes)).To(Succeed())
	})

	It("should build only the I/O controller without sources", func() {
		dmas, io := BuildSet("Ruby", nil, true, 4, net)

		Expect(dmas).To(BeEmpty())
		Expect(io.Version()).To(Equal(0))
	})

	It("should panic without a network", func() {
		Expect(func() { MakeBuilder().Build("Ruby") }).To(Panic())
	})
})
