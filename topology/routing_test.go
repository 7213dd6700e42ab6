package topology

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Table", func() {
	It("should find defined routes and fall back to the default", func() {
		t := NewTable()
		t.DefineRoute(3, 7)

		Expect(t.FindNextHop(3)).To(Equal(7))
		Expect(t.FindNextHop(4)).To(Equal(LocalPort))

		t.DefineDefaultRoute(9)
		Expect(t.FindNextHop(4)).To(Equal(9))
	})
})

var _ = Describe("Mesh routing table", func() {
	var t *meshRoutingTable

	BeforeEach(func() {
		t = &meshRoutingTable{
			x: 1, y: 1,
			top: 1, left: 3, right: 5, bottom: 7,
			dstTable: map[int]coordinate{
				0: {0, 0}, 2: {2, 0}, 4: {1, 1}, 7: {1, 2}, 1: {1, 0},
			},
		}
		t.DefineDefaultRoute(LocalPort)
	})

	It("should route along X first", func() {
		Expect(t.FindNextHop(0)).To(Equal(3))
		Expect(t.FindNextHop(2)).To(Equal(5))
	})

	It("should route along Y when X matches", func() {
		Expect(t.FindNextHop(1)).To(Equal(1))
		Expect(t.FindNextHop(7)).To(Equal(7))
	})

	It("should deliver locally", func() {
		Expect(t.FindNextHop(4)).To(Equal(LocalPort))
	})

	It("should ignore explicit routes", func() {
		t.DefineRoute(0, 99)

		Expect(t.FindNextHop(0)).To(Equal(3))
	})
})
