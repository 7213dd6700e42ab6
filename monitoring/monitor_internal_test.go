package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tardis/config"
	"github.com/sarchlab/tardis/tardis"
)

type sampleStruct struct {
	field1 int
	field2 string
	field3 *sampleStruct
	field4 []sampleStruct
}

var _ = Describe("Monitor", func() {
	var (
		m       *Monitor
		sys     *tardis.System
		handler http.Handler
	)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return rec
	}

	BeforeEach(func() {
		opts := config.Default()
		opts.NumCPUs = 2
		opts.FullSystem = true

		var err error
		sys, err = tardis.MakeBuilder().WithOptions(opts).Build("Ruby").Assemble()
		Expect(err).ToNot(HaveOccurred())

		m = NewMonitor()
		m.RegisterSystem(sys)
		handler = m.Handler()
	})

	It("should describe the system", func() {
		rec := get("/api/system")

		Expect(rec.Code).To(Equal(http.StatusOK))
		rsp := systemRsp{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.ID).To(Equal(sys.ID))
		Expect(rsp.Topology).To(Equal("Crossbar"))
		Expect(rsp.NumNodes).To(Equal(4))
		Expect(rsp.NumVirtualNetworks).To(Equal(6))
		Expect(rsp.Frozen).To(BeTrue())
	})

	It("should list nodes in topology order", func() {
		rec := get("/api/nodes")

		var rsp []nodeRsp
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp).To(HaveLen(4))
		Expect(rsp[0].Name).To(Equal("Ruby.L1Cache[0]"))
		Expect(rsp[2].Kind).To(Equal("Directory"))
		Expect(rsp[3].Name).To(Equal("Ruby.IO"))
		Expect(rsp[3].NumChannels).To(Equal(5))
	})

	It("should filter channels", func() {
		rec := get("/api/channels?node=" + url.QueryEscape("Ruby.IO") +
			"&role=local")

		var rsp []channelRsp
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp).To(HaveLen(2))
		for _, ch := range rsp {
			Expect(ch.Peer).To(Equal("Ruby.IO"))
		}
	})

	It("should serialize node details", func() {
		rec := get("/api/node/" + url.PathEscape("Ruby.L1Cache[1]"))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.Len()).To(BeNumerically(">", 0))
	})

	It("should return 404 for unknown nodes", func() {
		rec := get("/api/node/Ruby.Nothing")

		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("should read a field of a node", func() {
		req := url.PathEscape(
			`{"node_name":"Ruby.L1Cache[0]","field_name":"TransitionsPerCycle"}`)

		rec := get("/api/field/" + req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		rsp := map[string]string{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp["type"]).To(Equal("int"))
		Expect(rsp["value"]).To(Equal("4"))
	})

	It("should report routes", func() {
		rec := get("/api/route/0/2")

		var path []int
		Expect(json.Unmarshal(rec.Body.Bytes(), &path)).To(Succeed())
		Expect(path).To(Equal([]int{0, 4, 2}))

		Expect(get("/api/route/0/9").Code).To(Equal(http.StatusNotFound))
	})

	It("should serve the page", func() {
		rec := get("/")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(HavePrefix("<!DOCTYPE html>"))
	})

	It("should walk int fields", func() {
		s := &sampleStruct{
			field1: 1,
		}

		elem, err := m.walkFields(s, "field1")

		Expect(err).To(BeNil())
		Expect(elem.Kind()).To(Equal(reflect.Int))
		Expect(elem.Int()).To(Equal(int64(1)))
	})

	It("should walk recursively", func() {
		s := &sampleStruct{
			field3: &sampleStruct{
				field2: "abc",
			},
		}

		elem, err := m.walkFields(s, "field3.field2")

		Expect(err).To(BeNil())
		Expect(elem.Kind()).To(Equal(reflect.String))
		Expect(elem.String()).To(Equal("abc"))
	})

	It("should walk slice recursively", func() {
		s := &sampleStruct{
			field4: []sampleStruct{{
				field4: []sampleStruct{
					{field1: 1},
				},
			}, {}},
		}

		elem, err := m.walkFields(s, "field4.0.field4.0.field1")

		Expect(err).To(BeNil())
		Expect(elem.Int()).To(Equal(int64(1)))
	})

	It("should reject bad paths", func() {
		s := &sampleStruct{field4: []sampleStruct{{}}}

		_, err := m.walkFields(s, "field4.3")
		Expect(err).To(HaveOccurred())

		_, err = m.walkFields(s, "missing")
		Expect(err).To(HaveOccurred())

		_, err = m.walkFields(s, "field3.field1")
		Expect(err).To(HaveOccurred())
	})
})
