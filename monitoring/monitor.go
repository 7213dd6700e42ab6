// Package monitoring turns an assembled fabric into a web server that can be
// inspected from a browser.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"reflect"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/tardis/fabric"
	"github.com/sarchlab/tardis/monitoring/web"
	"github.com/sarchlab/tardis/tardis"
)

// Monitor serves the nodes, channels and routes of an assembled system.
type Monitor struct {
	system     *tardis.System
	portNumber int
	listener   net.Listener
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterSystem registers the system to be monitored.
func (m *Monitor) RegisterSystem(sys *tardis.System) {
	m.system = sys
}

// Handler returns the routes of the monitor.
func (m *Monitor) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/system", m.describeSystem)
	r.HandleFunc("/api/nodes", m.listNodes)
	r.HandleFunc("/api/node/{name}", m.listNodeDetails)
	r.HandleFunc("/api/field/{json}", m.listFieldValue)
	r.HandleFunc("/api/channels", m.listChannels)
	r.HandleFunc("/api/route/{src:[0-9]+}/{dst:[0-9]+}", m.route)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/").Handler(http.FileServer(web.GetAssets()))

	return r
}

// StartServer starts serving in the background and returns the URL of the
// monitor.
func (m *Monitor) StartServer() string {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.listener = listener

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring fabric with %s\n", url)

	handler := m.Handler()

	go func() {
		err := http.Serve(listener, handler)
		if err != nil && !strings.Contains(err.Error(), "use of closed") {
			dieOnErr(err)
		}
	}()

	return url
}

// StopServer stops a server started with StartServer.
func (m *Monitor) StopServer() {
	if m.listener != nil {
		m.listener.Close()
		m.listener = nil
	}
}

type systemRsp struct {
	ID                 string `json:"id"`
	Topology           string `json:"topology"`
	NumNodes           int    `json:"num_nodes"`
	NumRouters         int    `json:"num_routers"`
	NumVirtualNetworks int    `json:"num_virtual_networks"`
	NumBoundChannels   int    `json:"num_bound_channels"`
	Frozen             bool   `json:"frozen"`
}

func (m *Monitor) describeSystem(w http.ResponseWriter, _ *http.Request) {
	topo := m.system.Topology

	writeJSON(w, systemRsp{
		ID:                 m.system.ID,
		Topology:           topo.Name(),
		NumNodes:           topo.NumNodes(),
		NumRouters:         len(topo.Routers()),
		NumVirtualNetworks: topo.NumVirtualNetworks(),
		NumBoundChannels:   m.system.Network.NumBoundChannels(),
		Frozen:             m.system.Network.IsFrozen(),
	})
}

type nodeRsp struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Version     int    `json:"version"`
	Router      int    `json:"router"`
	NumChannels int    `json:"num_channels"`
}

func (m *Monitor) listNodes(w http.ResponseWriter, _ *http.Request) {
	topo := m.system.Topology
	rsp := make([]nodeRsp, 0, topo.NumNodes())

	for id, n := range topo.Nodes() {
		rsp = append(rsp, nodeRsp{
			ID:          id,
			Name:        n.Name(),
			Kind:        n.Kind().String(),
			Version:     n.Version(),
			Router:      topo.RouterOf(id),
			NumChannels: len(n.Channels()),
		})
	}

	writeJSON(w, rsp)
}

func (m *Monitor) listNodeDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	node := m.findNodeOr404(w, name)
	if node == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(node)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type fieldReq struct {
	NodeName  string `json:"node_name,omitempty"`
	FieldName string `json:"field_name,omitempty"`
}

func (m *Monitor) listFieldValue(w http.ResponseWriter, r *http.Request) {
	jsonString := mux.Vars(r)["json"]
	req := fieldReq{}

	err := json.Unmarshal([]byte(jsonString), &req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	node := m.findNodeOr404(w, req.NodeName)
	if node == nil {
		return
	}

	elem, err := m.walkFields(node, req.FieldName)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	writeJSON(w, map[string]string{
		"type":  elem.Type().String(),
		"value": fmt.Sprintf("%v", elem),
	})
}

type channelRsp struct {
	Node           string `json:"node"`
	Name           string `json:"name"`
	Class          string `json:"class"`
	Role           string `json:"role"`
	Ordered        bool   `json:"ordered"`
	VirtualNetwork int    `json:"virtual_network"`
	Peer           string `json:"peer"`
}

// listChannels lists channels, optionally filtered by the node and role query
// parameters.
func (m *Monitor) listChannels(w http.ResponseWriter, r *http.Request) {
	nodeFilter := r.URL.Query().Get("node")
	roleFilter := r.URL.Query().Get("role")

	rsp := []channelRsp{}

	for _, n := range m.system.Topology.Nodes() {
		if nodeFilter != "" && n.Name() != nodeFilter {
			continue
		}

		for _, ch := range n.Channels() {
			if roleFilter != "" && ch.Role().String() != roleFilter {
				continue
			}

			rsp = append(rsp, channelRsp{
				Node:           n.Name(),
				Name:           ch.ShortName(),
				Class:          ch.Class().String(),
				Role:           ch.Role().String(),
				Ordered:        ch.IsOrdered(),
				VirtualNetwork: int(ch.VirtualNetwork()),
				Peer:           ch.Peer(),
			})
		}
	}

	writeJSON(w, rsp)
}

func (m *Monitor) route(w http.ResponseWriter, r *http.Request) {
	src, _ := strconv.Atoi(mux.Vars(r)["src"])
	dst, _ := strconv.Atoi(mux.Vars(r)["dst"])

	path, err := m.system.Topology.Route(src, dst)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	writeJSON(w, path)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

type fieldFormatError struct {
	field string
}

func (e fieldFormatError) Error() string {
	return fmt.Sprintf("cannot walk into %q", e.field)
}

func (m *Monitor) walkFields(
	node interface{},
	fields string,
) (reflect.Value, error) {
	elem := reflect.ValueOf(node)

	fieldNames := strings.Split(fields, ".")

	for len(fieldNames) > 0 {
		switch elem.Kind() {
		case reflect.Ptr, reflect.Interface:
			if elem.IsNil() {
				return elem, fieldFormatError{fieldNames[0]}
			}

			elem = elem.Elem()
		case reflect.Struct:
			elem = elem.FieldByName(fieldNames[0])
			if !elem.IsValid() {
				return elem, fieldFormatError{fieldNames[0]}
			}

			fieldNames = fieldNames[1:]
		case reflect.Slice:
			index, err := strconv.Atoi(fieldNames[0])
			if err != nil || index < 0 || index >= elem.Len() {
				return elem, fieldFormatError{fieldNames[0]}
			}

			elem = elem.Index(index)
			fieldNames = fieldNames[1:]
		default:
			return elem, fieldFormatError{fieldNames[0]}
		}
	}

	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}

	return elem, nil
}

func (m *Monitor) findNodeOr404(
	w http.ResponseWriter,
	name string,
) fabric.Node {
	node, found := m.system.NodeByName(name)
	if !found {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Node not found"))
		dieOnErr(err)

		return nil
	}

	return node
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
