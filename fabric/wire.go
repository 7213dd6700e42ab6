package fabric

import "github.com/sarchlab/tardis/naming"

// WireChannels creates every channel the node's kind requires and binds each
// of them through the network. The backend is only used by memory channels
// and may be nil for nodes that have none.
func WireChannels(node Node, net *Network, backend naming.Named) {
	for _, spec := range RequiredChannels(node.Kind()) {
		ch := NewChannel(node, spec)
		node.AddChannel(ch)
		net.Bind(ch, backend)
	}
}
