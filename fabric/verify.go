package fabric

import (
	"errors"
	"fmt"
)

var (
	// ErrUnboundChannel is returned when a node misses a required channel or
	// a required channel is not bound.
	ErrUnboundChannel = errors.New("unbound channel")

	// ErrChannelPolicy is returned when a channel does not follow the wiring
	// policy of its node kind, or when a node carries a channel its kind does
	// not require.
	ErrChannelPolicy = errors.New("channel violates wiring policy")

	// ErrNodeOrder is returned when the node list is not sorted by kind or the
	// versions do not match the positions.
	ErrNodeOrder = errors.New("node order violated")
)

// VerifyBindings checks that every node has exactly the channels its kind
// requires, each bound once, with the policy's role and ordering, and that
// every virtual network used is below numVirtualNetworks.
func VerifyBindings(nodes []Node, numVirtualNetworks int) error {
	for _, node := range nodes {
		if err := verifyNode(node, numVirtualNetworks); err != nil {
			return err
		}
	}

	return nil
}

func verifyNode(node Node, numVirtualNetworks int) error {
	required := RequiredChannels(node.Kind())

	for _, spec := range required {
		ch := node.ChannelByName(spec.Name)
		if ch == nil {
			return fmt.Errorf("%w: %s has no %s",
				ErrUnboundChannel, node.Name(), spec.Name)
		}

		if !ch.IsBound() {
			return fmt.Errorf("%w: %s", ErrUnboundChannel, ch.Name())
		}

		if ch.Spec() != spec {
			return fmt.Errorf("%w: %s is %s/%s, expected %s/%s",
				ErrChannelPolicy, ch.Name(),
				ch.Role(), ch.Spec().Ordering, spec.Role, spec.Ordering)
		}

		if ch.IsOrdered() != (spec.Class == ClassTrigger) {
			return fmt.Errorf("%w: only trigger queues are ordered, %s is %s",
				ErrChannelPolicy, ch.Name(), ch.Spec().Ordering)
		}

		vnet := ch.VirtualNetwork()
		if vnet != NoVirtualNetwork && int(vnet) >= numVirtualNetworks {
			return fmt.Errorf("%w: %s uses virtual network %d of %d",
				ErrChannelPolicy, ch.Name(), vnet, numVirtualNetworks)
		}
	}

	// Every required channel is present, so a longer list holds extras.
	if len(node.Channels()) != len(required) {
		return fmt.Errorf("%w: %s has %d channels, %s requires %d",
			ErrChannelPolicy, node.Name(), len(node.Channels()),
			node.Kind(), len(required))
	}

	return nil
}

// CheckOrder checks that nodes are sorted L1 caches, directories, DMA
// controllers, then at most one I/O controller. L1 and DMA versions must equal
// their position within their group, directory versions must be distinct, and
// the I/O controller's version must equal the number of DMA controllers.
func CheckOrder(nodes []Node) error {
	counts := make(map[NodeKind]int)
	dirVersions := make(map[int]bool)
	lastKind := KindL1Cache

	for i, node := range nodes {
		kind := node.Kind()
		if kind < lastKind {
			return fmt.Errorf("%w: %s (%s) at position %d follows a %s",
				ErrNodeOrder, node.Name(), kind, i, lastKind)
		}

		lastKind = kind

		if err := checkVersion(node, counts, dirVersions); err != nil {
			return err
		}

		counts[kind]++
	}

	return nil
}

func checkVersion(
	node Node,
	counts map[NodeKind]int,
	dirVersions map[int]bool,
) error {
	switch node.Kind() {
	case KindL1Cache, KindDMA:
		if node.Version() != counts[node.Kind()] {
			return fmt.Errorf("%w: %s has version %d at group position %d",
				ErrNodeOrder, node.Name(), node.Version(), counts[node.Kind()])
		}
	case KindDirectory:
		if dirVersions[node.Version()] {
			return fmt.Errorf("%w: duplicated directory version %d",
				ErrNodeOrder, node.Version())
		}

		dirVersions[node.Version()] = true
	case KindIO:
		if counts[KindIO] > 0 {
			return fmt.Errorf("%w: more than one I/O controller", ErrNodeOrder)
		}

		if node.Version() != counts[KindDMA] {
			return fmt.Errorf("%w: I/O controller has version %d, expected %d",
				ErrNodeOrder, node.Version(), counts[KindDMA])
		}
	}

	return nil
}
