package fabric

// ChannelSpec is the wiring rule for one channel: its name, the message class
// it carries, its endpoint role and its ordering.
type ChannelSpec struct {
	Name     string
	Class    MessageClass
	Role     Role
	Ordering Ordering
}

// VirtualNetwork returns the virtual network the channel uses on the
// interconnect. Local and memory channels have none.
func (s ChannelSpec) VirtualNetwork() VirtualNetwork {
	if s.Role != RoleOutbound && s.Role != RoleInbound {
		return NoVirtualNetwork
	}

	return s.Class.VirtualNetwork()
}

// Channel names.
const (
	MandatoryQueue     = "MandatoryQueue"
	TriggerQueue       = "TriggerQueue"
	RequestToDir       = "RequestToDir"
	ResponseToDir      = "ResponseToDir"
	RequestFromDir     = "RequestFromDir"
	ResponseFromDir    = "ResponseFromDir"
	RequestFromCache   = "RequestFromCache"
	ResponseFromCache  = "ResponseFromCache"
	RequestToCache     = "RequestToCache"
	ResponseToCache    = "ResponseToCache"
	RequestToMemory    = "RequestToMemory"
	ResponseFromMemory = "ResponseFromMemory"
	DMARequestToDir    = "DMARequestToDir"
	DMAResponseFromDir = "DMAResponseFromDir"
)

var l1Channels = []ChannelSpec{
	{MandatoryQueue, ClassMandatory, RoleLocal, Unordered},
	{RequestFromDir, ClassForward, RoleInbound, Unordered},
	{ResponseFromDir, ClassResponse, RoleInbound, Unordered},
	{RequestToDir, ClassRequest, RoleOutbound, Unordered},
	{ResponseToDir, ClassResponse, RoleOutbound, Unordered},
	// Retries inside the protocol must leave in the order they were issued.
	{TriggerQueue, ClassTrigger, RoleLocal, Ordered},
}

var directoryChannels = []ChannelSpec{
	{RequestFromCache, ClassRequest, RoleInbound, Unordered},
	{ResponseFromCache, ClassResponse, RoleInbound, Unordered},
	{ResponseToCache, ClassResponse, RoleOutbound, Unordered},
	{RequestToCache, ClassForward, RoleOutbound, Unordered},
	{RequestToDir, ClassForward, RoleOutbound, Unordered},
	{ResponseToDir, ClassResponse, RoleOutbound, Unordered},
	{ResponseFromDir, ClassResponse, RoleInbound, Unordered},
	{RequestFromDir, ClassForward, RoleInbound, Unordered},
	{RequestToMemory, ClassMemory, RoleMemory, Unordered},
	{ResponseFromMemory, ClassMemory, RoleMemory, Unordered},
	{TriggerQueue, ClassTrigger, RoleLocal, Ordered},
	{DMARequestToDir, ClassDMARequest, RoleInbound, Unordered},
	{DMAResponseFromDir, ClassDMAResponse, RoleOutbound, Unordered},
}

// DMA controllers have no trigger queue; only the I/O controller needs
// in-order completion notices.
var dmaChannels = []ChannelSpec{
	{MandatoryQueue, ClassMandatory, RoleLocal, Unordered},
	{ResponseFromDir, ClassDMAResponse, RoleInbound, Unordered},
	{RequestToDir, ClassDMARequest, RoleOutbound, Unordered},
	{ResponseToDir, ClassResponse, RoleOutbound, Unordered},
}

var ioChannels = append(
	append([]ChannelSpec{}, dmaChannels...),
	ChannelSpec{TriggerQueue, ClassTrigger, RoleLocal, Ordered},
)

// RequiredChannels returns the channels a node of the given kind must have,
// in the order they are wired. The returned slice is a copy.
func RequiredChannels(kind NodeKind) []ChannelSpec {
	var specs []ChannelSpec

	switch kind {
	case KindL1Cache:
		specs = l1Channels
	case KindDirectory:
		specs = directoryChannels
	case KindDMA:
		specs = dmaChannels
	case KindIO:
		specs = ioChannels
	default:
		panic("unknown node kind " + kind.String())
	}

	list := make([]ChannelSpec, len(specs))
	copy(list, specs)

	return list
}
