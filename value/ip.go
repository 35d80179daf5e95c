package value

import (
	"net/netip"
)

// IPAddress, IPv4Address, and IPv6Address wrap netip.Addr. IPAddress
// matches either family; IPv4Address and IPv6Address only match their
// own family, recognised by the presence (or absence) of a ':' in the
// raw text.
type IPAddress struct{ Val netip.Addr }
type IPv4Address struct{ Val netip.Addr }
type IPv6Address struct{ Val netip.Addr }

func (IPAddress) Kind() Kind       { return KindIPAddress }
func (a IPAddress) String() string { return a.Val.String() }
func (a IPAddress) CompareTo(o Value) int { return compareAddr(a.Val, o.(IPAddress).Val) }
func (a IPAddress) Addr() netip.Addr { return a.Val }

func (IPv4Address) Kind() Kind       { return KindIPv4Address }
func (a IPv4Address) String() string { return a.Val.String() }
func (a IPv4Address) CompareTo(o Value) int { return compareAddr(a.Val, o.(IPv4Address).Val) }
func (a IPv4Address) Addr() netip.Addr { return a.Val }

func (IPv6Address) Kind() Kind       { return KindIPv6Address }
func (a IPv6Address) String() string { return a.Val.String() }
func (a IPv6Address) CompareTo(o Value) int { return compareAddr(a.Val, o.(IPv6Address).Val) }
func (a IPv6Address) Addr() netip.Addr { return a.Val }

func compareAddr(a, b netip.Addr) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

func RecogniseIPAddress(text string) (Value, bool) {
	a, err := netip.ParseAddr(text)
	if err != nil {
		return nil, false
	}
	return IPAddress{Val: a}, true
}

func RecogniseIPv4Address(text string) (Value, bool) {
	a, err := netip.ParseAddr(text)
	if err != nil || !a.Is4() {
		return nil, false
	}
	return IPv4Address{Val: a}, true
}

func RecogniseIPv6Address(text string) (Value, bool) {
	a, err := netip.ParseAddr(text)
	if err != nil || a.Is4() {
		return nil, false
	}
	return IPv6Address{Val: a}, true
}

// IPSocketAddress, IPv4SocketAddress, and IPv6SocketAddress wrap
// netip.AddrPort ("host:port", IPv6 hosts bracketed). Ordering compares
// address first, then port.
type IPSocketAddress struct{ Val netip.AddrPort }
type IPv4SocketAddress struct{ Val netip.AddrPort }
type IPv6SocketAddress struct{ Val netip.AddrPort }

func (IPSocketAddress) Kind() Kind       { return KindIPSocketAddress }
func (a IPSocketAddress) String() string { return a.Val.String() }
func (a IPSocketAddress) CompareTo(o Value) int { return compareAddrPort(a.Val, o.(IPSocketAddress).Val) }
func (a IPSocketAddress) Port() uint16      { return a.Val.Port() }
func (a IPSocketAddress) SocketAddr() netip.Addr { return a.Val.Addr() }

func (IPv4SocketAddress) Kind() Kind       { return KindIPv4SocketAddress }
func (a IPv4SocketAddress) String() string { return a.Val.String() }
func (a IPv4SocketAddress) CompareTo(o Value) int {
	return compareAddrPort(a.Val, o.(IPv4SocketAddress).Val)
}
func (a IPv4SocketAddress) Port() uint16      { return a.Val.Port() }
func (a IPv4SocketAddress) SocketAddr() netip.Addr { return a.Val.Addr() }

func (IPv6SocketAddress) Kind() Kind       { return KindIPv6SocketAddress }
func (a IPv6SocketAddress) String() string { return a.Val.String() }
func (a IPv6SocketAddress) CompareTo(o Value) int {
	return compareAddrPort(a.Val, o.(IPv6SocketAddress).Val)
}
func (a IPv6SocketAddress) Port() uint16      { return a.Val.Port() }
func (a IPv6SocketAddress) SocketAddr() netip.Addr { return a.Val.Addr() }

func compareAddrPort(a, b netip.AddrPort) int {
	if c := compareAddr(a.Addr(), b.Addr()); c != 0 {
		return c
	}
	switch {
	case a.Port() < b.Port():
		return -1
	case a.Port() > b.Port():
		return 1
	default:
		return 0
	}
}

func RecogniseIPSocketAddress(text string) (Value, bool) {
	ap, err := netip.ParseAddrPort(text)
	if err != nil {
		return nil, false
	}
	return IPSocketAddress{Val: ap}, true
}

func RecogniseIPv4SocketAddress(text string) (Value, bool) {
	ap, err := netip.ParseAddrPort(text)
	if err != nil || !ap.Addr().Is4() {
		return nil, false
	}
	return IPv4SocketAddress{Val: ap}, true
}

func RecogniseIPv6SocketAddress(text string) (Value, bool) {
	ap, err := netip.ParseAddrPort(text)
	if err != nil || ap.Addr().Is4() {
		return nil, false
	}
	return IPv6SocketAddress{Val: ap}, true
}

// IPNetwork, IPv4Network, and IPv6Network wrap netip.Prefix (CIDR
// notation). Ordering compares the base address, then the prefix
// length (a narrower prefix, e.g. /24, sorts after a wider one, e.g.
// /16, for addresses that otherwise tie).
type IPNetwork struct{ Val netip.Prefix }
type IPv4Network struct{ Val netip.Prefix }
type IPv6Network struct{ Val netip.Prefix }

func (IPNetwork) Kind() Kind       { return KindIPNetwork }
func (n IPNetwork) String() string { return n.Val.String() }
func (n IPNetwork) CompareTo(o Value) int { return comparePrefix(n.Val, o.(IPNetwork).Val) }

func (IPv4Network) Kind() Kind       { return KindIPv4Network }
func (n IPv4Network) String() string { return n.Val.String() }
func (n IPv4Network) CompareTo(o Value) int { return comparePrefix(n.Val, o.(IPv4Network).Val) }

func (IPv6Network) Kind() Kind       { return KindIPv6Network }
func (n IPv6Network) String() string { return n.Val.String() }
func (n IPv6Network) CompareTo(o Value) int { return comparePrefix(n.Val, o.(IPv6Network).Val) }

func comparePrefix(a, b netip.Prefix) int {
	if c := compareAddr(a.Addr(), b.Addr()); c != 0 {
		return c
	}
	switch {
	case a.Bits() < b.Bits():
		return -1
	case a.Bits() > b.Bits():
		return 1
	default:
		return 0
	}
}

// Contains reports whether the network contains addr, matching the
// "in" comparator between an $ipAddress-like token and an
// $ipNetwork-like literal.
func (n IPNetwork) Contains(addr netip.Addr) bool   { return n.Val.Contains(addr) }
func (n IPv4Network) Contains(addr netip.Addr) bool { return n.Val.Contains(addr) }
func (n IPv6Network) Contains(addr netip.Addr) bool { return n.Val.Contains(addr) }

func RecogniseIPNetwork(text string) (Value, bool) {
	p, err := netip.ParsePrefix(text)
	if err != nil {
		return nil, false
	}
	return IPNetwork{Val: p}, true
}

func RecogniseIPv4Network(text string) (Value, bool) {
	p, err := netip.ParsePrefix(text)
	if err != nil || !p.Addr().Is4() {
		return nil, false
	}
	return IPv4Network{Val: p}, true
}

func RecogniseIPv6Network(text string) (Value, bool) {
	p, err := netip.ParsePrefix(text)
	if err != nil || p.Addr().Is4() {
		return nil, false
	}
	return IPv6Network{Val: p}, true
}
