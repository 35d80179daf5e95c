package eval

import "github.com/qpanda/semfilter/value"

// applyFunction runs the named function dispatch (see
// expr.functionResultKind for the matching type-level table) against a
// concrete candidate value. It's a runtime mirror of that parse-time
// table: every pairing accepted there must be handled here.
func applyFunction(name string, v value.Value) (value.Value, bool) {
	switch name {
	case "port":
		switch sock := v.(type) {
		case value.IPSocketAddress:
			return value.Port{Val: sock.Port()}, true
		case value.IPv4SocketAddress:
			return value.Port{Val: sock.Port()}, true
		case value.IPv6SocketAddress:
			return value.Port{Val: sock.Port()}, true
		}
	case "ip":
		switch sock := v.(type) {
		case value.IPSocketAddress:
			return value.IPAddress{Val: sock.SocketAddr()}, true
		case value.IPv4SocketAddress:
			return value.IPv4Address{Val: sock.SocketAddr()}, true
		case value.IPv6SocketAddress:
			return value.IPv6Address{Val: sock.SocketAddr()}, true
		}
	}
	return nil, false
}
