package value_test

import (
	"testing"

	"github.com/qpanda/semfilter/value"
)

func TestRecogniseIPAddressFamily(t *testing.T) {
	if _, ok := value.RecogniseIPv4Address("10.10.0.7"); !ok {
		t.Error("expected 10.10.0.7 to recognise as an IPv4 address")
	}
	if _, ok := value.RecogniseIPv6Address("10.10.0.7"); ok {
		t.Error("10.10.0.7 must not recognise as an IPv6 address")
	}
	if _, ok := value.RecogniseIPv6Address("::1"); !ok {
		t.Error("expected ::1 to recognise as an IPv6 address")
	}
	if _, ok := value.RecogniseIPv4Address("::1"); ok {
		t.Error("::1 must not recognise as an IPv4 address")
	}
	if _, ok := value.RecogniseIPAddress("10.10.0.7"); !ok {
		t.Error("generic IpAddress should accept v4")
	}
	if _, ok := value.RecogniseIPAddress("::1"); !ok {
		t.Error("generic IpAddress should accept v6")
	}
}

func TestRecogniseIPSocketAddress(t *testing.T) {
	v4, ok := value.RecogniseIPv4SocketAddress("109.74.193.253:25")
	if !ok {
		t.Fatal("expected to recognise a v4 socket address")
	}
	if v4.(value.IPv4SocketAddress).Port() != 25 {
		t.Errorf("port = %d, want 25", v4.(value.IPv4SocketAddress).Port())
	}
	if _, ok := value.RecogniseIPv6SocketAddress("109.74.193.253:25"); ok {
		t.Error("a v4 socket address must not recognise as v6")
	}
	if _, ok := value.RecogniseIPv6SocketAddress("[::1]:8080"); !ok {
		t.Error("expected bracketed v6 socket address to recognise")
	}
}

func TestIPNetworkContains(t *testing.T) {
	network, ok := value.RecogniseIPv4Network("193.32.160.0/24")
	if !ok {
		t.Fatal("expected to recognise a v4 network")
	}
	addr, ok := value.RecogniseIPv4Address("193.32.160.143")
	if !ok {
		t.Fatal("expected to recognise a v4 address")
	}
	if !network.(value.IPv4Network).Contains(addr.(value.IPv4Address).Addr()) {
		t.Error("193.32.160.143 should be contained by 193.32.160.0/24")
	}

	other, _ := value.RecogniseIPv4Network("193.32.161.0/24")
	if other.(value.IPv4Network).Contains(addr.(value.IPv4Address).Addr()) {
		t.Error("193.32.160.143 should not be contained by 193.32.161.0/24")
	}
}
