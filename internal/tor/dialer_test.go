package tor

import (
	"context"
	"errors"
	"net"
	"testing"
)

// fakeProxy starts a listener that answers the SOCKS5 greeting with reply
// and then closes the connection.
func fakeProxy(t *testing.T, reply []byte) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0") //nolint:noctx // test code
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		greeting := make([]byte, 3)
		_, _ = conn.Read(greeting)
		_, _ = conn.Write(reply)
	}()

	return ln.Addr().String()
}

// TestNewDialer tests proxy address validation.
func TestNewDialer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		address string
		valid   bool
	}{
		{"127.0.0.1:9050", true},
		{"localhost:9150", true},
		{"[::1]:9050", true},
		{"", false},
		{"127.0.0.1", false},
		{":9050", false},
		{"127.0.0.1:0", false},
		{"127.0.0.1:70000", false},
		{"127.0.0.1:socks", false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			t.Parallel()

			d, err := NewDialer(tt.address)
			if tt.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if d.ProxyAddress() != tt.address {
					t.Errorf("ProxyAddress() = %q", d.ProxyAddress())
				}
				return
			}
			if !errors.Is(err, ErrInvalidProxyAddress) {
				t.Errorf("expected ErrInvalidProxyAddress, got %v", err)
			}
		})
	}
}

// TestDialerProbe tests the SOCKS5 greeting check.
func TestDialerProbe(t *testing.T) {
	t.Parallel()

	t.Run("accepts unauthenticated SOCKS5", func(t *testing.T) {
		t.Parallel()

		d, err := NewDialer(fakeProxy(t, []byte{0x05, 0x00}))
		if err != nil {
			t.Fatalf("NewDialer: %v", err)
		}
		if err := d.Probe(context.Background()); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("rejects SOCKS5 requiring auth", func(t *testing.T) {
		t.Parallel()

		d, _ := NewDialer(fakeProxy(t, []byte{0x05, 0xFF}))
		if err := d.Probe(context.Background()); !errors.Is(err, ErrProxyNotSOCKS5) {
			t.Errorf("expected ErrProxyNotSOCKS5, got %v", err)
		}
	})

	t.Run("rejects HTTP server", func(t *testing.T) {
		t.Parallel()

		d, _ := NewDialer(fakeProxy(t, []byte("HTTP/1.1 400 Bad Request\r\n\r\n")))
		if err := d.Probe(context.Background()); !errors.Is(err, ErrProxyNotSOCKS5) {
			t.Errorf("expected ErrProxyNotSOCKS5, got %v", err)
		}
	})

	t.Run("reports unreachable proxy", func(t *testing.T) {
		t.Parallel()

		ln, err := net.Listen("tcp", "127.0.0.1:0") //nolint:noctx // test code
		if err != nil {
			t.Fatalf("listen: %v", err)
		}
		addr := ln.Addr().String()
		_ = ln.Close()

		d, _ := NewDialer(addr)
		if err := d.Probe(context.Background()); !errors.Is(err, ErrProxyUnreachable) {
			t.Errorf("expected ErrProxyUnreachable, got %v", err)
		}
	})
}

// TestDialerTransport tests that the transport dials through the dialer.
func TestDialerTransport(t *testing.T) {
	t.Parallel()

	d, err := NewDialer("127.0.0.1:9050")
	if err != nil {
		t.Fatalf("NewDialer: %v", err)
	}
	tr := d.Transport()
	if tr.DialContext == nil {
		t.Fatal("expected DialContext to be set")
	}
	if !tr.DisableCompression {
		t.Error("expected compression to be disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := d.DialContext(ctx, "tcp", "example.com:80"); err == nil {
		t.Error("expected error dialing with a cancelled context")
	}
}
