package tor

import (
	"errors"
	"strings"
	"testing"
)

// Deterministic test addresses that do not belong to real services.
const (
	// testOnionV3Zero is derived from an all-zero public key.
	testOnionV3Zero = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaam2dqd.onion"
	// testOnionV3Seq is derived from the public key 0,1,2,...,31.
	testOnionV3Seq = "aaaqeayeaudaocajbifqydiob4ibceqtcqkrmfyydenbwha5dyp3kead.onion"
)

// TestIsValidV3Address tests v3 onion address validation.
func TestIsValidV3Address(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{name: "zero key address", address: testOnionV3Zero, want: true},
		{name: "sequential key address", address: testOnionV3Seq, want: true},
		{name: "uppercase", address: strings.ToUpper(testOnionV3Zero), want: true},
		{name: "broken checksum", address: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaam2dqe.onion", want: false},
		{name: "v2 address", address: "facebookcorewwwi.onion", want: false},
		{name: "missing suffix", address: strings.Repeat("a", 56), want: false},
		{name: "invalid base32 digit", address: strings.Repeat("1", 56) + ".onion", want: false},
		{name: "empty", address: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValidV3Address(tt.address); got != tt.want {
				t.Errorf("IsValidV3Address(%q) = %v, expected %v", tt.address, got, tt.want)
			}
		})
	}
}

// TestIsV2Address tests detection of retired v2 addresses.
func TestIsV2Address(t *testing.T) {
	t.Parallel()

	if !IsV2Address("facebookcorewwwi.onion") {
		t.Error("expected v2 address to be detected")
	}
	if IsV2Address(testOnionV3Zero) {
		t.Error("v3 address must not be reported as v2")
	}
}

// TestHostOf tests host extraction from onion references.
func TestHostOf(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"http://" + testOnionV3Zero + "/index.html": testOnionV3Zero,
		"https://" + testOnionV3Zero + ":443":       testOnionV3Zero,
		"  " + strings.ToUpper(testOnionV3Seq):      testOnionV3Seq,
		"forum.onion?page=2":                        "forum.onion",
	}
	for in, want := range tests {
		if got := HostOf(in); got != want {
			t.Errorf("HostOf(%q) = %q, expected %q", in, got, want)
		}
	}
}

// TestV3AddressFromPublicKey tests address derivation.
func TestV3AddressFromPublicKey(t *testing.T) {
	t.Parallel()

	addr, err := V3AddressFromPublicKey(make([]byte, 32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != testOnionV3Zero {
		t.Errorf("got %q, expected %q", addr, testOnionV3Zero)
	}
	if len(addr) != OnionV3TotalLength {
		t.Errorf("length = %d, expected %d", len(addr), OnionV3TotalLength)
	}

	seq := make([]byte, 32)
	for i := range seq {
		seq[i] = byte(i)
	}
	if addr, _ := V3AddressFromPublicKey(seq); addr != testOnionV3Seq {
		t.Errorf("got %q, expected %q", addr, testOnionV3Seq)
	}

	for _, n := range []int{0, 31, 33} {
		if _, err := V3AddressFromPublicKey(make([]byte, n)); !errors.Is(err, ErrInvalidOnionAddress) {
			t.Errorf("length %d: expected ErrInvalidOnionAddress, got %v", n, err)
		}
	}
}
