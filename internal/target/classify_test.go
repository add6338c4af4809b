package target

import "testing"

// TestClassify tests target kind detection.
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Kind
	}{
		{"", KindUnknown},
		{"   ", KindUnknown},
		{"John Doe", KindUnknown},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaam2dqd.onion", KindOnion},
		{"http://aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaam2dqd.onion/forum", KindOnion},
		{"forum.onion", KindDomain},
		{"192.168.1.0/24", KindCIDR},
		{"2001:db8::/32", KindCIDR},
		{"192.168.1.1", KindIPv4},
		{" 10.0.0.1 ", KindIPv4},
		{"2001:db8::1", KindIPv6},
		{"40.7128,-74.0060", KindCoordinates},
		{"40.7128, -74.0060", KindCoordinates},
		{"95.0,10.0", KindUnknown},
		{"admin@example.com", KindEmail},
		{"@suspicious_account", KindHandle},
		{"@username", KindHandle},
		{"d41d8cd98f00b204e9800998ecf8427e", KindHash},
		{"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", KindHash},
		{"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", KindBTCAddress},
		{"bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", KindBTCAddress},
		{"0x52908400098527886E0F7030069857D2E4169EE7", KindETHAddress},
		{"https://example.com/login", KindURL},
		{"example.com", KindDomain},
		{"mail.example.co.uk", KindDomain},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %q, expected %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestKindLabel tests that every kind has a label.
func TestKindLabel(t *testing.T) {
	t.Parallel()

	for k := range labels {
		if k.Label() == "" {
			t.Errorf("kind %q has an empty label", k)
		}
	}
	if got := Kind("bogus").Label(); got != KindUnknown.Label() {
		t.Errorf("unknown kind label = %q", got)
	}
}
