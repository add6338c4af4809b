package target

import (
	"net/netip"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/nao1215/osintnexus/internal/tor"
)

// Kind is the detected category of a target string.
type Kind string

// Target kinds, in the order Classify tries them.
const (
	KindUnknown     Kind = "unknown"
	KindOnion       Kind = "onion"
	KindCIDR        Kind = "cidr"
	KindIPv4        Kind = "ipv4"
	KindIPv6        Kind = "ipv6"
	KindCoordinates Kind = "coordinates"
	KindEmail       Kind = "email"
	KindHandle      Kind = "handle"
	KindHash        Kind = "hash"
	KindBTCAddress  Kind = "btc-address"
	KindETHAddress  Kind = "eth-address"
	KindURL         Kind = "url"
	KindDomain      Kind = "domain"
)

var labels = map[Kind]string{
	KindUnknown:     "Free text",
	KindOnion:       "Onion service (v3)",
	KindCIDR:        "IP range",
	KindIPv4:        "IPv4 address",
	KindIPv6:        "IPv6 address",
	KindCoordinates: "Coordinates",
	KindEmail:       "Email address",
	KindHandle:      "Social handle",
	KindHash:        "Hash digest",
	KindBTCAddress:  "Bitcoin address",
	KindETHAddress:  "Ethereum address",
	KindURL:         "URL",
	KindDomain:      "Domain",
}

// Label returns a human readable name for k.
func (k Kind) Label() string {
	if l, ok := labels[k]; ok {
		return l
	}
	return labels[KindUnknown]
}

// String returns the kind identifier.
func (k Kind) String() string {
	return string(k)
}

var (
	coordinatesRegex = regexp.MustCompile(`^(-?\d{1,3}(?:\.\d+)?)\s*,\s*(-?\d{1,3}(?:\.\d+)?)$`)
	emailRegex       = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	handleRegex      = regexp.MustCompile(`^@[A-Za-z0-9_.]{1,30}$`)
	hashRegex        = regexp.MustCompile(`^(?:[a-fA-F0-9]{32}|[a-fA-F0-9]{40}|[a-fA-F0-9]{64}|[a-fA-F0-9]{128})$`)
	btcLegacyRegex   = regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$`)
	btcBech32Regex   = regexp.MustCompile(`^bc1[a-z0-9]{39,59}$`)
	ethRegex         = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	domainRegex      = regexp.MustCompile(`^(?i)(?:[a-z0-9](?:[a-z0-9\-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}$`)
)

// Classify returns the kind of s. Leading and trailing space is ignored.
// An empty string is KindUnknown.
func Classify(s string) Kind {
	s = strings.TrimSpace(s)
	if s == "" {
		return KindUnknown
	}

	if tor.IsValidV3Address(tor.HostOf(s)) {
		return KindOnion
	}
	if _, err := netip.ParsePrefix(s); err == nil {
		return KindCIDR
	}
	if addr, err := netip.ParseAddr(s); err == nil {
		if addr.Is4() || addr.Is4In6() {
			return KindIPv4
		}
		return KindIPv6
	}
	if isCoordinates(s) {
		return KindCoordinates
	}

	switch {
	case emailRegex.MatchString(s):
		return KindEmail
	case handleRegex.MatchString(s):
		return KindHandle
	case hashRegex.MatchString(s):
		return KindHash
	case ethRegex.MatchString(s):
		return KindETHAddress
	case btcLegacyRegex.MatchString(s), btcBech32Regex.MatchString(s):
		return KindBTCAddress
	case isURL(s):
		return KindURL
	case domainRegex.MatchString(s):
		return KindDomain
	}
	return KindUnknown
}

// isCoordinates accepts "lat,lng" with lat in [-90,90] and lng in [-180,180].
func isCoordinates(s string) bool {
	m := coordinatesRegex.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return false
	}
	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func isURL(s string) bool {
	if !strings.Contains(s, "://") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
