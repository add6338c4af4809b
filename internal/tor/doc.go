// Package tor routes the dashboard's backend traffic through SOCKS5 and
// knows how to recognize onion service addresses.
//
// A Dialer wraps a SOCKS5 proxy (an external Tor daemon, or any SOCKS5
// proxy) and produces an http.Transport for the API client. EmbeddedTor
// launches a private Tor daemon with tornago for analysts who do not run one.
// The onion helpers validate v3 addresses, including the SHA3 checksum, and
// are used when classifying investigation targets.
package tor
