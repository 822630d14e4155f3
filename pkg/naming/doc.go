// Package naming checks generated SNI strings against the RFC 1123 hostname
// rules that strict TLS and URL parsers enforce.
package naming
