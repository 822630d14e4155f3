// Package cli resolves the mqsni flag defaults, falling back to MQSNI_*
// environment variables when a flag is not given.
package cli
