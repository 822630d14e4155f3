// Package sni converts IBM MQ channel names into the SNI hostname form a queue
// manager advertises when it serves a certificate per channel, and validates
// channel names against the MQ object naming rules.
package sni
