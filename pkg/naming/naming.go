package naming

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

// HostnameProblems returns the reasons host is not a valid RFC 1123 hostname.
// An empty slice means the host is valid. Each label is checked on its own so
// the offending label is named in the message.
func HostnameProblems(host string) []string {
	if host == "" {
		return []string{"hostname must not be empty"}
	}

	var problems []string
	if len(host) > validation.DNS1123SubdomainMaxLength {
		problems = append(problems, validation.MaxLenError(validation.DNS1123SubdomainMaxLength))
	}
	for i, label := range strings.Split(host, ".") {
		for _, msg := range validation.IsDNS1123Label(label) {
			problems = append(problems, fmt.Sprintf("label %d (%q): %s", i, label, msg))
		}
	}
	return problems
}

// IsValidHostname reports whether host passes HostnameProblems.
func IsValidHostname(host string) bool {
	return len(HostnameProblems(host)) == 0
}
