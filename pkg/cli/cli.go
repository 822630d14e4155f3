package cli

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

const (
	EnvOutput           = "MQSNI_OUTPUT"
	EnvVerbose          = "MQSNI_VERBOSE"
	EnvLegacyValidation = "MQSNI_LEGACY_VALIDATION"
)

// Settings holds the global mqsni options.
type Settings struct {
	// Output format: text, json or yaml
	Output string
	// Verbose enables debug logging on stderr
	Verbose bool
	// LegacyValidation only enforces the character set for one character names
	LegacyValidation bool
}

// DefaultSettings returns the flag defaults, taking MQSNI_* environment
// variables into account.
func DefaultSettings() Settings {
	return Settings{
		Output:           EnvString(EnvOutput, "text"),
		Verbose:          EnvBool(EnvVerbose, false),
		LegacyValidation: EnvBool(EnvLegacyValidation, false),
	}
}

func (s Settings) Print(log *zap.SugaredLogger) {
	log.Debugw("CLI settings",
		"output", s.Output,
		"verbose", s.Verbose,
		"legacy_validation", s.LegacyValidation,
	)
}

// EnvString returns the value of an environment variable, or the provided default if not set.
func EnvString(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// EnvBool returns the value of an environment variable as a bool, or the provided default if not set.
// Valid true values are "true", "1", "yes" (case-insensitive).
func EnvBool(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}
