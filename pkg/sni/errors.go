package sni

import (
	"errors"
	"fmt"
)

// ErrInvalidChannelName is matched by every *InvalidChannelNameError.
var ErrInvalidChannelName = errors.New("invalid IBM MQ channel name")

var (
	ErrMissingSuffix   = errors.New("missing " + Suffix + " suffix")
	ErrMalformedSNI    = errors.New("malformed SNI")
	ErrNonCanonicalSNI = errors.New("SNI is not in canonical form")
)

// InvalidChannelNameError reports a name that failed length or character set validation.
type InvalidChannelNameError struct {
	Name string
}

func (e *InvalidChannelNameError) Error() string {
	return fmt.Sprintf("%s is not valid IBM MQ Channel name", e.Name)
}

func (e *InvalidChannelNameError) Is(target error) bool {
	return target == ErrInvalidChannelName
}
