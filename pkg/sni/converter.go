package sni

import (
	"go.uber.org/zap"

	"github.com/telekom/mq-sni/pkg/naming"
)

// Mode selects how channel names are validated.
type Mode string

const (
	// ModeStrict checks every character against the allowed set.
	ModeStrict Mode = "strict"
	// ModeLegacy only checks the character set of one character names, see ValidateLegacy.
	ModeLegacy Mode = "legacy"
)

// Result is the outcome of converting a single channel name.
type Result struct {
	Channel     string   `json:"channel" yaml:"channel"`
	SNI         string   `json:"sni" yaml:"sni"`
	URLWarning  bool     `json:"urlWarning" yaml:"urlWarning"`
	URLProblems []string `json:"urlProblems,omitempty" yaml:"urlProblems,omitempty"`
}

// Converter validates and converts channel names.
type Converter struct {
	mode Mode
	log  *zap.SugaredLogger
}

// Option configures a Converter.
type Option func(*Converter)

// WithMode sets the validation mode. Unknown modes fall back to ModeStrict.
func WithMode(mode Mode) Option {
	return func(c *Converter) {
		if mode == ModeLegacy {
			c.mode = ModeLegacy
			return
		}
		c.mode = ModeStrict
	}
}

// WithLogger sets the logger used for conversion diagnostics.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Converter) {
		if log != nil {
			c.log = log
		}
	}
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		mode: ModeStrict,
		log:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) Mode() Mode {
	return c.mode
}

// Validate applies the converter's validation mode to name.
func (c *Converter) Validate(name string) bool {
	if c.mode == ModeLegacy {
		return ValidateLegacy(name)
	}
	return Validate(name)
}

// Run validates name and converts it. Nothing is converted when validation
// fails; the returned error then matches ErrInvalidChannelName.
func (c *Converter) Run(name string) (Result, error) {
	if !c.Validate(name) {
		c.log.Debugw("Rejected channel name", "channel", name, "mode", string(c.mode))
		return Result{}, &InvalidChannelNameError{Name: name}
	}

	res := Result{
		Channel:    name,
		URLWarning: NeedsURLWarning(name),
	}
	res.SNI = Convert(name)
	res.URLProblems = naming.HostnameProblems(res.SNI)

	if res.URLWarning {
		c.log.Debugw("Converted channel name with URL warning", "channel", name, "sni", res.SNI, "problems", res.URLProblems)
	} else {
		c.log.Debugw("Converted channel name", "channel", name, "sni", res.SNI)
	}
	return res, nil
}
