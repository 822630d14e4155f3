package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/telekom/mq-sni/pkg/sni"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a flag value to a Format. An empty value means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

func WriteObject(w io.Writer, format Format, obj any) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(obj)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(data))
		return err
	case FormatText:
		return fmt.Errorf("text format requires a specific formatter")
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// WriteResult prints a successful conversion.
func WriteResult(w io.Writer, format Format, res sni.Result) error {
	if format != FormatText {
		return WriteObject(w, format, res)
	}
	if res.URLWarning {
		_, _ = fmt.Fprintf(w, "Warning: %s is a valid IBM MQ Channel name but the SNI generated will not be URL valid.\n", res.Channel)
	} else {
		_, _ = fmt.Fprintf(w, "Converting IBM MQ Channel name: %s\n", res.Channel)
	}
	_, err := fmt.Fprintf(w, "SNI format is: %s\n", res.SNI)
	return err
}

// WriteInvalid prints the rejection line for a channel name that failed validation.
func WriteInvalid(w io.Writer, name string) {
	_, _ = fmt.Fprintf(w, "Error: %s is not valid IBM MQ Channel name\n", name)
}

// WriteDecoded prints the channel name recovered from an SNI.
func WriteDecoded(w io.Writer, format Format, host, channel string) error {
	if format != FormatText {
		return WriteObject(w, format, struct {
			SNI     string `json:"sni" yaml:"sni"`
			Channel string `json:"channel" yaml:"channel"`
		}{host, channel})
	}
	_, err := fmt.Fprintf(w, "IBM MQ Channel name is: %s\n", channel)
	return err
}
