package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/telekom/mq-sni/pkg/sni"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"table", "", true},
		{"JSON", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown output format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteResult_Text(t *testing.T) {
	tests := []struct {
		name string
		res  sni.Result
		want string
	}{
		{
			name: "converting",
			res:  sni.Result{Channel: "ABC123", SNI: "abc123.chl.mq.ibm.com"},
			want: "Converting IBM MQ Channel name: ABC123\nSNI format is: abc123.chl.mq.ibm.com\n",
		},
		{
			name: "warning",
			res:  sni.Result{Channel: "QM1.", SNI: "qm12e-.chl.mq.ibm.com", URLWarning: true},
			want: "Warning: QM1. is a valid IBM MQ Channel name but the SNI generated will not be URL valid.\n" +
				"SNI format is: qm12e-.chl.mq.ibm.com\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, WriteResult(buf, FormatText, tt.res))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteResult_Structured(t *testing.T) {
	res := sni.Result{
		Channel:     "QM1.",
		SNI:         "qm12e-.chl.mq.ibm.com",
		URLWarning:  true,
		URLProblems: []string{"label 0 is bad"},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteResult(buf, FormatJSON, res))
	var fromJSON sni.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, res, fromJSON)
	assert.Contains(t, buf.String(), `"urlWarning": true`)

	buf.Reset()
	require.NoError(t, WriteResult(buf, FormatYAML, res))
	var fromYAML sni.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, res, fromYAML)
	assert.Contains(t, buf.String(), "sni: qm12e-.chl.mq.ibm.com")
}

func TestWriteResult_OmitsEmptyProblems(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteResult(buf, FormatJSON, sni.Result{Channel: "A", SNI: "a.chl.mq.ibm.com"}))
	assert.NotContains(t, buf.String(), "urlProblems")
}

func TestWriteInvalid(t *testing.T) {
	buf := &bytes.Buffer{}
	WriteInvalid(buf, "BAD-NAME!")
	assert.Equal(t, "Error: BAD-NAME! is not valid IBM MQ Channel name\n", buf.String())
}

func TestWriteDecoded(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteDecoded(buf, FormatText, "a2e-b.chl.mq.ibm.com", "A.B"))
	assert.Equal(t, "IBM MQ Channel name is: A.B\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteDecoded(buf, FormatJSON, "a2e-b.chl.mq.ibm.com", "A.B"))
	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "A.B", got["channel"])
	assert.Equal(t, "a2e-b.chl.mq.ibm.com", got["sni"])
}

func TestWriteObject_TextFormat(t *testing.T) {
	err := WriteObject(&bytes.Buffer{}, FormatText, struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text format requires a specific formatter")
}

func TestWriteObject_UnknownFormat(t *testing.T) {
	err := WriteObject(&bytes.Buffer{}, Format("invalid"), struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format: invalid")
}

func TestWriteObject_OutputEndsWithNewline(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, WriteObject(buf, format, map[string]string{"key": "value"}))
			assert.True(t, strings.HasSuffix(buf.String(), "\n"), "output should end with newline")
		})
	}
}
