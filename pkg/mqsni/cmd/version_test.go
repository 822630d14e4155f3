package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/telekom/mq-sni/pkg/cli"
	"github.com/telekom/mq-sni/pkg/version"
)

func setTestVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion := version.Version
	origGitCommit := version.GitCommit
	origBuildDate := version.BuildDate
	t.Cleanup(func() {
		version.Version = origVersion
		version.GitCommit = origGitCommit
		version.BuildDate = origBuildDate
	})
	version.Version = v
	version.GitCommit = commit
	version.BuildDate = date
}

func TestVersionCommand(t *testing.T) {
	setTestVersion(t, "v1.2.3", "abc123-dirty", "2026-01-17T15:00:00Z")

	tests := []struct {
		name         string
		args         []string
		wantContains []string
		validateJSON bool
		validateYAML bool
	}{
		{
			name:         "default output format",
			args:         []string{},
			wantContains: []string{"mqsni v1.2.3", "commit: abc123-dirty", "built: 2026-01-17T15:00:00Z"},
		},
		{
			name:         "json output format",
			args:         []string{"-o", "json"},
			validateJSON: true,
			wantContains: []string{`"gitCommit": "abc123-dirty"`},
		},
		{
			name:         "yaml output format",
			args:         []string{"--output", "yaml"},
			validateYAML: true,
			wantContains: []string{"version: v1.2.3", "gitCommit: abc123-dirty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cmd := NewVersionCommand()
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())

			if tt.validateJSON {
				var info version.BuildInfo
				require.NoError(t, json.Unmarshal(buf.Bytes(), &info), "output should be valid JSON")
				require.Equal(t, "v1.2.3", info.Version)
				require.NotEmpty(t, info.GoVersion)
				require.False(t, info.BuildTime.IsZero())
			}
			if tt.validateYAML {
				var info version.BuildInfo
				require.NoError(t, yaml.Unmarshal(buf.Bytes(), &info), "output should be valid YAML")
				require.Equal(t, "abc123-dirty", info.GitCommit)
			}
			for _, want := range tt.wantContains {
				require.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestVersionCommand_UnknownFormat(t *testing.T) {
	cmd := NewVersionCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-o", "table"})
	require.ErrorContains(t, cmd.Execute(), "unknown output format")
}

func TestVersionCommand_ThroughRoot(t *testing.T) {
	setTestVersion(t, "v0.0.1", "test123", "unknown")

	// An invalid global output format must not break version.
	root, stdout, _ := newTestRoot("", cli.Settings{Output: "bogus"})
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	require.Equal(t, "mqsni v0.0.1 (commit: test123, built: unknown)\n", stdout.String())
}
