package cli_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/cli"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/testutil"
)

func TestParse_LongFlag(t *testing.T) {
	t.Parallel()

	cfg, exit, err := cli.Parse([]string{"--pantheon", "./configs", "--log-level", "debug", "--ops-port", "9090"}, io.Discard)
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, "./configs", cfg.PantheonPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, 9090, cfg.OpsPort)
}

func TestParse_PositionalPath(t *testing.T) {
	t.Parallel()

	cfg, exit, err := cli.Parse([]string{"pantheon.hcl"}, io.Discard)
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, "pantheon.hcl", cfg.PantheonPath)
}

func TestParse_ShorthandFlag(t *testing.T) {
	t.Parallel()

	cfg, exit, err := cli.Parse([]string{"-p", "./configs"}, io.Discard)
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, "./configs", cfg.PantheonPath)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()

	var out testutil.SafeBuffer
	cfg, exit, err := cli.Parse(nil, &out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "bad log format",
			args:    []string{"--pantheon", "x", "--log-format", "yaml"},
			wantMsg: "invalid log-format",
		},
		{
			name:    "bad log level",
			args:    []string{"--pantheon", "x", "--log-level", "verbose"},
			wantMsg: "invalid log-level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, exit, err := cli.Parse(tc.args, io.Discard)
			require.False(t, exit)
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
