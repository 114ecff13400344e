// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bassosimone/dnslabel"
	"github.com/stretchr/testify/require"
)

// runCmd executes the root command and returns stdout, stderr and the error.
func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCheckCmd(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		args        []string
		expectedOut string
		expectErr   bool
	}{
		{
			name:        "ValidArgs",
			args:        []string{"check", "www", "my-host"},
			expectedOut: "ok www\nok my-host\n",
		},
		{
			name:        "InvalidArg",
			args:        []string{"check", "www", "-bad"},
			expectedOut: "ok www\nerror -bad: " + dnslabel.ErrStrayHyphen.Message() + "\n",
			expectErr:   true,
		},
		{
			name:        "LeadingHyphenAfterSeparator",
			args:        []string{"check", "--", "-bad", "www"},
			expectedOut: "error -bad: " + dnslabel.ErrStrayHyphen.Message() + "\nok www\n",
			expectErr:   true,
		},
		{
			name:        "FlagsBeforeSeparator",
			args:        []string{"check", "--prefix", "--", "-" + strings.Repeat("a", 64)},
			expectedOut: "error -" + strings.Repeat("a", 64) + ": " + dnslabel.ErrStrayHyphen.Message() + "\n",
			expectErr:   true,
		},
		{
			name:        "FlagAfterLabelIsALabel",
			args:        []string{"check", "www", "--prefix"},
			expectedOut: "ok www\nerror --prefix: " + dnslabel.ErrStrayHyphen.Message() + "\n",
			expectErr:   true,
		},
		{
			name:        "Stdin",
			stdin:       "alpha\r\nbeta\n",
			args:        []string{"check"},
			expectedOut: "ok alpha\nok beta\n",
		},
		{
			name:        "RootRejectedByDefault",
			stdin:       "\n",
			args:        []string{"check"},
			expectedOut: "error : " + dnslabel.ErrFoundRoot.Message() + "\n",
			expectErr:   true,
		},
		{
			name:        "RootAllowed",
			stdin:       "\n",
			args:        []string{"check", "--allow-root"},
			expectedOut: "ok \n",
		},
		{
			name:        "Prefix",
			args:        []string{"check", "--prefix", strings.Repeat("a", 64)},
			expectedOut: "ok " + strings.Repeat("a", 63) + "\n",
		},
		{
			name:        "FullLengthByDefault",
			args:        []string{"check", strings.Repeat("a", 64)},
			expectedOut: "error " + strings.Repeat("a", 64) + ": " + dnslabel.ErrLengthMismatch.Message() + "\n",
			expectErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCmd(t, tt.stdin, tt.args...)
			require.Equal(t, tt.expectedOut, stdout)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCheckCmdVerboseLogs(t *testing.T) {
	_, stderr, err := runCmd(t, "", "check", "-v", "www")
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"valid label"`)
	require.Contains(t, stderr, `"label":"www"`)
}

func TestNameCmd(t *testing.T) {
	stdout, _, err := runCmd(t, "", "name", "www.Example.com.")
	require.NoError(t, err)
	require.Equal(t, "www\nExample\ncom\n", stdout)

	_, _, err = runCmd(t, "", "name", "www.-bad.com")
	require.ErrorIs(t, err, dnslabel.ErrStrayHyphen)

	_, _, err = runCmd(t, "", "name")
	require.Error(t, err)
}

func TestUniqCmd(t *testing.T) {
	stdin := "b\nExample\nA\nexample\n_bad\nB\n\n"
	stdout, stderr, err := runCmd(t, stdin, "uniq")
	require.NoError(t, err)
	require.Equal(t, "A\nb\nExample\n", stdout)
	require.Contains(t, stderr, `"level":"warning"`)
	require.Contains(t, stderr, `"input":"_bad"`)
}
