// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const laptopsCSV = "Model,Price,Storage,Camera,Looks\n" +
	"A,250,16,12,5\n" +
	"B,200,16,8,3\n" +
	"C,300,32,16,4\n" +
	"D,275,32,8,4\n"

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Success(t *testing.T) {
	in := writeInput(t, laptopsCSV)
	out := filepath.Join(t.TempDir(), "result.csv")

	code, stdout, stderr := runCLI(in, "1,1,1,1", "+,+,+,-", out)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, msgDone+"\n", stdout)
	require.Empty(t, stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "Model,Price,Storage,Camera,Looks,Topsis Score,Rank", lines[0])
	require.True(t, strings.HasPrefix(lines[3], "C,300,32,16,4,0.8095"), lines[3])
	require.True(t, strings.HasSuffix(lines[3], ",1"), lines[3])
	require.True(t, strings.HasSuffix(lines[1], ",4"), lines[1])
}

func TestRun_Flags(t *testing.T) {
	in := writeInput(t, "Model,P,Q\nA,1,1\nB,1,1\n")
	out := filepath.Join(t.TempDir(), "result.csv")

	code, _, stderr := runCLI(in, "1,1", "+,-", out)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "Error: ")
	require.Contains(t, stderr, "closeness undefined")

	code, _, stderr = runCLI("-policy", "half", "-log-level", "debug", in, "1,1", "-,-", out)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stderr, "result written")

	code, _, stderr = runCLI("-policy", "median", in, "1,1", "+,+", out)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "unknown degenerate policy")

	code, _, _ = runCLI("-no-such-flag", in, "1,1", "+,+", out)
	require.Equal(t, 1, code)
}

func TestRun_Errors(t *testing.T) {
	good := writeInput(t, laptopsCSV)
	out := filepath.Join(t.TempDir(), "result.csv")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"too few args", []string{good, "1,1,1,1", "+,+,+,-"}, usage},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.csv"), "1,1,1,1", "+,+,+,-", out}, msgNotFound},
		{"unreadable", []string{writeInput(t, ""), "1,1", "+,+", out}, msgUnreadable},
		{"two columns", []string{writeInput(t, "Model,P\nA,1\nB,2\n"), "1", "+", out}, msgFewColumns},
		{"non numeric", []string{writeInput(t, "Model,P,Q\nA,1,x\nB,2,3\n"), "1,1", "+,+", out}, msgNonNumeric},
		{"weights text", []string{good, "1,a,1,1", "+,+,+,-", out}, msgWeights},
		{"weights sign", []string{good, "1,0,1,1", "+,+,+,-", out}, msgWeightSign},
		{"weight count", []string{good, "1,1,1", "+,+,+,-", out}, msgCountMismatch},
		{"impact count", []string{good, "1,1,1,1", "+,+,-", out}, msgCountMismatch},
		{"impact symbol", []string{good, "1,1,1,1", "+,+,*,-", out}, msgImpacts},
		{"unwritable", []string{good, "1,1,1,1", "+,+,+,-", filepath.Join(t.TempDir(), "no", "dir", "out.csv")}, msgWriteFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(tc.args...)
			require.Equal(t, 1, code)
			require.Empty(t, stdout)
			require.Equal(t, "Error: "+tc.want+"\n", stderr)
		})
	}
}

func TestRun_LeadingCostImpact(t *testing.T) {
	in := writeInput(t, laptopsCSV)
	out := filepath.Join(t.TempDir(), "result.csv")

	code, _, stderr := runCLI(in, "1,1,1,1", "-,+,+,-", out)
	require.Equal(t, 0, code, stderr)
}
