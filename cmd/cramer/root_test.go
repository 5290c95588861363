package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cramer/report"
)

// writeSystem stores content in a temp file and returns its path.
func writeSystem(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "system.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// execute runs the root command and returns stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRoot_Solves(t *testing.T) {
	path := writeSystem(t, "1,1,1,6\n0,2,5,-4\n2,5,-1,27\n")

	out, _, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "1 1 1 6\n0 2 5 -4\n2 5 -1 27\n\nRESULT:\nvar1 = 5\nvar2 = 3\nvar3 = -2\n", out)
}

func TestRoot_QuietParallelVerify(t *testing.T) {
	path := writeSystem(t, "1,1,3\n1,-1,1\n")

	out, _, err := execute(t, "", "--quiet", "--parallel", "--verify", path)
	require.NoError(t, err)
	assert.Equal(t, "RESULT:\nvar1 = 2\nvar2 = 1\nmax |A*x - b| = 0\n", out)
}

// TestRoot_PromptsForFile reads the file name from stdin when no argument is given.
func TestRoot_PromptsForFile(t *testing.T) {
	path := writeSystem(t, "2,10\n")

	out, _, err := execute(t, path+"\n", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter the file name")
	assert.Contains(t, out, "var1 = 5\n")
}

func TestRoot_PreconditionErrors(t *testing.T) {
	cases := map[string]struct {
		content string
		want    string
	}{
		"empty":    {"", report.MsgEmptySystem},
		"square":   {"1,2\n3,4\n", report.MsgShapeMismatch},
		"singular": {"1,1,2\n1,1,2\n", report.MsgSingular},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, _, err := execute(t, "", "-q", writeSystem(t, tc.content))
			assert.ErrorIs(t, err, errReported)
			assert.Contains(t, out, tc.want)
			assert.NotContains(t, out, "RESULT:")
		})
	}
}

func TestRoot_AllowSingular(t *testing.T) {
	out, _, err := execute(t, "", "-q", "--allow-singular", writeSystem(t, "1,1,2\n1,1,3\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "var1 = -Inf\nvar2 = +Inf\n")
}

func TestRoot_LoadErrorIsLogged(t *testing.T) {
	_, errOut, err := execute(t, "", writeSystem(t, "1,2,3\n4,5\n"))
	require.Error(t, err)
	assert.Contains(t, errOut, "load system")
}

func TestRoot_TooManyArgs(t *testing.T) {
	_, _, err := execute(t, "", "a.txt", "b.txt")
	assert.Error(t, err)
}
