package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd, a := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	if err = cmd.Execute(); err != nil {
		a.fail(cmd, err)
	}
	return out.String(), errOut.String(), err
}

func TestCount(t *testing.T) {
	path := writeInput(t, "the cat sat on the mat. The end, the end!")

	tests := []struct {
		name     string
		args     []string
		contains []string
		missing  []string
	}{
		{
			name:     "default",
			args:     []string{"count", path},
			contains: []string{"the", "end", "cat", "The", "10"},
		},
		{
			name:     "top",
			args:     []string{"count", path, "--top", "2"},
			contains: []string{"the", "3", "end", "2"},
			missing:  []string{"cat"},
		},
		{
			name:     "parallel",
			args:     []string{"count", path, "--top", "1", "--shards", "3"},
			contains: []string{"the", "30.00%"},
			missing:  []string{"end"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestCount_Env(t *testing.T) {
	path := writeInput(t, "alpha beta beta")
	t.Setenv("WORDFREQ_TOP", "1")

	out, _, err := run(t, "count", path)
	require.NoError(t, err)
	assert.Contains(t, out, "beta")
	assert.NotContains(t, out, "alpha")
}

func TestCount_Logs(t *testing.T) {
	path := writeInput(t, "one two two")

	_, errOut, err := run(t, "count", path, "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"counted"`)
	assert.Contains(t, errOut, `"distinct":2`)
}

func TestCount_Errors(t *testing.T) {
	path := writeInput(t, "x")

	_, _, err := run(t, "count", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, _, err = run(t, "count", path, "--top", "-1")
	assert.Error(t, err)

	_, _, err = run(t, "count", path, "--class", "ebcdic")
	assert.Error(t, err)

	_, _, err = run(t, "count")
	assert.Error(t, err)

	_, _, err = run(t, "count", path, "--log-level", "shout")
	assert.Error(t, err)
}

func TestFail_Logs(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, errOut, err := run(t, "count", missing, "--log-format", "json")
	require.Error(t, err)
	assert.Contains(t, errOut, `"level":"ERROR"`)
	assert.Contains(t, errOut, `"msg":"wordfreq failed"`)

	t.Setenv("WORDFREQ_LOG_FORMAT", "json")
	_, errOut, err = run(t, "count", missing)
	require.Error(t, err)
	assert.Contains(t, errOut, `"msg":"wordfreq failed"`)

	// bad logging flags fall back to text
	_, errOut, err = run(t, "count", missing, "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, errOut, `msg="wordfreq failed"`)
	assert.Contains(t, errOut, "xml")
}

func TestBench(t *testing.T) {
	path := writeInput(t, strings.Repeat("It is a truth universally acknowledged. ", 50))

	for _, engine := range []string{"scan", "regexp", "naive"} {
		t.Run(engine, func(t *testing.T) {
			out, _, err := run(t, "bench", path, "--rounds", "3", "--trials", "2", "--engine", engine, "--reuse")
			require.NoError(t, err)

			assert.Equal(t, 3, strings.Count(out, "Time: "))
			assert.Contains(t, out, "3 rounds of 2 trials")
		})
	}
}

func TestBench_ASCIINextToNonASCII(t *testing.T) {
	path := writeInput(t, strings.Repeat("naïve a東b ", 10))

	for _, engine := range []string{"scan", "regexp", "naive"} {
		t.Run(engine, func(t *testing.T) {
			_, errOut, err := run(t, "bench", path, "--rounds", "1", "--trials", "1",
				"--engine", engine, "--class", "ascii", "--log-level", "debug", "--log-format", "json")
			require.NoError(t, err)

			assert.Contains(t, errOut, `"words":40`)
			assert.Contains(t, errOut, `"distinct":4`)
		})
	}
}

func TestBench_Errors(t *testing.T) {
	path := writeInput(t, "x")

	_, _, err := run(t, "bench", path, "--engine", "pcre")
	assert.Error(t, err)

	_, _, err = run(t, "bench", path, "--rounds", "0")
	assert.Error(t, err)
}
