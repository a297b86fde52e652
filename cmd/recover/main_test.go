package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"recover"}, args...))
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, err := runApp(t, "", "solve",
		"../../testdata/mixed_bases.json",
		"../../testdata/collinear.json",
		"../../testdata/large.json")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"../../testdata/mixed_bases.json: 3",
		"../../testdata/collinear.json: 0",
		"../../testdata/large.json: 79836264049851",
	}, "\n")+"\n", out)
}

func TestSolveCommand_Details(t *testing.T) {
	out, err := runApp(t, "", "solve", "--details", "../../testdata/corrupted.jsonc")
	require.NoError(t, err)
	assert.Equal(t, "../../testdata/corrupted.jsonc: 1234 (votes 4 of 10 consistent, 10 attempted, 7 candidates)\n", out)
}

func TestSolveCommand_Stdin(t *testing.T) {
	stdin := `{"keys": {"n": 2, "k": 2}, "1": {"base": "10", "value": "5"}, "2": {"base": "10", "value": "8"}}`

	out, err := runApp(t, stdin, "solve")
	require.NoError(t, err)
	assert.Equal(t, "-: 2\n", out)
}

func TestSolveCommand_Failures(t *testing.T) {
	stdin := `{"keys": {"n": 2, "k": 3}, "1": {"base": "10", "value": "5"}}`

	out, err := runApp(t, stdin, "solve", "-", "../../testdata/collinear.json", "../../testdata/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 documents failed")
	assert.Contains(t, out, "-: error: insufficient valid shares")
	assert.Contains(t, out, "../../testdata/collinear.json: 0\n")
	assert.Contains(t, out, "../../testdata/missing.json: error:")
}

func TestSolveCommand_Flags(t *testing.T) {
	out, err := runApp(t, "", "solve", "--tie-break", "smallest", "--max-combinations", "1", "../../testdata/mixed_bases.json")
	require.NoError(t, err)
	assert.Equal(t, "../../testdata/mixed_bases.json: 3\n", out)

	_, err = runApp(t, "", "solve", "--tie-break", "largest", "../../testdata/mixed_bases.json")
	assert.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	out, err := runApp(t, "", "decode", "--base", "16", "ff")
	require.NoError(t, err)
	assert.Equal(t, "255\n", out)

	_, err = runApp(t, "", "decode", "--base", "37", "1")
	assert.Error(t, err)

	_, err = runApp(t, "", "decode", "--base", "10")
	assert.Error(t, err)
}

func TestCombinationsCommand(t *testing.T) {
	out, err := runApp(t, "", "combinations", "--k", "2", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.Equal(t, "1 2\n1 3\n1 4\n2 3\n2 4\n3 4\n", out)
}
