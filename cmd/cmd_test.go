package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProgram(t *testing.T, dir, name, src string) string {
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(src), 0o644))
	return p
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	t.Cleanup(func() { cmd.SetArgs(nil) })
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	p := writeProgram(t, dir, "main.zed", `fn main() { (print 1) return (+ 40 2) }`)

	out, err := execute(t, RunCmd, p)
	require.NoError(t, err)
	assert.Equal(t, "1\n42\n", out)
}

func TestRunCommandReportsFailures(t *testing.T) {
	dir := t.TempDir()
	p := writeProgram(t, dir, "main.zed", `fn main() { return (/ 1 0) }`)

	_, err := execute(t, RunCmd, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(E010)")
	assert.Contains(t, err.Error(), "in call to main")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeProgram(t, dir, "good.zed", `fn main() { return (+ 1 2) }`)
	bad := writeProgram(t, dir, "bad.zed", "fn inc(x) { return x }\nfn main() { return (inc 1 2) }")

	out, err := execute(t, CheckCmd, good, bad)
	require.Error(t, err)
	assert.Equal(t, "1 of 2 file(s) have errors", err.Error())
	assert.Contains(t, out, "== good.zed\nmain: () -> int\n")
	assert.Contains(t, out, "bad.zed:2:20: (E004)")
}

func TestFmtCommand(t *testing.T) {
	dir := t.TempDir()
	p := writeProgram(t, dir, "main.zed", `fn   main( ) {return (+ 40 2)}`)

	out, err := execute(t, FmtCmd, p)
	require.NoError(t, err)
	assert.Equal(t, "fn main() {\n    return (+ 40 2)\n}\n", out)
}
