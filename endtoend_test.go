package main

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/cottand/zed/zed"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traefik/yaegi/interp"
	"gotest.tools/v3/golden"
)

//go:embed testdata
var testSet embed.FS

// format is as follows:
//
//	// zed:test go expression of the expected value
func extractTestComment(t *testing.T, src string) (expected string) {
	firstLine := strings.Split(src, "\n")[0]
	expected, ok := strings.CutPrefix(firstLine, "// zed:test ")
	if !ok {
		t.Fatalf("could not parse comment string: '%v'", firstLine)
	}
	return expected
}

func TestEndToEnd(t *testing.T) {
	files, err := testSet.ReadDir("testdata")
	require.NoError(t, err)
	ran := 0
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".zed") {
			continue
		}
		ran++
		t.Run(strings.TrimSuffix(f.Name(), ".zed"), func(t *testing.T) {
			testFile(t, f.Name())
		})
	}
	assert.NotZero(t, ran)
}

func testFile(t *testing.T, name string) {
	content, err := testSet.ReadFile(path.Join("testdata", name))
	require.NoError(t, err)
	expected := extractTestComment(t, string(content))

	stdout := &bytes.Buffer{}
	eval, err := zed.Eval(string(content), stdout, zed.DefaultConfig())
	require.NoError(t, err)
	assert.False(t, eval.Program.Errors().HasError(), eval.Program.FormatErrors(eval.Program.Errors()))

	resExpected, err := interp.New(interp.Options{}).Eval(expected)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(resExpected.Interface()), eval.Value.String(), "program:\n%s", spew.Sdump(eval.Program.Syntax()))

	types, err := eval.Program.DisplayTypes()
	require.NoError(t, err)
	golden.Assert(t, types+"-- stdout --\n"+stdout.String(), strings.TrimSuffix(name, ".zed")+".golden")
}
