package compiler_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/wirefish/Wyrm/internal/compiler"
	"github.com/wirefish/Wyrm/internal/layout"
)

const testLayout = `!! region

testForest
name = "The Forest"

!! map

F-F-C-C
  | |X|
F-F-C-C

!! location

F forest
name = "Forest"

C clearing cave

!! portal

FF FC forestPortal lib.portal

CC cavePortal
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "region.layout")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCompiler_Run_WritesOutput(t *testing.T) {
	input := writeInput(t, testLayout)
	output := filepath.Join(t.TempDir(), "region.wyrm")

	c := compiler.New(zaptest.NewLogger(t))
	require.NoError(t, c.Run(compiler.Job{InputPath: input, OutputPath: output}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "def region testForest {")
	assert.Contains(t, doc, "def entity forest: location {")
	assert.Contains(t, doc, "def location forest_A00: forest {")
	assert.Equal(t, 8, strings.Count(doc, "def location "))
}

func TestCompiler_Run_WritesManifest(t *testing.T) {
	input := writeInput(t, testLayout)
	dir := t.TempDir()
	output := filepath.Join(dir, "region.wyrm")
	manifestPath := filepath.Join(dir, "region.manifest.yaml")

	c := compiler.New(zaptest.NewLogger(t))
	require.NoError(t, c.Run(compiler.Job{
		InputPath:    input,
		OutputPath:   output,
		ManifestPath: manifestPath,
	}))

	data, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	var m layout.Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, "testForest", m.Region)
	assert.Equal(t, 8, m.Locations)
	assert.Equal(t, 4, m.Cols)
	assert.Equal(t, 2, m.Rows)
}

func TestCompiler_Run_Idempotent(t *testing.T) {
	input := writeInput(t, testLayout)
	dir := t.TempDir()
	first := filepath.Join(dir, "a.wyrm")
	second := filepath.Join(dir, "b.wyrm")

	c := compiler.New(zaptest.NewLogger(t))
	require.NoError(t, c.Run(compiler.Job{InputPath: input, OutputPath: first}))
	require.NoError(t, c.Run(compiler.Job{InputPath: input, OutputPath: second}))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompiler_Run_GridShapeErrorWritesNothing(t *testing.T) {
	input := writeInput(t, "!! region\n\ntest\n\n!! map\n\nF-F\n| |\n")
	output := filepath.Join(t.TempDir(), "region.wyrm")

	c := compiler.New(zaptest.NewLogger(t))
	err := c.Run(compiler.Job{InputPath: input, OutputPath: output})
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrGridShape)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "failed compile must not leave an output file")
}

func TestCompiler_Run_ReferenceErrorWritesNothing(t *testing.T) {
	// The F-C connector has no declared portal pair.
	input := writeInput(t, strings.Join([]string{
		"!! region",
		"",
		"test",
		"",
		"!! map",
		"",
		"F-C",
		"",
		"!! location",
		"",
		"F forest",
		"",
		"C clearing",
		"",
	}, "\n"))
	output := filepath.Join(t.TempDir(), "region.wyrm")

	c := compiler.New(zaptest.NewLogger(t))
	err := c.Run(compiler.Job{InputPath: input, OutputPath: output})
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrReference)
	assert.Contains(t, err.Error(), "CF")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCompiler_Run_MissingInput(t *testing.T) {
	c := compiler.New(zaptest.NewLogger(t))
	err := c.Run(compiler.Job{
		InputPath:  filepath.Join(t.TempDir(), "absent.layout"),
		OutputPath: filepath.Join(t.TempDir(), "out.wyrm"),
	})
	require.Error(t, err)
}
