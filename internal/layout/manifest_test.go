package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wirefish/Wyrm/internal/layout"
)

func TestBuildManifest_Scenario(t *testing.T) {
	l := parse(t, scenarioLayout)
	m, err := l.BuildManifest()
	require.NoError(t, err)

	assert.Equal(t, "testForest", m.Region)
	assert.Equal(t, 4, m.Cols)
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, 8, m.Locations)

	require.Len(t, m.Groups, 2)
	assert.Equal(t, "F", m.Groups[0].Letter)
	assert.Equal(t, "forest", m.Groups[0].Prototype)
	assert.Equal(t, []string{"forest_A00", "forest_B00", "forest_A01", "forest_B01"}, m.Groups[0].Labels)
	assert.Equal(t, "C", m.Groups[1].Letter)
	assert.Equal(t, []string{"clearing_C00", "clearing_D00", "clearing_C01", "clearing_D01"}, m.Groups[1].Labels)
}

func TestBuildManifest_DeterministicYAML(t *testing.T) {
	l := parse(t, scenarioLayout)

	first, err := l.BuildManifest()
	require.NoError(t, err)
	second, err := l.BuildManifest()
	require.NoError(t, err)

	a, err := yaml.Marshal(first)
	require.NoError(t, err)
	b, err := yaml.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildManifest_MissingLocationPrototype(t *testing.T) {
	l := parse(t, "!! region\n\ntest\n\n!! map\n\nQ\n")
	_, err := l.BuildManifest()
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrReference)
}

// Column labels continue into lowercase past column Z.
func TestBuildManifest_WideGridColumnLabels(t *testing.T) {
	letters := make([]string, 28)
	for i := range letters {
		letters[i] = "F"
	}
	input := strings.Join([]string{
		"!! region",
		"",
		"wide",
		"",
		"!! map",
		"",
		strings.Join(letters, " "),
		"",
		"!! location",
		"",
		"F forest",
		"",
	}, "\n")

	l := parse(t, input)
	m, err := l.BuildManifest()
	require.NoError(t, err)
	require.Len(t, m.Groups, 1)
	labels := m.Groups[0].Labels
	require.Len(t, labels, 28)
	assert.Equal(t, "forest_Z00", labels[25])
	assert.Equal(t, "forest_a00", labels[26])
	assert.Equal(t, "forest_b00", labels[27])
}
