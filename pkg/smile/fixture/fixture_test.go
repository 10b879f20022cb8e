package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisl/smile-go/pkg/smile/fixture"
)

const sprinkler = `
nodes:
  - id: Rain
    dimensions: [2]
    values: [0.2, 0.8]
  - id: Sprinkler
    dimensions: [2, 2]
    values: [0.01, 0.99, 0.4, 0.6]
  - id: Grass
    dimensions: [2, 2, 2]
`

func TestParseAndBuild(t *testing.T) {
	f, err := fixture.Parse([]byte(sprinkler))
	require.NoError(t, err)
	assert.Equal(t, []string{"Rain", "Sprinkler", "Grass"}, f.Names())

	nodes, err := f.Build()
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.Equal(t, 2, nodes["Rain"].Size())
	assert.Equal(t, []float64{0.2, 0.8}, nodes["Rain"].Table().Values())

	sprinklerTable := nodes["Sprinkler"].Table()
	idx, err := sprinklerTable.Index(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, sprinklerTable.At(idx), 1e-12)

	grass := nodes["Grass"].Table()
	assert.Equal(t, 8, grass.Size())
	assert.Equal(t, make([]float64, 8), grass.Values())
}

func TestParseRejectsInvalidFixtures(t *testing.T) {
	cases := map[string]string{
		"missing id":     "nodes:\n  - dimensions: [2]\n",
		"duplicate id":   "nodes:\n  - id: A\n    dimensions: [2]\n  - id: A\n    dimensions: [3]\n",
		"no dimensions":  "nodes:\n  - id: A\n",
		"zero dimension": "nodes:\n  - id: A\n    dimensions: [2, 0]\n",
		"value mismatch": "nodes:\n  - id: A\n    dimensions: [2]\n    values: [1, 2, 3]\n",
		"malformed yaml": "nodes: [",
		"wrong type":     "nodes:\n  - id: A\n    dimensions: two\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fixture.Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sprinkler), 0o600))

	f, err := fixture.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Nodes, 3)

	_, err = fixture.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = fixture.Load("")
	require.Error(t, err)
}
