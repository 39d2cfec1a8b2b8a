package materials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogueBuilds(t *testing.T) {
	table, err := DefaultCatalogue().Build()
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	c := table.At(0)
	e := c.InternalEnergy(1.0, 1.0)
	assert.InDelta(t, 1.0/0.4, e, 1e-9)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
materials:
  0:
    eos: stiffened_gas
    params:
      gamma: 1.4
  1:
    eos: jwl
    params:
      a: 609.77e9
      b: 12.95e9
      r1: 4.94
      r2: 1.21
      omega: 0.25
      rho0: 1630
`)
	var c Catalogue
	require.NoError(t, c.Parse(data))
	require.Len(t, c.Materials, 2)

	table, err := c.Build()
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
}

func TestBuildRejectsUnknownEOS(t *testing.T) {
	c := Catalogue{Materials: map[int]Entry{0: {EOS: "phlogiston"}}}
	_, err := c.Build()
	require.Error(t, err)
}

func TestBuildRejectsNonContiguousIDs(t *testing.T) {
	c := Catalogue{Materials: map[int]Entry{0: {EOS: "stiffened_gas", Params: map[string]float64{"gamma": 1.4}}, 2: {EOS: "stiffened_gas", Params: map[string]float64{"gamma": 1.4}}}}
	_, err := c.Build()
	require.Error(t, err)
}

func TestBuildRejectsNegativeID(t *testing.T) {
	c := Catalogue{Materials: map[int]Entry{-1: {EOS: "stiffened_gas"}}}
	_, err := c.Build()
	require.Error(t, err)
}
