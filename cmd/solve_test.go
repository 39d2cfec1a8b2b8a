package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStateDefaultsMaterialToZero(t *testing.T) {
	v, err := parseState("1,0,1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Rho)
	assert.Equal(t, 0.0, v.U[0])
	assert.Equal(t, 1.0, v.P)
	assert.Equal(t, 0, v.MaterialID)
}

func TestParseStateWithMaterialID(t *testing.T) {
	v, err := parseState("0.125, 0, 0.1, 2")
	require.NoError(t, err)
	assert.Equal(t, 0.125, v.Rho)
	assert.Equal(t, 2, v.MaterialID)
}

func TestParseStateRejectsMalformed(t *testing.T) {
	_, err := parseState("1,2")
	require.Error(t, err)
	_, err = parseState("a,b,c")
	require.Error(t, err)
}
