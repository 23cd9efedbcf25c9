package costmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []string{"aztec", "soundness", "zama"}, c.Keys())
	assert.Equal(t, 3, c.Len())

	aztec, ok := c.Get(DefaultSystem)
	require.True(t, ok)
	assert.Equal(t, 420.0, aztec.BaseMsPerProof)
	assert.Equal(t, 0.18, aztec.BaseUSDPerProof)
	assert.Equal(t, 0.85, aztec.ScalingFactor)

	_, ok = c.Get("unknown")
	assert.False(t, ok)
}

func TestNewCatalog_RejectsDuplicateAndEmptyKeys(t *testing.T) {
	_, err := NewCatalog(Profile{Key: "a"}, Profile{Key: "a"})
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewCatalog(Profile{Name: "nameless"})
	assert.ErrorContains(t, err, "empty key")
}

func TestCatalog_WithDoesNotMutateReceiver(t *testing.T) {
	base := DefaultCatalog()
	custom := Profile{Key: "aztec", Name: "Tuned Aztec", BaseMsPerProof: 100, BaseUSDPerProof: 0.01, ScalingFactor: 1}
	extra := Profile{Key: "plonky", Name: "Plonky", BaseMsPerProof: 50, BaseUSDPerProof: 0.02, ScalingFactor: 0.7}

	extended := base.With(custom, extra)

	got, _ := extended.Get("aztec")
	assert.Equal(t, "Tuned Aztec", got.Name)
	assert.Equal(t, 4, extended.Len())

	orig, _ := base.Get("aztec")
	assert.Equal(t, "Aztec-style zk SNARK System", orig.Name)
	assert.Equal(t, 3, base.Len())
}

func TestSecurityMultiplier(t *testing.T) {
	m, err := SecurityMultiplier(192)
	require.NoError(t, err)
	assert.Equal(t, 1.35, m)

	_, err = SecurityMultiplier(100)
	assert.True(t, IsInvalidParameter(err))

	assert.Equal(t, []int{128, 192, 256}, SecurityLevels())
}
