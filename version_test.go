package vlc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDotted(t *testing.T) {
	t.Run("three components", func(t *testing.T) {
		v, err := parseDotted("3.0.20")
		require.NoError(t, err)
		assert.Equal(t, uint32(0x03001400), v)
	})

	t.Run("four components", func(t *testing.T) {
		v, err := parseDotted("1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, uint32(0x01020304), v)
	})

	t.Run("build suffix ignored", func(t *testing.T) {
		v, err := parseDotted("1.1.0-git")
		require.NoError(t, err)
		assert.Equal(t, uint32(0x01010000), v)
	})

	t.Run("component out of range", func(t *testing.T) {
		_, err := parseDotted("1.2.300")
		assert.Error(t, err)
	})

	t.Run("too few components", func(t *testing.T) {
		_, err := parseDotted("1.2")
		assert.Error(t, err)
	})

	t.Run("too many components", func(t *testing.T) {
		_, err := parseDotted("1.2.3.4.5")
		assert.Error(t, err)
	})

	t.Run("non numeric component", func(t *testing.T) {
		_, err := parseDotted("1.x.3")
		assert.Error(t, err)
	})

	t.Run("negative component", func(t *testing.T) {
		_, err := parseDotted("1.-2.3")
		assert.Error(t, err)
	})
}

func TestHexVersion(t *testing.T) {
	// The bindings version constant must always parse.
	assert.NotZero(t, HexVersion())
}
