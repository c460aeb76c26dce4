package dl

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatesEnvOverrideFirst(t *testing.T) {
	t.Setenv(EnvLibPath, "/opt/vlc/lib/libvlc.custom")

	cands := candidates()
	require.NotEmpty(t, cands)
	assert.Equal(t, "/opt/vlc/lib/libvlc.custom", cands[0].path)
	// Platform defaults still follow the override.
	assert.Greater(t, len(cands), 1)
}

func TestCandidatesWithoutOverride(t *testing.T) {
	t.Setenv(EnvLibPath, "")

	for _, c := range candidates() {
		assert.NotEmpty(t, c.path)
	}
}

func TestOpenReportsLastError(t *testing.T) {
	t.Setenv(EnvLibPath, "/nonexistent/libvlc.so")

	lib, _, err := Open(logrus.New())
	if err == nil {
		// A real VLC install satisfied a later candidate.
		lib.Close()
		t.Skip("libvlc present on this machine")
	}
	assert.ErrorContains(t, err, "libvlc not found")
}

func TestEnvPluginPathOverride(t *testing.T) {
	t.Setenv(EnvLibPath, "/nonexistent/libvlc.so")
	t.Setenv(EnvPluginPath, "/opt/vlc/plugins")

	lib, plugins, err := Open(logrus.New())
	if err != nil {
		t.Skip("libvlc not available")
	}
	defer lib.Close()
	assert.Equal(t, "/opt/vlc/plugins", plugins)
}
