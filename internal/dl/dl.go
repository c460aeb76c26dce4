// Package dl locates and loads the native libvlc shared library.
//
// Resolution is platform specific: an explicit GOVLC_LIB_PATH environment
// variable always wins, then the usual install locations for the operating
// system are probed in order. Loading happens at most once per process; the
// caller (the vlc package) is responsible for the sync.Once gating.
package dl

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// EnvLibPath names the environment variable holding an explicit path to the
// libvlc shared library. EnvPluginPath overrides the detected plugin
// directory passed to libvlc_new via --plugin-path.
const (
	EnvLibPath    = "GOVLC_LIB_PATH"
	EnvPluginPath = "GOVLC_PLUGIN_PATH"
)

// Library is a loaded native shared library.
type Library struct {
	handle uintptr
	path   string
}

// Path returns the path the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// A candidate pairs a library location with the plugin directory that a VLC
// install at that location ships, when one is known.
type candidate struct {
	path       string
	pluginPath string
}

// Open loads libvlc from the first usable candidate location and returns the
// library together with the plugin directory hint (empty when unknown).
// There is no retry beyond the ordered candidate list.
func Open(log *logrus.Logger) (*Library, string, error) {
	cands := candidates()

	var lastErr error
	for _, c := range cands {
		h, err := dlopen(c.path)
		if err != nil {
			log.WithFields(logrus.Fields{
				"path":  c.path,
				"error": err,
			}).Debug("libvlc candidate rejected")
			lastErr = err
			continue
		}
		log.WithField("path", c.path).Debug("libvlc loaded")
		plugins := c.pluginPath
		if p := os.Getenv(EnvPluginPath); p != "" {
			plugins = p
		}
		return &Library{handle: h, path: c.path}, plugins, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no libvlc candidate paths for this platform")
	}
	return nil, "", fmt.Errorf("libvlc not found: %w", lastErr)
}

// Lookup resolves a symbol address, or returns an error when the loaded
// library does not export it.
func (l *Library) Lookup(name string) (uintptr, error) {
	addr, err := dlsym(l.handle, name)
	if err != nil {
		return 0, err
	}
	if addr == 0 {
		return 0, fmt.Errorf("symbol %s not found", name)
	}
	return addr, nil
}

// Close unloads the library. Only meaningful in tests; a normal process
// keeps libvlc loaded for its whole lifetime.
func (l *Library) Close() error {
	return dlclose(l.handle)
}

// candidates returns the ordered list of locations to probe. The explicit
// environment override always comes first.
func candidates() []candidate {
	var cands []candidate
	if p := os.Getenv(EnvLibPath); p != "" {
		cands = append(cands, candidate{path: p})
	}
	return append(cands, platformCandidates()...)
}
