//go:build linux || darwin

package dl

import (
	"os"
	"runtime"

	"github.com/ebitengine/purego"
)

func dlopen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}

func platformCandidates() []candidate {
	if runtime.GOOS == "darwin" {
		// The app bundle ships its own plugin directory.
		const app = "/Applications/VLC.app/Contents/MacOS"
		var cands []candidate
		if _, err := os.Stat(app); err == nil {
			cands = append(cands, candidate{
				path:       app + "/lib/libvlc.dylib",
				pluginPath: app + "/plugins",
			})
		}
		return append(cands, candidate{path: "libvlc.dylib"})
	}

	// Bare sonames first so the dynamic linker search path applies, then the
	// usual install prefixes. libvlc.so.5 covers the 2.x/3.x ABI,
	// libvlc.so.12 the 4.x one.
	return []candidate{
		{path: "libvlc.so"},
		{path: "libvlc.so.5"},
		{path: "libvlc.so.12"},
		{path: "/usr/lib/libvlc.so"},
		{path: "/usr/local/lib/libvlc.so"},
	}
}
