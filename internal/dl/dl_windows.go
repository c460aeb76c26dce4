//go:build windows

package dl

import (
	"path/filepath"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

func dlopen(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	return uintptr(h), err
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func dlclose(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

func platformCandidates() []candidate {
	cands := []candidate{{path: "libvlc.dll"}}

	// The VLC installer records its directory in the registry; the DLL lives
	// next to the plugins directory there.
	if dir := installDirFromRegistry(); dir != "" {
		cands = append(cands, candidate{
			path:       filepath.Join(dir, "libvlc.dll"),
			pluginPath: filepath.Join(dir, "plugins"),
		})
	}

	const std = `C:\Program Files\VideoLAN\VLC`
	return append(cands, candidate{
		path:       filepath.Join(std, "libvlc.dll"),
		pluginPath: filepath.Join(std, "plugins"),
	})
}

func installDirFromRegistry() string {
	for _, root := range []registry.Key{registry.LOCAL_MACHINE, registry.CURRENT_USER} {
		k, err := registry.OpenKey(root, `Software\VideoLAN\VLC`, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		dir, _, err := k.GetStringValue("InstallDir")
		k.Close()
		if err == nil && dir != "" {
			return dir
		}
	}
	return ""
}
