package vlc

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oaubert/govlc/internal/dl"
)

var (
	loadOnce sync.Once
	loadErr  error

	// library and pluginPath live for the whole process once loaded.
	library    *dl.Library
	pluginPath string

	log = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger replaces the package logger. Useful to route binding
// diagnostics (library resolution, missing symbols, callback panics) into an
// application's own logrus instance. Must be called before Load.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// Load resolves and loads the native library and binds every known symbol.
// It is called implicitly by New and runs at most once; subsequent calls
// return the first outcome. A missing library is fatal: there is no retry
// beyond the ordered candidate list (see internal/dl).
func Load() error {
	loadOnce.Do(func() {
		loadErr = load()
	})
	return loadErr
}

// LibraryPath returns the path libvlc was loaded from, or "" before Load.
func LibraryPath() string {
	if library == nil {
		return ""
	}
	return library.Path()
}

// PluginPath returns the detected plugin directory hint, if any. New passes
// it to libvlc_new as --plugin-path when the caller supplies no arguments.
func PluginPath() string {
	return pluginPath
}

func load() error {
	lib, plugins, err := dl.Open(log)
	if err != nil {
		return err
	}
	library = lib
	pluginPath = plugins

	bindSymbols(lib)
	if err := checkCoreSymbols(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"path":    lib.Path(),
		"version": libvlc.getVersion(),
		"missing": len(missing),
	}).Info("libvlc bound")
	return nil
}
