package vlc

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the version of these bindings.
const Version = "0.3.0"

// parseDotted converts an "i.i.i[.i]" version string into a packed integer,
// one byte per component. Each component must be in 0..255; a build suffix
// after "-" (as in "1.1.0-git") is ignored.
func parseDotted(v string) (uint32, error) {
	v, _, _ = strings.Cut(v, "-")
	parts := strings.Split(v, ".")
	switch len(parts) {
	case 3:
		parts = append(parts, "0")
	case 4:
	default:
		return 0, fmt.Errorf(`"i.i.i[.i]" expected: %q`, v)
	}
	var packed uint32
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("version component %q: %w", p, err)
		}
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("version component %d outside 0..255", n)
		}
		packed = packed<<8 | uint32(n)
	}
	return packed, nil
}

// HexVersion returns the bindings version as a packed integer, 0 when
// unparseable.
func HexVersion() uint32 {
	h, err := parseDotted(Version)
	if err != nil {
		return 0
	}
	return h
}

// LibVersion returns the loaded libvlc version string
// (e.g. "3.0.20 Vetinari").
func LibVersion() (string, error) {
	if err := requireSymbol("libvlc_get_version"); err != nil {
		return "", err
	}
	return libvlc.getVersion(), nil
}

// LibHexVersion returns the loaded libvlc version as a packed integer, 0
// when unavailable or unparseable.
func LibHexVersion() uint32 {
	v, err := LibVersion()
	if err != nil {
		return 0
	}
	v, _, _ = strings.Cut(v, " ")
	h, err := parseDotted(v)
	if err != nil {
		return 0
	}
	return h
}

// Compiler returns the compiler libvlc was built with.
func Compiler() (string, error) {
	if err := requireSymbol("libvlc_get_compiler"); err != nil {
		return "", err
	}
	return libvlc.getCompiler(), nil
}

// Changeset returns the libvlc source changeset.
func Changeset() (string, error) {
	if err := requireSymbol("libvlc_get_changeset"); err != nil {
		return "", err
	}
	return libvlc.getChangeset(), nil
}
