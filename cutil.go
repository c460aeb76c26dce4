package vlc

import "unsafe"

// cstrings converts args into NUL-terminated buffers plus an argv-style
// pointer array. The backing slice must be kept alive (runtime.KeepAlive)
// across the native call that consumes the pointers.
func cstrings(args []string) (argv []uintptr, backing [][]byte) {
	if len(args) == 0 {
		return nil, nil
	}
	backing = make([][]byte, len(args))
	argv = make([]uintptr, len(args))
	for i, s := range args {
		b := make([]byte, len(s)+1)
		copy(b, s)
		backing[i] = b
		argv[i] = uintptr(unsafe.Pointer(&b[0]))
	}
	return argv, backing
}

// goString copies a NUL-terminated native string. Returns "" for NULL.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// ownedString copies a native string the caller owns and hands the buffer
// back to libvlc_free.
func ownedString(p uintptr) string {
	if p == 0 {
		return ""
	}
	s := goString(p)
	if libvlc.free != nil {
		libvlc.free(p)
	}
	return s
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
