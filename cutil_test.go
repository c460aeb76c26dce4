package vlc

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCStrings(t *testing.T) {
	argv, backing := cstrings([]string{"--no-video", "--quiet"})
	require.Len(t, argv, 2)
	require.Len(t, backing, 2)

	assert.Equal(t, "--no-video", goString(argv[0]))
	assert.Equal(t, "--quiet", goString(argv[1]))
	runtime.KeepAlive(backing)
}

func TestCStringsEmpty(t *testing.T) {
	argv, backing := cstrings(nil)
	assert.Nil(t, argv)
	assert.Nil(t, backing)
}

func TestGoString(t *testing.T) {
	buf := []byte("hello\x00trailing")
	s := goString(uintptr(unsafe.Pointer(&buf[0])))
	assert.Equal(t, "hello", s)
	runtime.KeepAlive(buf)

	assert.Equal(t, "", goString(0))

	empty := []byte{0}
	assert.Equal(t, "", goString(uintptr(unsafe.Pointer(&empty[0]))))
	runtime.KeepAlive(empty)
}
