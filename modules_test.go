package vlc

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleDescriptionList(t *testing.T) {
	names := [][]byte{
		[]byte("wave\x00"), []byte("Wave\x00"), []byte("Wave audio filter\x00"),
		[]byte("ripple\x00"), []byte("Ripple\x00"), []byte("Ripple video filter\x00"),
	}
	str := func(i int) uintptr { return uintptr(unsafe.Pointer(&names[i][0])) }

	second := cModuleDescription{name: str(3), shortname: str(4), longname: str(5)}
	first := cModuleDescription{
		name: str(0), shortname: str(1), longname: str(2),
		next: uintptr(unsafe.Pointer(&second)),
	}

	list := moduleDescriptionList(uintptr(unsafe.Pointer(&first)))
	require.Len(t, list, 2)
	assert.Equal(t, "wave", list[0].Name)
	assert.Equal(t, "Wave", list[0].Shortname)
	assert.Equal(t, "Wave audio filter", list[0].Longname)
	assert.Equal(t, "", list[0].Help)
	assert.Equal(t, "ripple", list[1].Name)
	runtime.KeepAlive(names)
	runtime.KeepAlive(&second)
}

func TestModuleDescriptionListEmpty(t *testing.T) {
	assert.Nil(t, moduleDescriptionList(0))
}
