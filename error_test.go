package vlc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotSupportedError(t *testing.T) {
	err := error(&NotSupportedError{Symbol: "libvlc_media_player_set_role"})

	assert.True(t, errors.Is(err, ErrNotSupported))
	assert.Contains(t, err.Error(), "libvlc_media_player_set_role")

	var nse *NotSupportedError
	assert.True(t, errors.As(err, &nse))
	assert.Equal(t, "libvlc_media_player_set_role", nse.Symbol)
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Message: "no access module matched"}
	assert.Equal(t, "no access module matched", err.Error())
}
