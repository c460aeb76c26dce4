package vlc

import (
	"errors"
	"fmt"
)

// ErrNotSupported is reported (via NotSupportedError) when a wrapper method
// depends on a native symbol the loaded libvlc does not export. The method
// still exists on every library version; only the call fails.
var ErrNotSupported = errors.New("not supported by the loaded libvlc")

// NotSupportedError names the native symbol missing from the loaded library.
type NotSupportedError struct {
	Symbol string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Symbol, ErrNotSupported)
}

func (e *NotSupportedError) Unwrap() error {
	return ErrNotSupported
}

// Error is a failure reported by libvlc itself. The native error taxonomy is
// a single global message string (libvlc_errmsg); there is nothing more
// structured to carry.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// errorFromLib converts a sentinel return (NULL pointer, -1) into an error by
// polling the native last-error message. The message buffer is thread-local
// on the native side, so this must run on the goroutine that made the call,
// which is always the case here: every binding call is synchronous.
func errorFromLib(op string) error {
	msg := ""
	if libvlc.errmsg != nil {
		msg = libvlc.errmsg()
	}
	if msg == "" {
		return &Error{Message: op + " failed"}
	}
	return &Error{Message: fmt.Sprintf("%s: %s", op, msg)}
}

// ClearError resets the native per-thread error message.
func ClearError() {
	if Load() == nil && libvlc.clearerr != nil {
		libvlc.clearerr()
	}
}
