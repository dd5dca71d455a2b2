package printf

import (
	"io"
	"time"
)

// defaultPrec is the fractional (or significant, for %g) digit count used
// when a specification has no explicit precision.
var defaultPrec = 4

// SetDefaultPrecision changes the precision applied when a format
// specification leaves it out. Negative values are ignored.
func SetDefaultPrecision(p int) {
	if p >= 0 {
		defaultPrec = p
	}
}

// DefaultPrecision returns the current implicit precision.
func DefaultPrecision() int { return defaultPrec }

// Count runs the format without producing output and returns the length the
// output would have. Useful for sizing a region before Snprintf.
func Count(format string, args ...any) int {
	r := newCountReceiver()
	process(r, format, args)
	return r.numReceived() - 1
}

// Printf formats to stdout on the default channel and returns the length of
// the formatted text, whether or not the channel was visible.
func Printf(format string, args ...any) int {
	return Cprintf(ChannelDefault, format, args...)
}

// Cprintf is Printf on an explicit set of channels. When none of them are
// in the output mask nothing is formatted and the count is zero.
func Cprintf(channels Channel, format string, args ...any) int {
	if channels&outputChannels == 0 {
		return 0
	}
	text := Sprintf(format, args...)
	fprint(nil, text)
	return len(text)
}

// Sprintf formats into a fresh string.
func Sprintf(format string, args ...any) string {
	buf := make([]byte, 0, 64)
	r := newBufReceiver(&buf)
	process(r, format, args)
	return string(buf[:len(buf)-1])
}

// Appendf formats onto the end of dst and returns the extended slice. The
// terminating NUL the engine produces is not kept.
func Appendf(dst []byte, format string, args ...any) []byte {
	r := newBufReceiver(&dst)
	process(r, format, args)
	return dst[:len(dst)-1]
}

// Snprintf formats into the fixed region dst, truncating if it does not
// fit, and returns the nominal length the output wanted to be. The last
// byte written inside the region is always a NUL when len(dst) >= 1, so the
// region holds a C-compatible string even on truncation.
func Snprintf(dst []byte, format string, args ...any) int {
	r := newFixedReceiver(dst)
	process(r, format, args)
	n := r.numReceived()
	if n > len(dst) && len(dst) > 0 {
		dst[len(dst)-1] = 0
	}
	return n - 1
}

// Fprintf formats to a handle, bypassing the channel mask. A nil writer
// means stdout with the redirect and debugger-mirror treatment. Returns the
// number of characters written, after any platform filtering.
func Fprintf(w io.Writer, format string, args ...any) int {
	return fprint(w, Sprintf(format, args...))
}

// Tprintf is Fprintf with a timestamp prefix. The count includes the
// timestamp.
func Tprintf(w io.Writer, format string, args ...any) int {
	n := fprint(w, time.Now().Format(time.ANSIC)+" ")
	return n + Fprintf(w, format, args...)
}

// Msprintf formats into a string and also prints to stdout when the
// channels are visible.
func Msprintf(channels Channel, format string, args ...any) string {
	s := Sprintf(format, args...)
	if channels&outputChannels != 0 {
		fprint(nil, s)
	}
	return s
}

// Mfprintf formats to a handle and also prints to stdout when the channels
// are visible. The count is for the handle write.
func Mfprintf(channels Channel, w io.Writer, format string, args ...any) int {
	s := Sprintf(format, args...)
	n := fprint(w, s)
	if channels&outputChannels != 0 {
		fprint(nil, s)
	}
	return n
}

// Debug-channel shortcuts.
func Dprintf(format string, args ...any) int {
	return Cprintf(ChannelDebug, format, args...)
}

func Dgprintf(format string, args ...any) int {
	return Cprintf(ChannelDebugGameplay, format, args...)
}

func Dpprintf(format string, args ...any) int {
	return Cprintf(ChannelDebugPhysics, format, args...)
}

func Drprintf(format string, args ...any) int {
	return Cprintf(ChannelDebugRendering, format, args...)
}

func Dsprintf(format string, args ...any) int {
	return Cprintf(ChannelDebugSound, format, args...)
}

func Daprintf(format string, args ...any) int {
	return Cprintf(ChannelDebugAI, format, args...)
}

func Diprintf(format string, args ...any) int {
	return Cprintf(ChannelDebugInput, format, args...)
}
