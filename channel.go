package printf

import (
	"io"
	"os"
)

// Channel is a bit in the process-global output mask. Text printed through
// a channel only reaches stdout when at least one of its bits is set in the
// mask. Channels are an output filter only; the formatting entry points
// report the same counts whether or not anything was visible.
//
// If more than 64 channels are ever needed, a wider bit set type would be a
// drop-in replacement here.
type Channel uint64

const (
	ChannelNone    Channel = 0x0000000000000000
	ChannelDefault Channel = 0x0000000000000001

	ChannelDebug          Channel = 0x0000000000000002
	ChannelDebugGameplay  Channel = 0x0000000000000004
	ChannelDebugPhysics   Channel = 0x0000000000000008
	ChannelDebugSound     Channel = 0x0000000000000010
	ChannelDebugRendering Channel = 0x0000000000000020
	ChannelDebugAI        Channel = 0x0000000000000040
	ChannelDebugInput     Channel = 0x0000000000000080

	ChannelUser0 Channel = 0x0000000000000100
	ChannelUser1 Channel = 0x0000000000000200
	ChannelUser2 Channel = 0x0000000000000400
	ChannelUser3 Channel = 0x0000000000000800
	ChannelUser4 Channel = 0x0000000000001000
	ChannelUser5 Channel = 0x0000000000002000
	ChannelUser6 Channel = 0x0000000000004000
	ChannelUser7 Channel = 0x0000000000008000

	ChannelTestResult Channel = 0x0000000000010000
	ChannelVerbosity0 Channel = 0x0000000000020000
	ChannelVerbosity1 Channel = 0x0000000000040000
	ChannelVerbosity2 Channel = 0x0000000000080000

	ChannelAll Channel = 0xFFFFFFFFFFFFFFFF
)

const (
	ChannelDebugs = ChannelDebug | ChannelDebugGameplay | ChannelDebugPhysics |
		ChannelDebugSound | ChannelDebugRendering | ChannelDebugAI | ChannelDebugInput

	ChannelUsers = ChannelUser0 | ChannelUser1 | ChannelUser2 | ChannelUser3 |
		ChannelUser4 | ChannelUser5 | ChannelUser6 | ChannelUser7

	// ChannelSystems is the startup mask: what a machine sees before any
	// registration runs.
	ChannelSystems = ChannelDefault | ChannelTestResult
)

// Process-wide print state. Configured once at startup, read-only after;
// the engine performs no locking of its own.
var (
	machineHash    uint32
	outputChannels = ChannelSystems
	redirectFn     func(text string)
	debuggerMirror bool
)

// HashName is the 32-bit fast string hash used for machine registration:
// h = h*33 + byte over the name, starting at zero. The empty name hashes
// to zero, which is reserved.
func HashName(name string) uint32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		h += h << 5
		h += uint32(name[i])
	}
	return h
}

// RegisterMachine sets the channel mask, but only when name matches this
// machine's hostname. The intent is a sequence of RegisterMachine calls at
// startup, one per deployment host or developer machine that wants
// specific channels on; every other machine keeps what it has. Do not pass
// a dynamically retrieved hostname or you will turn the channels on
// everywhere.
func RegisterMachine(name string, channels Channel) {
	if name == "" {
		return
	}
	RegisterMachineHash(HashName(name), channels)
}

// RegisterMachineHash is RegisterMachine for a precomputed name hash.
func RegisterMachineHash(hash uint32, channels Channel) {
	if machineHash == 0 {
		name, err := os.Hostname()
		if err != nil {
			return
		}
		machineHash = HashName(name)
	}
	if hash == machineHash {
		SetChannels(channels)
	}
}

// SetChannels replaces the mask unconditionally. Any channel not included
// is no longer displayed.
func SetChannels(channels Channel) { outputChannels = channels }

// Channels returns the current mask.
func Channels() Channel { return outputChannels }

// SetRedirect installs a sink for stdout-bound output. While installed, all
// text that would have gone to stdout is handed to fn instead and the write
// is considered complete. Pass nil to restore direct stdout output.
func SetRedirect(fn func(text string)) { redirectFn = fn }

// SetDebuggerMirror additionally sends stdout-bound output to an attached
// debugger when one is present. The probe and the side channel are platform
// specific; on platforms without one this is a no-op. A redirect callback
// still receives the text regardless of this setting.
func SetDebuggerMirror(enable bool) { debuggerMirror = enable }

// Print is the non-formatting print: the text goes to stdout as is,
// provided the channels are visible. Returns the number of characters
// printed, which may be less than len(text) on platforms that filter.
func Print(text string, channels Channel) int {
	if channels&outputChannels == 0 {
		return 0
	}
	return fprint(nil, text)
}

// Fprint is the non-formatting print to a handle. A nil writer means
// stdout, including the redirect and debugger-mirror treatment. Channels
// are ignored.
func Fprint(w io.Writer, text string) int {
	return fprint(w, text)
}

// Flush flushes w when it exposes a Flush or Sync method. Handy with
// buffered writers and with os.File handles.
func Flush(w io.Writer) {
	switch f := w.(type) {
	case interface{ Flush() error }:
		_ = f.Flush()
	case interface{ Sync() error }:
		_ = f.Sync()
	}
}

// fprint routes text to its destination. Stdout-bound text is mirrored to
// the debugger first (unfiltered), then offered to the redirect callback,
// then written with platform character filtering.
func fprint(w io.Writer, text string) int {
	if text == "" {
		return 0
	}

	if w == nil {
		if debuggerMirror && debuggerPresent() {
			debuggerOutput(text)
		}
		if redirectFn != nil {
			redirectFn(text)
			return len(text)
		}
		return writeFiltered(os.Stdout, text)
	}

	return writeFiltered(w, text)
}
