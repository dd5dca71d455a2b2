package printf

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// saveChannelState snapshots the process-global print state so tests that
// poke at it cannot leak into each other. These tests do not run parallel
// for the same reason.
func saveChannelState(t *testing.T) {
	t.Helper()
	mask, hash, redirect, mirror := outputChannels, machineHash, redirectFn, debuggerMirror
	t.Cleanup(func() {
		outputChannels, machineHash, redirectFn, debuggerMirror = mask, hash, redirect, mirror
	})
}

func TestHashName(t *testing.T) {
	assert.Equal(t, uint32(0), HashName(""))
	assert.Equal(t, uint32('a'), HashName("a"))
	assert.Equal(t, uint32(3299), HashName("ab"))
	assert.NotEqual(t, HashName("buildbox"), HashName("Buildbox"))
}

func TestRegisterMachineHash(t *testing.T) {
	saveChannelState(t)
	machineHash = HashName("testhost")
	SetChannels(ChannelSystems)

	RegisterMachineHash(HashName("otherhost"), ChannelAll)
	assert.Equal(t, ChannelSystems, Channels(), "non-matching machine leaves the mask alone")

	RegisterMachineHash(HashName("testhost"), ChannelDebugs)
	assert.Equal(t, Channel(ChannelDebugs), Channels())
}

func TestRegisterMachineIgnoresEmptyName(t *testing.T) {
	saveChannelState(t)
	machineHash = HashName("testhost")
	SetChannels(ChannelSystems)

	RegisterMachine("", ChannelAll)
	assert.Equal(t, Channel(ChannelSystems), Channels())
}

func TestChannelUnions(t *testing.T) {
	assert.Equal(t, ChannelDefault|ChannelTestResult, Channel(ChannelSystems))
	assert.Equal(t, Channel(0xFE), Channel(ChannelDebugs))
	assert.Equal(t, Channel(0xFF00), Channel(ChannelUsers))
}

func TestPrintGating(t *testing.T) {
	saveChannelState(t)
	var got string
	SetRedirect(func(s string) { got += s })
	SetChannels(ChannelDefault)

	assert.Equal(t, 0, Print("hidden", ChannelDebug))
	assert.Equal(t, 5, Print("shown", ChannelDefault))
	assert.Equal(t, "shown", got)
}

func TestCprintfGating(t *testing.T) {
	saveChannelState(t)
	var got string
	SetRedirect(func(s string) { got += s })
	SetChannels(ChannelDefault)

	assert.Equal(t, 0, Cprintf(ChannelDebug, "n=%d", 1), "gated print reports zero")
	assert.Equal(t, 3, Cprintf(ChannelDefault, "n=%d", 1))
	assert.Equal(t, 2, Printf("%d", 42))
	assert.Equal(t, "n=142", got)
}

func TestDebugShortcuts(t *testing.T) {
	saveChannelState(t)
	var got string
	SetRedirect(func(s string) { got += s })
	SetChannels(ChannelDebugGameplay | ChannelDebugPhysics | ChannelDebugSound)

	assert.Equal(t, 0, Dprintf("a"))
	assert.Equal(t, 0, Drprintf("b"))
	assert.Equal(t, 0, Daprintf("x"))
	assert.Equal(t, 0, Diprintf("y"))
	assert.Equal(t, 1, Dgprintf("c"))
	assert.Equal(t, 1, Dpprintf("d"))
	assert.Equal(t, 1, Dsprintf("e"))
	assert.Equal(t, "cde", got)

	SetChannels(ChannelDebugs)
	assert.Equal(t, 1, Daprintf("f"))
	assert.Equal(t, 1, Diprintf("g"))
	assert.Equal(t, "cdefg", got)
}

func TestFprintIgnoresChannels(t *testing.T) {
	saveChannelState(t)
	SetChannels(ChannelNone)

	var buf bytes.Buffer
	assert.Equal(t, 2, Fprint(&buf, "hi"))
	assert.Equal(t, "hi", buf.String())
	assert.Equal(t, 0, Fprint(&buf, ""))
}

func TestFprintfAndTprintf(t *testing.T) {
	saveChannelState(t)
	SetChannels(ChannelNone)

	var buf bytes.Buffer
	n := Fprintf(&buf, "%05d", 42)
	assert.Equal(t, 5, n)
	assert.Equal(t, "00042", buf.String())

	buf.Reset()
	n = Tprintf(&buf, "ready %s", "now")
	assert.Equal(t, buf.Len(), n)
	assert.Contains(t, buf.String(), "ready now")
	assert.Greater(t, n, len("ready now"), "timestamp prefix included")
}

func TestMsprintfAndMfprintf(t *testing.T) {
	saveChannelState(t)
	var got string
	SetRedirect(func(s string) { got += s })

	SetChannels(ChannelNone)
	assert.Equal(t, "n=7", Msprintf(ChannelDefault, "n=%d", 7))
	assert.Empty(t, got, "gated off: string still produced, no stdout copy")

	SetChannels(ChannelDefault)
	assert.Equal(t, "n=8", Msprintf(ChannelDefault, "n=%d", 8))
	assert.Equal(t, "n=8", got)

	got = ""
	var buf bytes.Buffer
	n := Mfprintf(ChannelDefault, &buf, "n=%d", 9)
	assert.Equal(t, 3, n)
	assert.Equal(t, "n=9", buf.String())
	assert.Equal(t, "n=9", got, "visible channels add a stdout copy")
}

func TestFlush(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	Fprint(w, "buffered")
	assert.Empty(t, buf.String())

	Flush(w)
	assert.Equal(t, "buffered", buf.String())

	// Writers without Flush or Sync are a no-op.
	Flush(&buf)
}
