package printf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadChannels(t *testing.T) {
	saveChannelState(t)
	machineHash = HashName("buildbox")
	SetChannels(ChannelSystems)

	cfg := `
machines:
  buildbox: [default, debugs, verbosity1]
  otherhost: [all]
`
	require.NoError(t, LoadChannels(strings.NewReader(cfg)))
	assert.Equal(t, ChannelDefault|ChannelDebugs|ChannelVerbosity1, Channels())
}

func TestLoadChannelsHashKey(t *testing.T) {
	saveChannelState(t)
	machineHash = HashName("buildbox")
	SetChannels(ChannelSystems)

	cfg := Sprintf("machines:\n  \"0x%08X\": [test-result]\n", machineHash)
	require.NoError(t, LoadChannels(strings.NewReader(cfg)))
	assert.Equal(t, Channel(ChannelTestResult), Channels())
}

func TestLoadChannelsNonMatchingMachine(t *testing.T) {
	saveChannelState(t)
	machineHash = HashName("buildbox")
	SetChannels(ChannelSystems)

	cfg := "machines:\n  otherhost: [all]\n"
	require.NoError(t, LoadChannels(strings.NewReader(cfg)))
	assert.Equal(t, Channel(ChannelSystems), Channels(), "config for other machines leaves the mask alone")
}

func TestLoadChannelsUnknownChannel(t *testing.T) {
	saveChannelState(t)
	machineHash = HashName("buildbox")

	err := LoadChannels(strings.NewReader("machines:\n  buildbox: [bogus]\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownChannel)
}

func TestLoadChannelsBadHashKey(t *testing.T) {
	saveChannelState(t)
	machineHash = HashName("buildbox")

	err := LoadChannels(strings.NewReader("machines:\n  \"0xNOPE\": [default]\n"))
	assert.Error(t, err)
}

func TestLoadChannelsBadYAML(t *testing.T) {
	saveChannelState(t)

	err := LoadChannels(strings.NewReader("machines: [not, a, map]"))
	assert.Error(t, err)
}

func TestLoadChannelsNamesAreCaseInsensitive(t *testing.T) {
	saveChannelState(t)
	machineHash = HashName("buildbox")
	SetChannels(ChannelNone)

	cfg := "machines:\n  buildbox: [Default, TEST-RESULT]\n"
	require.NoError(t, LoadChannels(strings.NewReader(cfg)))
	assert.Equal(t, ChannelDefault|ChannelTestResult, Channels())
}
