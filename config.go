package printf

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownChannel is returned by LoadChannels when a machine entry names
// a channel this package does not define.
var ErrUnknownChannel = errors.New("unknown channel")

type channelConfig struct {
	Machines map[string][]string `yaml:"machines"`
}

// Channel names accepted in deployment config, kebab-cased.
var channelNames = map[string]Channel{
	"none":            ChannelNone,
	"default":         ChannelDefault,
	"debug":           ChannelDebug,
	"debug-gameplay":  ChannelDebugGameplay,
	"debug-physics":   ChannelDebugPhysics,
	"debug-sound":     ChannelDebugSound,
	"debug-rendering": ChannelDebugRendering,
	"debug-ai":        ChannelDebugAI,
	"debug-input":     ChannelDebugInput,
	"user0":           ChannelUser0,
	"user1":           ChannelUser1,
	"user2":           ChannelUser2,
	"user3":           ChannelUser3,
	"user4":           ChannelUser4,
	"user5":           ChannelUser5,
	"user6":           ChannelUser6,
	"user7":           ChannelUser7,
	"test-result":     ChannelTestResult,
	"verbosity0":      ChannelVerbosity0,
	"verbosity1":      ChannelVerbosity1,
	"verbosity2":      ChannelVerbosity2,
	"debugs":          ChannelDebugs,
	"users":           ChannelUsers,
	"systems":         ChannelSystems,
	"all":             ChannelAll,
}

// LoadChannels reads a YAML deployment config and registers each machine
// entry, so only the entry matching the local hostname takes effect. Keys
// are machine names, or precomputed name hashes written as 0x-prefixed hex.
// Values are lists of channel names:
//
//	machines:
//	  build-agent-3: [default, test-result]
//	  0x0B88A6A2: [default, debugs, verbosity1]
//
// The first unknown channel name or unparsable hash key stops the load.
func LoadChannels(r io.Reader) error {
	var cfg channelConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return fmt.Errorf("printf: decode channel config: %w", err)
	}

	for machine, names := range cfg.Machines {
		var channels Channel
		for _, name := range names {
			ch, ok := channelNames[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return fmt.Errorf("printf: machine %q: %w: %q", machine, ErrUnknownChannel, name)
			}
			channels |= ch
		}

		if strings.HasPrefix(machine, "0x") || strings.HasPrefix(machine, "0X") {
			hash, err := strconv.ParseUint(machine[2:], 16, 32)
			if err != nil {
				return fmt.Errorf("printf: machine hash %q: %w", machine, err)
			}
			RegisterMachineHash(uint32(hash), channels)
			continue
		}
		RegisterMachine(machine, channels)
	}
	return nil
}
