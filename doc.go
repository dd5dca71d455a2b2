// Package printf is a self-contained formatted-text engine with an extended
// printf grammar. Output is byte-for-byte deterministic across platforms
// (NaN spellings aside) because the package carries its own integer and
// float conversion kernels instead of delegating to the host runtime.
//
// A specification is %[flags][width][.precision][sizeSpec]type. On top of
// the classic flags (- + space 0 #) two decorative flags exist: _ groups
// digits with underscores (every 4 for binary/hex, every 8 for wide types)
// and ' groups decimal digits with commas.
//
// # Entry Points
//
// Every formatting entry returns the snprintf-style length, the count of
// characters excluding the terminating NUL the engine always produces:
//
//   - [Printf], [Cprintf] — stdout, gated by the channel mask
//   - [Sprintf], [Appendf] — string and append-to-slice results
//   - [Snprintf] — bounded region, always NUL-terminated
//   - [Fprintf], [Tprintf] — io.Writer, plain and timestamped
//   - [Msprintf], [Mfprintf] — string/writer plus a stdout copy
//   - [Count] — dry run, length only
//
// # Extended Types
//
// Beyond the usual integer, float and string specifiers the engine formats:
//
//   - %v, %q, %m — [Vec2]/[Vec3]/[Vec4], [Quat], [Mat2]/[Mat4]
//   - %d, %u, %x and friends at 128, 256 and 512 bits via [Uint128],
//     [Uint256] and [Uint512]
//   - %B — bool as true/false, T/F (_) or Y/N (')
//
// A size suffix selects the operand width explicitly: ":N" counts 32-bit
// words, "!N" bytes and "|N" bits, so "%:8X", "%!32X" and "%|256X" all
// format a [Uint256].
//
// # Channels
//
// Stdout output is filtered through a process-global [Channel] bitmask.
// [RegisterMachine] turns channels on per deployment host by hostname hash,
// [LoadChannels] does the same from a YAML config, and [SetRedirect] and
// [SetDebuggerMirror] reroute or mirror whatever passes the filter. Output
// to explicit writers and all string results bypass the mask; only counts
// of gated stdout prints are affected (they report zero).
//
// Channel state is meant to be configured during startup and left alone;
// the package does no locking around it.
package printf
