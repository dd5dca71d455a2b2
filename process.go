package printf

import (
	"reflect"
)

// Flag bits parsed from a format specification.
type specFlags uint32

const (
	flagForceSign specFlags = 1 << iota
	flagSpaceForPos
	flagLeadingZeros
	flagLeftJustify
	flagDecorative
	flagDecorativeAlt
	flagBasePrefix
)

// formatSpec is everything in %[flags][width][.precision][sizeSpec] except
// the type character. A precision of -1 means unset; a typeSize of 0 means
// the handler default applies.
type formatSpec struct {
	flags     specFlags
	width     int
	precision int
	typeSize  int // bytes
}

// baseKind says what a passed-in value is made of, so the dispatcher can
// extract exactly the advertised width instead of guessing from the dynamic
// type alone.
type baseKind int

const (
	kindInt baseKind = iota
	kindFloat
	kindDouble
)

// argValue is the POD holder handed to handlers. Only the fields matching
// the handler's kind and size are populated.
type argValue struct {
	i uint64      // integer bit pattern, sizes 4 and 8
	w Uint512     // wide integer bit pattern, sizes 16, 32 and 64
	f [16]float32 // float components, sizes 4 through 64
	d float64     // double value, size 8
	s string      // string payload for %s
	b bool        // boolean payload for %B
}

type handlerFn func(r *receiver, spec formatSpec, v argValue)

type handlerInfo struct {
	specChar byte
	kind     baseKind
	defSize  int // bytes; fills typeSize when the spec leaves it zero
	fn       handlerFn
}

// The default size may be overridden by the format spec: %X works for a
// Uint256 via "%:8X", "%!32X", or "%|256X".
var handlers = []handlerInfo{
	{'b', kindInt, 4, handlerBin},
	{'o', kindInt, 4, handlerOct},
	{'d', kindInt, 4, handlerDec},
	{'i', kindInt, 4, handlerDec},
	{'u', kindInt, 4, handlerUns},
	{'x', kindInt, 4, handlerHexLower},
	{'X', kindInt, 4, handlerHexUpper},
	{'p', kindInt, 8, handlerPtr},
	{'e', kindDouble, 8, handlerExp},
	{'f', kindDouble, 8, handlerFloat},
	{'g', kindDouble, 8, handlerGeneral},
	{'v', kindFloat, 12, handlerVector},
	{'q', kindFloat, 16, handlerQuat},
	{'m', kindFloat, 64, handlerMatrix},
	{'c', kindInt, 4, handlerChar},
	{'s', kindInt, 8, handlerString},
	{'B', kindInt, 4, handlerBool},
}

// handlerJump is indexed by the specifier byte; -1 marks no handler.
var handlerJump [256]int16

func init() {
	for i := range handlerJump {
		handlerJump[i] = -1
	}
	for i := range handlers {
		handlerJump[handlers[i].specChar] = int16(i)
	}
}

func findHandler(c byte) *handlerInfo {
	if c == 0 {
		return nil
	}
	if idx := handlerJump[c]; idx >= 0 && int(idx) < len(handlers) {
		if h := &handlers[idx]; h.specChar == c {
			return h
		}
	}
	// Jump table miss. Fall back to a full search.
	for i := range handlers {
		if handlers[i].specChar == c {
			return &handlers[i]
		}
	}
	return nil
}

// isValidSpecChar reports whether c can follow a % as part of a format
// specification: a flag, a width/precision character, a size suffix, or a
// type with a registered handler.
func isValidSpecChar(c byte) bool {
	switch c {
	case '-', '+', ' ', '0', '#', '_', '\'':
		return true
	case '.', '*', ':', '!', '|':
		return true
	}
	if c >= '0' && c <= '9' {
		return true
	}
	return findHandler(c) != nil
}

// process is the workhorse. It walks the format string, forwards ordinary
// characters, parses each specification, extracts the matching argument and
// invokes the handler. Every run is terminated with a single NUL so callers
// can report numReceived-1 as the string length.
func process(r *receiver, format string, args []any) {
	argi := 0
	next := func() any {
		if argi < len(args) {
			a := args[argi]
			argi++
			return a
		}
		panic("printf: not enough arguments for format " + quoteFormat(format))
	}

	i := 0
	for i < len(format) {
		if format[i] != '%' {
			r.receiveByte(format[i])
			i++
			continue
		}
		if i+1 >= len(format) {
			// Dangling % at the end of the format. Nothing to emit.
			break
		}
		if !isValidSpecChar(format[i+1]) {
			// Invalid character after the %, so emit that character
			// verbatim. This is what makes %% work.
			r.receiveByte(format[i+1])
			i += 2
			continue
		}

		i++
		spec := formatSpec{precision: -1}

	flags:
		for i < len(format) {
			switch format[i] {
			case '-':
				spec.flags |= flagLeftJustify
			case '+':
				spec.flags |= flagForceSign
			case ' ':
				spec.flags |= flagSpaceForPos
			case '0':
				spec.flags |= flagLeadingZeros
			case '_':
				spec.flags |= flagDecorative
			case '\'':
				spec.flags |= flagDecorativeAlt
			case '#':
				spec.flags |= flagBasePrefix
			default:
				break flags
			}
			i++
		}

		// Left justification and leading zeros are mutually exclusive;
		// leading zeros loses.
		if spec.flags&flagLeftJustify != 0 {
			spec.flags &^= flagLeadingZeros
		}

		// Width. A * reads it from the argument list; negative means
		// left-justified with the absolute value.
		if i < len(format) && format[i] == '*' {
			spec.width = starArg(next())
			if spec.width < 0 {
				spec.width = -spec.width
				spec.flags |= flagLeftJustify
				spec.flags &^= flagLeadingZeros
			}
			i++
		} else {
			for i < len(format) && isDigit(format[i]) {
				spec.width = spec.width*10 + int(format[i]-'0')
				i++
			}
		}

		// Precision. Same * rule.
		if i < len(format) && format[i] == '.' {
			i++
			spec.precision = 0
			if i < len(format) && format[i] == '*' {
				spec.precision = starArg(next())
				i++
			} else {
				for i < len(format) && isDigit(format[i]) {
					spec.precision = spec.precision*10 + int(format[i]-'0')
					i++
				}
			}
		}

		// Type size suffix: :N is 32-bit words, !N is bytes, |N is bits.
		if i < len(format) && (format[i] == ':' || format[i] == '!' || format[i] == '|') {
			unit := format[i]
			i++
			n := 0
			for i < len(format) && isDigit(format[i]) {
				n = n*10 + int(format[i]-'0')
				i++
			}
			switch unit {
			case ':':
				n *= 4
			case '|':
				n /= 8
			}
			spec.typeSize = n
		}

		if i >= len(format) {
			// Format ended inside a specification. Nothing to emit.
			break
		}
		h := findHandler(format[i])
		if h == nil {
			panic("printf: no handler for specifier %" + string(format[i]))
		}
		if spec.typeSize == 0 {
			spec.typeSize = h.defSize
		}

		v := extractArg(spec, h, next())
		h.fn(r, spec, v)
		i++
	}

	// Terminating NUL.
	r.receiveByte(0)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// starArg reads a * width or precision from the argument list.
func starArg(arg any) int {
	switch a := arg.(type) {
	case int:
		return a
	case int8:
		return int(a)
	case int16:
		return int(a)
	case int32:
		return int(a)
	case int64:
		return int(a)
	case uint:
		return int(a)
	case uint8:
		return int(a)
	case uint16:
		return int(a)
	case uint32:
		return int(a)
	case uint64:
		return int(a)
	}
	panic("printf: * width or precision requires an integer argument")
}

// extractArg reads the argument into a holder of exactly the advertised
// width. The switch over size and kind is deliberate: handlers consume bit
// patterns and component arrays, never the caller's dynamic type.
func extractArg(spec formatSpec, h *handlerInfo, arg any) argValue {
	var v argValue
	switch spec.typeSize {
	case 4, 8:
		switch h.kind {
		case kindInt:
			switch a := arg.(type) {
			case string:
				v.s = a
			case []byte:
				v.s = string(a)
			case bool:
				v.b = a
				if a {
					v.i = 1
				}
			default:
				v.i = intBits(arg)
			}
		case kindFloat:
			switch a := arg.(type) {
			case float32:
				v.f[0] = a
			case float64:
				v.f[0] = float32(a)
			case Vec2:
				v.f[0], v.f[1] = a.X, a.Y
			default:
				panic(badArg(h.specChar, arg))
			}
		case kindDouble:
			switch a := arg.(type) {
			case float64:
				v.d = a
			case float32:
				v.d = float64(a)
			default:
				panic(badArg(h.specChar, arg))
			}
		}
	case 12:
		a, ok := arg.(Vec3)
		if h.kind != kindFloat || !ok {
			panic(badArg(h.specChar, arg))
		}
		v.f[0], v.f[1], v.f[2] = a.X, a.Y, a.Z
	case 16:
		switch h.kind {
		case kindInt:
			a, ok := arg.(Uint128)
			if !ok {
				panic(badArg(h.specChar, arg))
			}
			v.w = a.wide()
		case kindFloat:
			switch a := arg.(type) {
			case Vec4:
				v.f[0], v.f[1], v.f[2], v.f[3] = a.X, a.Y, a.Z, a.W
			case Quat:
				v.f[0], v.f[1], v.f[2], v.f[3] = a.X, a.Y, a.Z, a.W
			case Mat2:
				v.f[0], v.f[1] = a.C1.X, a.C1.Y
				v.f[2], v.f[3] = a.C2.X, a.C2.Y
			default:
				panic(badArg(h.specChar, arg))
			}
		default:
			panic(badArg(h.specChar, arg))
		}
	case 32:
		a, ok := arg.(Uint256)
		if h.kind != kindInt || !ok {
			panic(badArg(h.specChar, arg))
		}
		v.w = a.wide()
	case 64:
		switch h.kind {
		case kindInt:
			a, ok := arg.(Uint512)
			if !ok {
				panic(badArg(h.specChar, arg))
			}
			v.w = a
		case kindFloat:
			a, ok := arg.(Mat4)
			if !ok {
				panic(badArg(h.specChar, arg))
			}
			cols := [4]Vec4{a.C1, a.C2, a.C3, a.C4}
			for c := 0; c < 4; c++ {
				v.f[c*4+0] = cols[c].X
				v.f[c*4+1] = cols[c].Y
				v.f[c*4+2] = cols[c].Z
				v.f[c*4+3] = cols[c].W
			}
		default:
			panic(badArg(h.specChar, arg))
		}
	default:
		panic("printf: cannot extract an argument of this size")
	}
	return v
}

// intBits widens any built-in integer to its 64-bit two's-complement bit
// pattern. Pointers render through %p via their address.
func intBits(arg any) uint64 {
	switch a := arg.(type) {
	case int:
		return uint64(int64(a))
	case int8:
		return uint64(int64(a))
	case int16:
		return uint64(int64(a))
	case int32:
		return uint64(int64(a))
	case int64:
		return uint64(a)
	case uint:
		return uint64(a)
	case uint8:
		return uint64(a)
	case uint16:
		return uint64(a)
	case uint32:
		return uint64(a)
	case uint64:
		return a
	case uintptr:
		return uint64(a)
	}
	if rv := reflect.ValueOf(arg); rv.Kind() == reflect.Pointer || rv.Kind() == reflect.UnsafePointer {
		return uint64(rv.Pointer())
	}
	panic(badArg('d', arg))
}

func badArg(specChar byte, arg any) string {
	name := "<nil>"
	if t := reflect.TypeOf(arg); t != nil {
		name = t.String()
	}
	return "printf: cannot format " + name + " with %" + string(specChar)
}

func quoteFormat(format string) string {
	if len(format) > 32 {
		format = format[:32] + "..."
	}
	return "\"" + format + "\""
}
