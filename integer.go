package printf

// integerNative converts 32 and 64 bit integers to text, appending to dst.
// Sign handling applies in base 10 only; in other bases the value is an
// unsigned bit pattern. The raw value carries the two's-complement pattern
// in its low bitSize bits.
func integerNative(dst []byte, spec formatSpec, raw uint64, unsigned bool, bitSize, base int, upper, forcePrefixLower bool) []byte {
	if bitSize != 32 && bitSize != 64 {
		panic("printf: native integer kernel requires a 32 or 64 bit value")
	}
	negative := raw>>(uint(bitSize)-1)&1 != 0
	remWidth := spec.width

	if base == 10 {
		if !unsigned && negative {
			// Emit the minus then print the rest as if positive.
			raw = uint64(-int64(raw))
			dst = append(dst, '-')
			remWidth--
		} else if spec.flags&flagForceSign != 0 {
			dst = append(dst, '+')
			remWidth--
		} else if spec.flags&flagSpaceForPos != 0 {
			dst = append(dst, ' ')
			remWidth--
		}
	}

	if bitSize == 32 {
		raw &= 0xFFFFFFFF
	}

	// The # flag only produces a prefix for non-zero values. The pointer
	// handler wants the prefix even for nil, and always in lowercase; that
	// is what forcePrefixLower is for.
	if (spec.flags&flagBasePrefix != 0 && raw != 0) || forcePrefixLower {
		switch base {
		case 8:
			dst = append(dst, '0')
			remWidth--
		case 16:
			if !upper || forcePrefixLower {
				dst = append(dst, '0', 'x')
			} else {
				dst = append(dst, '0', 'X')
			}
			remWidth -= 2
		}
	}

	letterOff := byte('a' - '9' - 1)
	if upper {
		letterOff = 'A' - '9' - 1
	}

	// If a precision is present the 0 flag is ignored. Default precision
	// for integral types is 1.
	fl := spec.flags
	precision := spec.precision
	if precision == -1 {
		precision = 1
	} else {
		fl &^= flagLeadingZeros
	}

	// Big enough for 64 bits in binary.
	var buf [128]byte
	idx := len(buf)
	for precision > 0 || raw != 0 {
		precision--
		d := byte(raw%uint64(base)) + '0'
		raw /= uint64(base)
		if d > '9' {
			d += letterOff
		}
		idx--
		buf[idx] = d
	}

	if fl&flagLeadingZeros != 0 {
		zeros := remWidth - (len(buf) - idx)
		for z := 0; z < zeros && idx > 0; z++ {
			idx--
			buf[idx] = '0'
		}
	}

	return appendGrouped(dst, buf[idx:], fl, 4)
}

// integerWide is the 128/256/512 bit counterpart of integerNative. The raw
// value is the full-width two's-complement pattern; narrower widths are
// masked after sign handling.
func integerWide(dst []byte, spec formatSpec, raw Uint512, unsigned bool, bitSize, base int, upper, forcePrefixLower bool) []byte {
	if bitSize != 128 && bitSize != 256 && bitSize != 512 {
		panic("printf: wide integer kernel requires a 128, 256 or 512 bit value")
	}
	negative := raw.bit(bitSize - 1)
	remWidth := spec.width

	if base == 10 {
		if !unsigned && negative {
			raw = raw.neg()
			dst = append(dst, '-')
			remWidth--
		} else if spec.flags&flagForceSign != 0 {
			dst = append(dst, '+')
			remWidth--
		} else if spec.flags&flagSpaceForPos != 0 {
			dst = append(dst, ' ')
			remWidth--
		}
	}

	raw = raw.maskBits(bitSize)

	if (spec.flags&flagBasePrefix != 0 && !raw.isZero()) || forcePrefixLower {
		switch base {
		case 8:
			dst = append(dst, '0')
			remWidth--
		case 16:
			if !upper || forcePrefixLower {
				dst = append(dst, '0', 'x')
			} else {
				dst = append(dst, '0', 'X')
			}
			remWidth -= 2
		}
	}

	letterOff := byte('a' - '9' - 1)
	if upper {
		letterOff = 'A' - '9' - 1
	}

	fl := spec.flags
	precision := spec.precision
	if precision == -1 {
		precision = 1
	} else {
		fl &^= flagLeadingZeros
	}

	// Big enough for 512 bits in binary.
	var buf [1024]byte
	idx := len(buf)
	for precision > 0 || !raw.isZero() {
		precision--
		var rem uint64
		raw, rem = raw.divmod(uint64(base))
		d := byte(rem) + '0'
		if d > '9' {
			d += letterOff
		}
		idx--
		buf[idx] = d
	}

	if fl&flagLeadingZeros != 0 {
		zeros := remWidth - (len(buf) - idx)
		for z := 0; z < zeros && idx > 0; z++ {
			idx--
			buf[idx] = '0'
		}
	}

	return appendGrouped(dst, buf[idx:], fl, 8)
}

// appendGrouped copies the digit run into dst, inserting a decorative
// separator when requested: '_' every groupSize digits (4 native, 8 wide)
// or ',' every 3. Separators never appear at either end of the run.
func appendGrouped(dst, digits []byte, fl specFlags, groupSize int) []byte {
	switch {
	case fl&flagDecorative != 0:
		mod := groupSize - len(digits)%groupSize
		for i, d := range digits {
			dst = append(dst, d)
			mod++
			if mod%groupSize == 0 && i != len(digits)-1 {
				dst = append(dst, '_')
			}
		}
	case fl&flagDecorativeAlt != 0:
		mod := 3 - len(digits)%3
		for i, d := range digits {
			dst = append(dst, d)
			mod++
			if mod%3 == 0 && i != len(digits)-1 {
				dst = append(dst, ',')
			}
		}
	default:
		dst = append(dst, digits...)
	}
	return dst
}

// integerHandler is shared by the b/o/d/i/u/x/X handlers. It picks the
// kernel by bit size and wraps the digits in the justification envelope.
// A present precision disables zero padding for the envelope as well.
func integerHandler(r *receiver, spec formatSpec, v argValue, unsigned bool, base int, upper bool) {
	if spec.precision >= 0 {
		spec.flags &^= flagLeadingZeros
	}
	bitSize := spec.typeSize * 8

	var conv []byte
	switch bitSize {
	case 32, 64:
		conv = integerNative(make([]byte, 0, 128), spec, v.i, unsigned, bitSize, base, upper, false)
	case 128, 256, 512:
		conv = integerWide(make([]byte, 0, 1024), spec, v.w, unsigned, bitSize, base, upper, false)
	default:
		panic("printf: integer type size must be 32, 64, 128, 256 or 512 bits")
	}

	justifyProlog(r, len(conv), spec)
	r.receive(conv)
	justifyEpilog(r, len(conv), spec)
}

func handlerBin(r *receiver, spec formatSpec, v argValue) {
	integerHandler(r, spec, v, true, 2, false)
}

func handlerOct(r *receiver, spec formatSpec, v argValue) {
	integerHandler(r, spec, v, true, 8, false)
}

func handlerDec(r *receiver, spec formatSpec, v argValue) {
	integerHandler(r, spec, v, false, 10, false)
}

func handlerUns(r *receiver, spec formatSpec, v argValue) {
	integerHandler(r, spec, v, true, 10, false)
}

func handlerHexLower(r *receiver, spec formatSpec, v argValue) {
	integerHandler(r, spec, v, true, 16, false)
}

func handlerHexUpper(r *receiver, spec formatSpec, v argValue) {
	integerHandler(r, spec, v, true, 16, true)
}

// handlerPtr renders like %X with a forced lowercase 0x prefix, zero padded
// to the full pointer width unless the caller gave one.
func handlerPtr(r *receiver, spec formatSpec, v argValue) {
	pspec := spec
	pspec.flags |= flagLeadingZeros
	if spec.width == 0 {
		pspec.width = 2 + 2*spec.typeSize
	}
	conv := integerNative(make([]byte, 0, 64), pspec, v.i, true, spec.typeSize*8, 16, true, true)

	justifyProlog(r, len(conv), pspec)
	r.receive(conv)
	justifyEpilog(r, len(conv), pspec)
}

// justifyProlog pads on the left when right-justifying.
func justifyProlog(r *receiver, itemLen int, spec formatSpec) {
	if spec.flags&flagLeftJustify != 0 {
		return
	}
	pad := byte(' ')
	if spec.flags&flagLeadingZeros != 0 {
		pad = '0'
	}
	for s := 0; s < spec.width-itemLen; s++ {
		r.receiveByte(pad)
	}
}

// justifyEpilog pads on the right when left-justifying.
func justifyEpilog(r *receiver, itemLen int, spec formatSpec) {
	if spec.flags&flagLeftJustify == 0 {
		return
	}
	for s := 0; s < spec.width-itemLen; s++ {
		r.receiveByte(' ')
	}
}
