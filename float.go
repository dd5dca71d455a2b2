package printf

import (
	"math"
)

// floatClass partitions doubles for the special-value early exits.
type floatClass int

const (
	floatNormal floatClass = iota
	floatPosQNaN
	floatNegQNaN
	floatPosSNaN
	floatNegSNaN
	floatIndNaN // the negative quiet NaN with an empty payload
	floatPosInf
	floatNegInf
)

func classifyFloat(v float64) floatClass {
	bits := math.Float64bits(v)
	exp := bits >> 52 & 0x7FF
	mant := bits & (1<<52 - 1)
	neg := bits>>63 != 0
	if exp != 0x7FF {
		return floatNormal
	}
	if mant == 0 {
		if neg {
			return floatNegInf
		}
		return floatPosInf
	}
	quiet := mant>>51&1 != 0
	switch {
	case neg && quiet && mant == 1<<51:
		return floatIndNaN
	case quiet && !neg:
		return floatPosQNaN
	case quiet:
		return floatNegQNaN
	case neg:
		return floatNegSNaN
	default:
		return floatPosSNaN
	}
}

// handleSpecialFloat appends the textual form of NaNs and infinities.
// It reports false for normal values. The signalling and indefinite
// spellings are platform dependent; see specialNaNString.
func handleSpecialFloat(dst []byte, v float64) ([]byte, bool) {
	switch classifyFloat(v) {
	case floatPosQNaN:
		return append(dst, "nan"...), true
	case floatNegQNaN:
		return append(dst, "-nan"...), true
	case floatPosSNaN:
		return append(dst, specialNaNString(false, false)...), true
	case floatNegSNaN:
		return append(dst, specialNaNString(true, false)...), true
	case floatIndNaN:
		return append(dst, specialNaNString(true, true)...), true
	case floatPosInf:
		return append(dst, "inf"...), true
	case floatNegInf:
		return append(dst, "-inf"...), true
	}
	return dst, false
}

// floatExponent finds the base-10 exponent of value by repeated scaling.
func floatExponent(value float64) int {
	exponent := 0
	if value < 0 {
		value = -value
	}
	if value >= 10 {
		for value >= 10 {
			value /= 10
			exponent++
		}
	} else if value < 1 {
		digit := int(value)
		for value != 0 && digit == 0 {
			value *= 10
			exponent--
			digit = int(value)
		}
	}
	return exponent
}

// floatProlog tells the %f-family handlers what still needs to happen
// before the converted digits: a deferred sign that must sit inside any
// zero padding, or the suppression of zero padding for special values.
type floatProlog int

const (
	prologNone floatProlog = iota
	prologPlus
	prologNeg
	prologSpace
	prologNoZeros
)

// floatNormalKernel renders value in fixed-point form, appending to dst.
// The first byte of the scratch is reserved for a rounding carry. With
// sigDigits set (the %g low-magnitude branch) the precision counts
// significant digits rather than fractional ones, consumed as mantissa
// digits are emitted and never below zero.
func floatNormalKernel(dst []byte, spec formatSpec, value float64, sigDigits bool) ([]byte, floatProlog) {
	buf := make([]byte, 0, 64)
	buf = append(buf, '0') // carry reserve

	precision := spec.precision
	if precision == -1 {
		precision = DefaultPrecision()
	}

	ret := prologNone
	if value < 0 {
		ret = prologNeg
		value = -value
	} else if spec.flags&flagForceSign != 0 {
		ret = prologPlus
	} else if spec.flags&flagSpaceForPos != 0 {
		ret = prologSpace
	}

	// Largest power of ten not above the value. The multiply overflows to
	// +Inf one step past 1e308, which would keep the digit loop below from
	// ever finishing, so stop scaling while dec is still finite.
	dec := 1.0
	for dec < value {
		next := dec * 10
		if math.IsInf(next, 1) {
			break
		}
		dec = next
	}
	if dec > value {
		dec /= 10
	}

	hasMantissa := false
	for dec >= 1 {
		digit := byte(value / dec)
		value -= float64(digit) * dec
		buf = append(buf, digit+'0')
		if sigDigits && precision > 0 {
			precision--
		}
		dec /= 10
		hasMantissa = true
	}
	if !hasMantissa {
		buf = append(buf, '0')
	}

	if precision > 0 {
		buf = append(buf, '.')
	}
	for precision > 0 {
		precision--
		value *= 10
		digit := byte(value)
		value -= float64(digit)
		buf = append(buf, digit+'0')
	}

	// Round: if the next digit would be 5 or more, carry backwards across
	// the decimal point, possibly into the reserved byte.
	useCarryByte := false
	if value*10 >= 5 {
		end := len(buf) - 1
		for {
			if buf[end] == '9' {
				buf[end] = '0'
			} else if buf[end] == '.' {
				end--
				continue
			} else {
				break
			}
			end--
		}
		buf[end]++
		if end == 0 {
			useCarryByte = true
		}
	}

	result := buf[1:]
	if useCarryByte {
		result = buf
	}

	// Without zero padding the sign sits against the first digit, so emit
	// it now. With zero padding the caller places it outside the zeros.
	if spec.flags&flagLeadingZeros == 0 {
		switch ret {
		case prologNeg:
			dst = append(dst, '-')
			ret = prologNone
		case prologPlus:
			dst = append(dst, '+')
			ret = prologNone
		}
	}

	dst = append(dst, result...)
	return dst, ret
}

// floatEnvelope finishes a %f or low-magnitude %g emission: the deferred
// sign, then the justification envelope around the converted digits.
func floatEnvelope(r *receiver, spec formatSpec, conv []byte, res floatProlog) {
	mod := spec
	effLen := len(conv)
	switch res {
	case prologNeg:
		r.receiveByte('-')
		effLen++
	case prologPlus:
		r.receiveByte('+')
		effLen++
	case prologSpace:
		r.receiveByte(' ')
		effLen++
	case prologNoZeros:
		mod.flags &^= flagLeadingZeros
	}

	justifyProlog(r, effLen, mod)
	r.receive(conv)
	justifyEpilog(r, effLen, mod)
}

func handlerFloat(r *receiver, spec formatSpec, v argValue) {
	conv := make([]byte, 0, 64)
	res := prologNoZeros
	if c, ok := handleSpecialFloat(conv, v.d); ok {
		conv = c
	} else {
		conv, res = floatNormalKernel(conv, spec, v.d, false)
	}
	floatEnvelope(r, spec, conv, res)
}

func handlerGeneral(r *receiver, spec formatSpec, v argValue) {
	value := v.d

	// For %g the precision counts significant digits.
	precision := spec.precision
	if precision == -1 {
		precision = DefaultPrecision()
	}

	threshold := math.Pow(10, float64(precision))
	if math.Abs(value) < threshold {
		conv := make([]byte, 0, 64)
		res := prologNoZeros
		if c, ok := handleSpecialFloat(conv, value); ok {
			conv = c
		} else {
			conv, res = floatNormalKernel(conv, spec, value, true)
		}
		floatEnvelope(r, spec, conv, res)
		return
	}

	if conv, ok := handleSpecialFloat(nil, value); ok {
		expEnvelope(r, spec, conv)
		return
	}
	expEnvelope(r, spec, expFormGeneral(spec, value, precision))
}

func handlerExp(r *receiver, spec formatSpec, v argValue) {
	if conv, ok := handleSpecialFloat(nil, v.d); ok {
		expEnvelope(r, spec, conv)
		return
	}

	precision := spec.precision
	if precision == -1 {
		precision = DefaultPrecision()
	}
	expEnvelope(r, spec, expForm(spec, v.d, precision))
}

// expEnvelope wraps an exponential-form emission in the justification
// envelope. Zero padding and the sign were already placed inside the
// conversion, so only space padding remains here.
func expEnvelope(r *receiver, spec formatSpec, conv []byte) {
	spec.flags &^= flagLeadingZeros
	justifyProlog(r, len(conv), spec)
	r.receive(conv)
	justifyEpilog(r, len(conv), spec)
}

// expForm renders value as d.ddd e±XX(X). The exponent keeps its two least
// significant digits always and the hundreds digit only when non-zero.
// Zero padding reserves room on the left so the sign can sit outside it.
func expForm(spec formatSpec, value float64, precision int) []byte {
	const maxLeadingZeros = 16
	var result [64]byte
	curr := maxLeadingZeros

	negative := false
	if value < 0 {
		value = -value
		negative = true
	}

	exponent := floatExponent(value)

	// Scale so a single non-zero digit sits before the decimal point.
	power10 := 1.0
	absExp := exponent
	if absExp < 0 {
		absExp = -absExp
	}
	for e := 0; e < absExp; e++ {
		power10 *= 10
	}
	if exponent != 0 {
		if exponent < 0 {
			value *= power10
		} else {
			value /= power10
		}
	}

	// Accumulated error can push 9.999... to 10.
	for value >= 10 {
		value /= 10
		exponent++
	}

	power10 = 1.0
	for e := 0; e < precision; e++ {
		power10 *= 10
	}
	value += 0.5 / power10

	first := true
	for precision > 0 {
		digit := int(value)
		value -= float64(digit)
		value *= 10
		result[curr] = byte('0' + digit)
		curr++
		if first {
			result[curr] = '.'
			curr++
		} else {
			precision--
		}
		first = false
	}

	curr = expAppendExponent(result[:], curr, exponent)
	return expApplySign(spec, result[:], curr, maxLeadingZeros, negative)
}

// expFormGeneral is the high-magnitude branch of %g. It differs from
// expForm in its digit loop: every emitted digit consumes precision
// (significant digits) and the final digit rounds up in place, except that
// a 9 is left as is rather than carried. The missing carry matches the
// long-standing output of this path; do not fold it into expForm.
func expFormGeneral(spec formatSpec, value float64, precision int) []byte {
	const maxLeadingZeros = 16
	var result [64]byte
	curr := maxLeadingZeros

	negative := false
	if value < 0 {
		value = -value
		negative = true
	}

	exponent := floatExponent(value)

	power10 := 1.0
	absExp := exponent
	if absExp < 0 {
		absExp = -absExp
	}
	for e := 0; e < absExp; e++ {
		power10 *= 10
	}
	if exponent != 0 {
		if exponent < 0 {
			value *= power10
		} else {
			value /= power10
		}
	}

	for value >= 10 {
		value /= 10
		exponent++
	}

	power10 = 1.0
	for e := 0; e < precision; e++ {
		power10 *= 10
	}
	value += 0.5 / power10

	first := true
	for precision > 0 {
		digit := int(value)
		value -= float64(digit)
		value *= 10
		precision--
		if precision == 0 && int(value) >= 5 && digit < 9 {
			digit++
		}
		result[curr] = byte('0' + digit)
		curr++
		if first {
			result[curr] = '.'
			curr++
		}
		first = false
	}

	curr = expAppendExponent(result[:], curr, exponent)
	return expApplySign(spec, result[:], curr, maxLeadingZeros, negative)
}

func expAppendExponent(result []byte, curr, exponent int) int {
	result[curr] = 'e'
	curr++
	if exponent >= 0 {
		result[curr] = '+'
	} else {
		result[curr] = '-'
		exponent = -exponent
	}
	curr++

	var expBuf [3]int
	for n := 2; n >= 0; n-- {
		expBuf[n] = exponent % 10
		exponent /= 10
	}
	if expBuf[0] != 0 {
		result[curr] = byte('0' + expBuf[0])
		curr++
	}
	result[curr] = byte('0' + expBuf[1])
	curr++
	result[curr] = byte('0' + expBuf[2])
	curr++
	return curr
}

// expApplySign places the sign directly before the digits, or outside any
// requested zero padding, and returns the final byte run.
func expApplySign(spec formatSpec, result []byte, end, start int, negative bool) []byte {
	curr := start
	if spec.flags&flagLeadingZeros == 0 {
		if negative {
			curr--
			result[curr] = '-'
		} else if spec.flags&flagForceSign != 0 {
			curr--
			result[curr] = '+'
		} else if spec.flags&flagSpaceForPos != 0 {
			curr--
			result[curr] = ' '
		}
	} else {
		zeros := spec.width - (end - curr)
		if zeros > start {
			zeros = start
		}
		for ; zeros > 0; zeros-- {
			curr--
			result[curr] = '0'
		}
		if negative {
			result[curr] = '-'
		} else if spec.flags&flagForceSign != 0 {
			result[curr] = '+'
		}
	}
	return result[curr:end]
}
