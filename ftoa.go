package printf

import (
	"math"
	"strings"
)

// Ftoa renders v in fixed point at full single precision. With withBits set
// a '#'-prefixed hex dump of the IEEE bit pattern follows, so a reader that
// understands the suffix can recover the exact value. NaN and infinity
// render as zero and report false.
func Ftoa(v float32, withBits bool) (string, bool) {
	ok := true
	if f64 := float64(v); math.IsNaN(f64) || math.IsInf(f64, 0) {
		v = 0
		ok = false
	}

	s := Sprintf("%8.8f", v)
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	if withBits {
		s += Sprintf("#%08X", math.Float32bits(v))
	}
	return s, ok
}

// Dtoa is Ftoa for doubles.
func Dtoa(v float64, withBits bool) (string, bool) {
	ok := true
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
		ok = false
	}

	s := Sprintf("%16.16f", v)
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	if withBits {
		s += Sprintf("#%016|64X", math.Float64bits(v))
	}
	return s, ok
}
