package printf

// handlerChar emits a single byte. Width and justification apply, as with
// regular printf.
func handlerChar(r *receiver, spec formatSpec, v argValue) {
	justifyProlog(r, 1, spec)
	r.receiveByte(byte(v.i))
	justifyEpilog(r, 1, spec)
}

// handlerString emits the string, capped at precision bytes when one is
// given.
func handlerString(r *receiver, spec formatSpec, v argValue) {
	s := v.s
	if spec.precision >= 0 && len(s) > spec.precision {
		s = s[:spec.precision]
	}

	justifyProlog(r, len(s), spec)
	r.receiveString(s)
	justifyEpilog(r, len(s), spec)
}

// handlerBool emits "true"/"false", or T/F with the decorative flag, or
// Y/N with the alternate one.
func handlerBool(r *receiver, spec formatSpec, v argValue) {
	var s string
	switch {
	case spec.flags&flagDecorative != 0:
		s = "F"
		if v.b {
			s = "T"
		}
	case spec.flags&flagDecorativeAlt != 0:
		s = "N"
		if v.b {
			s = "Y"
		}
	default:
		s = "false"
		if v.b {
			s = "true"
		}
	}

	justifyProlog(r, len(s), spec)
	r.receiveString(s)
	justifyEpilog(r, len(s), spec)
}
