package printf

// vectorHelper renders components through the %f handler. The default form
// is "(c0, c1, ...)"; the decorative flag drops the punctuation and
// separates components with single spaces. All spec fields apply per
// component, not to the aggregate.
func vectorHelper(r *receiver, spec formatSpec, comps []float32) {
	if spec.flags&flagDecorative != 0 {
		for i, c := range comps {
			handlerFloat(r, spec, argValue{d: float64(c)})
			if i < len(comps)-1 {
				r.receiveByte(' ')
			}
		}
		return
	}

	r.receiveByte('(')
	for i, c := range comps {
		handlerFloat(r, spec, argValue{d: float64(c)})
		if i < len(comps)-1 {
			r.receiveString(", ")
		}
	}
	r.receiveByte(')')
}

func handlerVector(r *receiver, spec formatSpec, v argValue) {
	n := spec.typeSize >> 2
	if n < 2 || n > 4 {
		panic("printf: vector type size must give 2, 3 or 4 components")
	}
	vectorHelper(r, spec, v.f[:n])
}

// handlerQuat prints (x, y, z, w), or (w, (x, y, z)) in decorative form.
func handlerQuat(r *receiver, spec formatSpec, v argValue) {
	if spec.flags&flagDecorative != 0 {
		r.receiveByte('(')
		handlerFloat(r, spec, argValue{d: float64(v.f[3])})
		r.receiveString(", (")
		handlerFloat(r, spec, argValue{d: float64(v.f[0])})
		r.receiveString(", ")
		handlerFloat(r, spec, argValue{d: float64(v.f[1])})
		r.receiveString(", ")
		handlerFloat(r, spec, argValue{d: float64(v.f[2])})
		r.receiveString("))")
		return
	}

	r.receiveByte('(')
	for c := 0; c < 4; c++ {
		handlerFloat(r, spec, argValue{d: float64(v.f[c])})
		if c < 3 {
			r.receiveString(", ")
		}
	}
	r.receiveByte(')')
}

// handlerMatrix prints a 2x2 (type size 16) or 4x4 (type size 64) matrix.
// Storage is column-major. The default form lists the columns as vectors on
// one line; the decorative form prints one row per line in square brackets,
// which requires transposing, and defaults width 9 and precision 4 so the
// columns line up.
func handlerMatrix(r *receiver, spec formatSpec, v argValue) {
	switch spec.typeSize {
	case 64:
		if spec.flags&flagDecorative != 0 {
			vecSpec := spec
			if spec.width == 0 {
				vecSpec.width = 9
			}
			if spec.precision == -1 {
				vecSpec.precision = 4
			}
			for row := 0; row < 4; row++ {
				comps := []float32{v.f[row], v.f[4+row], v.f[8+row], v.f[12+row]}
				if row == 0 {
					r.receiveString("[ ")
				} else {
					r.receiveString("  ")
				}
				vectorHelper(r, vecSpec, comps)
				if row == 3 {
					r.receiveString(" ]\n")
				} else {
					r.receiveByte('\n')
				}
			}
			return
		}

		r.receiveByte('(')
		for col := 0; col < 4; col++ {
			vectorHelper(r, spec, v.f[col*4:col*4+4])
			if col < 3 {
				r.receiveString(", ")
			}
		}
		r.receiveByte(')')

	case 16:
		if spec.flags&flagDecorative != 0 {
			vecSpec := spec
			if spec.width == 0 {
				vecSpec.width = 9
			}
			if spec.precision == -1 {
				vecSpec.precision = 4
			}
			r.receiveString("[ ")
			vectorHelper(r, vecSpec, []float32{v.f[0], v.f[2]})
			r.receiveByte('\n')
			r.receiveString("  ")
			vectorHelper(r, vecSpec, []float32{v.f[1], v.f[3]})
			r.receiveString(" ]\n")
			return
		}

		r.receiveByte('(')
		vectorHelper(r, spec, v.f[0:2])
		r.receiveString(", ")
		vectorHelper(r, spec, v.f[2:4])
		r.receiveByte(')')

	default:
		panic("printf: matrix type size must be 16 (2x2) or 64 (4x4) bytes")
	}
}
