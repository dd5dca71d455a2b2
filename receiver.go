package printf

// receiver collects the final formatted characters and counts how many were
// asked for. Three modes share the one struct:
//
//   - counting: no storage, tally only
//   - growable: appends to a caller-owned byte slice
//   - fixed: writes into a caller-owned region up to its length
//
// In fixed mode characters beyond the region are dropped silently but still
// counted, so numReceived always reports the nominal output length. The
// engine terminates every run with a single NUL; entry points subtract one
// from the count to report the snprintf-compatible string length.
type receiver struct {
	buf   *[]byte // growable, borrowed; nil unless growable mode
	fixed []byte  // fixed region, borrowed; nil unless fixed mode
	n     int
}

func newCountReceiver() *receiver          { return &receiver{} }
func newBufReceiver(buf *[]byte) *receiver { return &receiver{buf: buf} }
func newFixedReceiver(dst []byte) *receiver {
	return &receiver{fixed: dst}
}

func (r *receiver) receiveByte(c byte) {
	if r.buf != nil {
		*r.buf = append(*r.buf, c)
	}
	if r.fixed != nil && r.n < len(r.fixed) {
		r.fixed[r.n] = c
	}
	r.n++
}

func (r *receiver) receiveString(s string) {
	for i := 0; i < len(s); i++ {
		r.receiveByte(s[i])
	}
}

func (r *receiver) receive(b []byte) {
	for _, c := range b {
		r.receiveByte(c)
	}
}

func (r *receiver) numReceived() int { return r.n }
