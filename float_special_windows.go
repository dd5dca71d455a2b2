//go:build windows

package printf

// specialNaNString matches the MSVC runtime's NaN spellings: signalling
// NaNs print as nan(snan) and the negative quiet NaN with an empty payload
// is the indefinite, -nan(ind).
func specialNaNString(neg, indefinite bool) string {
	switch {
	case indefinite:
		return "-nan(ind)"
	case neg:
		return "-nan(snan)"
	default:
		return "nan(snan)"
	}
}
