//go:build !windows

package printf

// specialNaNString for glibc-style runtimes, which do not distinguish
// signalling or indefinite NaNs in output.
func specialNaNString(neg, indefinite bool) string {
	if neg || indefinite {
		return "-nan"
	}
	return "nan"
}
