//go:build windows

package printf

import (
	"io"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procIsDebuggerPresent = kernel32.NewProc("IsDebuggerPresent")
	procOutputDebugString = kernel32.NewProc("OutputDebugStringW")
)

// writeFiltered writes text with carriage returns stripped. Console and
// file output both use \n line endings; \r only ever arrives from callers
// that formatted text for other platforms' conventions.
func writeFiltered(w io.Writer, text string) int {
	written := 0
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\r' {
			continue
		}
		if i > start {
			n, err := io.WriteString(w, text[start:i])
			written += n
			if err != nil {
				return written
			}
		}
		start = i + 1
	}
	if start < len(text) {
		n, _ := io.WriteString(w, text[start:])
		written += n
	}
	return written
}

func debuggerPresent() bool {
	r, _, _ := procIsDebuggerPresent.Call()
	return r != 0
}

func debuggerOutput(text string) {
	p, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return
	}
	procOutputDebugString.Call(uintptr(unsafe.Pointer(p)))
}
