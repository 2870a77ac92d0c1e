//go:build windows

package term

import "os"

// Connected reports whether f is connected to a terminal. On Windows
// output redirection cannot be detected reliably without the console
// API, so only the standard streams are considered terminals.
func Connected(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return fd == os.Stdout.Fd() || fd == os.Stderr.Fd() || fd == os.Stdin.Fd()
}

func windowSize(f *os.File) (lines, columns int, ok bool) {
	return 0, 0, false
}
