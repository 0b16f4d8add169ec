package utils

import "io"

// Close closes c and ignores any error.
// Use for best-effort cleanup where error handling is not critical.
func Close(c io.Closer) {
	_ = c.Close()
}
