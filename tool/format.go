package tool

import (
	"fmt"
	"strings"
)

// FormatFileSize renders a byte count the way the widget displays it.
func FormatFileSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(size)/1024)
	case size < 1024*1024*1024:
		return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
	default:
		return fmt.Sprintf("%.2f GB", float64(size)/(1024*1024*1024))
	}
}

// SanitizeFileName collapses whitespace to underscores so the name is safe to
// embed in a synthesized URL.
func SanitizeFileName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}
