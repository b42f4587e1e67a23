package settings

import (
	"strings"

	"github.com/moyoez/uploadkit-go/types"
)

// AcceptsType reports whether a mime type passes the accepted-types filter.
// The filter is picker metadata, not a validation gate: the widget never
// rejects on type, this helper exists for hosts that want to pre-filter.
// Entries may be exact ("image/png") or wildcard ("image/*"); an empty
// filter accepts everything.
func AcceptsType(s types.Settings, mime string) bool {
	if len(s.AcceptedTypes) == 0 {
		return true
	}
	mime = strings.ToLower(strings.TrimSpace(mime))
	for _, accepted := range s.AcceptedTypes {
		accepted = strings.ToLower(strings.TrimSpace(accepted))
		if accepted == mime {
			return true
		}
		if prefix, ok := strings.CutSuffix(accepted, "/*"); ok && strings.HasPrefix(mime, prefix+"/") {
			return true
		}
	}
	return false
}
