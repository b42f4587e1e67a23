package settings

import (
	"strings"

	"github.com/bytedance/sonic"

	"github.com/moyoez/uploadkit-go/tool"
	"github.com/moyoez/uploadkit-go/types"
)

// ParseString parses a JSON-encoded FileUploadConfig. A malformed string is
// logged and discarded, never surfaced as an error value: the caller falls
// through to overrides and defaults exactly as if no configuration was given.
// The bool return lets stricter hosts surface their own invalid-config state.
func ParseString(raw string) (*types.FileUploadConfig, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	var cfg types.FileUploadConfig
	if err := sonic.Unmarshal([]byte(raw), &cfg); err != nil {
		tool.DefaultLogger.Warnf("Invalid widget config JSON, falling back to defaults: %v", err)
		return nil, false
	}
	return &cfg, true
}
