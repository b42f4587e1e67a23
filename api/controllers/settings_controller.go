package controllers

import (
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/moyoez/uploadkit-go/api/models"
	"github.com/moyoez/uploadkit-go/notify"
	"github.com/moyoez/uploadkit-go/tool"
	"github.com/moyoez/uploadkit-go/types"
)

// GetSettings returns the current effective settings.
func GetSettings(c *gin.Context) {
	w := models.GetWidget()
	if w == nil {
		c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("Widget not initialized"))
		return
	}
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(w.Settings()))
}

// ApplyConfig installs a widget configuration. The body is either a config
// object or a JSON string containing an encoded config, matching the two
// forms hosts may persist. A malformed string body degrades to "no
// configuration" by contract; a malformed object body is a plain bad request.
func ApplyConfig(c *gin.Context) {
	w := models.GetWidget()
	if w == nil {
		c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("Widget not initialized"))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Failed to read request body"))
		return
	}

	trimmed := strings.TrimSpace(string(body))
	applied := false
	switch {
	case strings.HasPrefix(trimmed, `"`):
		// JSON string form: decode the outer string, hand the inner JSON to the widget
		var raw string
		if err := sonic.Unmarshal(body, &raw); err != nil {
			c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body"))
			return
		}
		applied = w.ApplyConfig(raw)
	case strings.HasPrefix(trimmed, "{"):
		var cfg types.FileUploadConfig
		if err := sonic.Unmarshal(body, &cfg); err != nil {
			c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid config object: "+err.Error()))
			return
		}
		applied = w.ApplyConfig(&cfg)
	default:
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Body must be a config object or a JSON string"))
		return
	}

	resolved := w.Settings()
	notify.SendEvent(types.NotifyTypeConfigApplied, "Configuration applied", map[string]any{
		"applied":  applied,
		"settings": resolved,
	})
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(gin.H{
		"applied":  applied,
		"settings": resolved,
	}))
}

// ClearConfig removes the installed configuration; overrides and defaults
// remain in effect.
func ClearConfig(c *gin.Context) {
	w := models.GetWidget()
	if w == nil {
		c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("Widget not initialized"))
		return
	}
	w.ApplyConfig(nil)
	notify.SendEvent(types.NotifyTypeConfigApplied, "Configuration cleared", map[string]any{
		"applied":  false,
		"settings": w.Settings(),
	})
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(w.Settings()))
}

// SetOverrides installs explicit property overrides. Config fields still win.
func SetOverrides(c *gin.Context) {
	w := models.GetWidget()
	if w == nil {
		c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("Widget not initialized"))
		return
	}
	var ov types.Overrides
	if err := c.ShouldBindJSON(&ov); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid overrides: "+err.Error()))
		return
	}
	w.SetOverrides(ov)
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(w.Settings()))
}
