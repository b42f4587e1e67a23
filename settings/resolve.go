package settings

import (
	"fmt"

	"github.com/moyoez/uploadkit-go/types"
)

// Resolve merges the three configuration layers into one effective settings
// value. Precedence per field, highest first: config field (if present),
// explicit override (if passed), built-in default. The precedence is
// independent per field. Pure function of its inputs.
//
// Size constraints resolve first: the maxFileSizeText and errorSizeExceeded
// fallbacks interpolate the already-resolved max size.
func Resolve(cfg *types.FileUploadConfig, ov *types.Overrides) types.Settings {
	if ov == nil {
		ov = &types.Overrides{}
	}

	var constraints *types.FileConstraints
	var style *types.StylePreset
	var text *types.TextConfig
	var variant *string
	if cfg != nil {
		constraints = cfg.FileConstraints
		style = cfg.StylePreset
		text = cfg.Text
		variant = cfg.Variant
	}

	// constraints first, dependent text fields need the resolved size
	maxSize := pickInt(cfgInt(constraints), ov.MaxSizeInMB, DefaultMaxSizeInMB)
	if maxSize <= 0 {
		maxSize = DefaultMaxSizeInMB
	}

	s := types.Settings{
		Variant:       pickString(variant, ov.Variant, DefaultVariant),
		MaxSizeInMB:   maxSize,
		AcceptedTypes: pickStrings(cfgTypes(constraints), ov.AcceptedTypes, DefaultAcceptedTypes),
		Multiple:      pickBool(cfgMultiple(constraints), ov.Multiple, DefaultMultiple),
	}

	s.Style = resolveStyle(style, ov)
	s.Text = resolveText(text, ov, maxSize)
	return s
}

func resolveStyle(style *types.StylePreset, ov *types.Overrides) types.StyleSettings {
	var size, radius, border, place, iconSize, theme, padding *string
	var colors *types.CustomColors
	if style != nil {
		size = style.Size
		radius = style.Radius
		border = style.BorderStyle
		place = style.IconPlacement
		iconSize = style.IconSize
		theme = style.Theme
		colors = style.CustomColors
		padding = style.Padding
	}

	resolved := types.StyleSettings{
		Size:          pickString(size, ov.Size, DefaultStyleSize),
		Radius:        pickString(radius, ov.Radius, DefaultRadius),
		BorderStyle:   pickString(border, ov.BorderStyle, DefaultBorderStyle),
		IconPlacement: pickString(place, ov.IconPlacement, DefaultIconPlacement),
		IconSize:      pickString(iconSize, ov.IconSize, DefaultIconSize),
		Theme:         pickString(theme, ov.Theme, DefaultTheme),
		Padding:       pickString(padding, ov.Padding, DefaultPadding),
	}
	switch {
	case colors != nil:
		resolved.CustomColors = *colors
	case ov.CustomColors != nil:
		resolved.CustomColors = *ov.CustomColors
	}
	return resolved
}

func resolveText(text *types.TextConfig, ov *types.Overrides, maxSize int) types.TextSettings {
	var title, button, dragDrop, maxText, remove, preview, errSize, count *string
	if text != nil {
		title = text.Title
		button = text.ButtonText
		dragDrop = text.DragDropText
		maxText = text.MaxFileSizeText
		remove = text.RemoveFileText
		preview = text.PreviewText
		errSize = text.ErrorSizeExceeded
		count = text.FilesCountText
	}

	return types.TextSettings{
		Title:             pickString(title, ov.Title, DefaultTitle),
		ButtonText:        pickString(button, ov.ButtonText, DefaultButtonText),
		DragDropText:      pickString(dragDrop, ov.DragDropText, DefaultDragDropText),
		MaxFileSizeText:   pickString(maxText, ov.MaxFileSizeText, MaxFileSizeText(maxSize)),
		RemoveFileText:    pickString(remove, ov.RemoveFileText, DefaultRemoveFileText),
		PreviewText:       pickString(preview, ov.PreviewText, DefaultPreviewText),
		ErrorSizeExceeded: pickString(errSize, ov.ErrorSizeExceeded, ErrorSizeExceededText(maxSize)),
		FilesCountText:    pickString(count, ov.FilesCountText, DefaultFilesCountText),
	}
}

// MaxFileSizeText renders the default max-size hint for the given MB limit.
func MaxFileSizeText(maxSizeInMB int) string {
	return fmt.Sprintf(defaultMaxFileSizeTemplate, maxSizeInMB)
}

// ErrorSizeExceededText renders the default oversize rejection message for
// the given MB limit.
func ErrorSizeExceededText(maxSizeInMB int) string {
	return fmt.Sprintf(defaultErrorSizeTemplate, maxSizeInMB)
}

func pickString(cfg, ov *string, def string) string {
	if cfg != nil {
		return *cfg
	}
	if ov != nil {
		return *ov
	}
	return def
}

func pickInt(cfg, ov *int, def int) int {
	if cfg != nil {
		return *cfg
	}
	if ov != nil {
		return *ov
	}
	return def
}

func pickBool(cfg, ov *bool, def bool) bool {
	if cfg != nil {
		return *cfg
	}
	if ov != nil {
		return *ov
	}
	return def
}

func pickStrings(cfg, ov, def []string) []string {
	if cfg != nil {
		return cfg
	}
	if ov != nil {
		return ov
	}
	return def
}

func cfgInt(c *types.FileConstraints) *int {
	if c == nil {
		return nil
	}
	return c.MaxSizeInMB
}

func cfgTypes(c *types.FileConstraints) []string {
	if c == nil {
		return nil
	}
	return c.AcceptedTypes
}

func cfgMultiple(c *types.FileConstraints) *bool {
	if c == nil {
		return nil
	}
	return c.Multiple
}
