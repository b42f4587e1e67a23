package types

// FileUploadConfig is the declarative widget configuration. Hosts may hand it
// over as a structured value or as a JSON-encoded string; every field is
// independently optional, absent fields fall through to overrides and then
// defaults. Version is reserved for forward compatibility and is not
// interpreted today.
type FileUploadConfig struct {
	Version         *string          `json:"version,omitempty"`
	Variant         *string          `json:"variant,omitempty"` // "dropzone" | "button" | "multi-file" | "image-preview"
	FileConstraints *FileConstraints `json:"fileConstraints,omitempty"`
	StylePreset     *StylePreset     `json:"stylePreset,omitempty"`
	Text            *TextConfig      `json:"text,omitempty"`
}

type FileConstraints struct {
	MaxSizeInMB   *int     `json:"maxSizeInMB,omitempty"`
	AcceptedTypes []string `json:"acceptedTypes,omitempty"`
	Multiple      *bool    `json:"multiple,omitempty"`
}

type StylePreset struct {
	Size          *string       `json:"size,omitempty"`
	Radius        *string       `json:"radius,omitempty"`
	BorderStyle   *string       `json:"borderStyle,omitempty"`
	IconPlacement *string       `json:"iconPlacement,omitempty"`
	IconSize      *string       `json:"iconSize,omitempty"`
	Theme         *string       `json:"theme,omitempty"`
	CustomColors  *CustomColors `json:"customColors,omitempty"`
	Padding       *string       `json:"padding,omitempty"`
}

type CustomColors struct {
	Background string `json:"background,omitempty"`
	Border     string `json:"border,omitempty"`
	Text       string `json:"text,omitempty"`
	Icon       string `json:"icon,omitempty"`
}

type TextConfig struct {
	Title             *string `json:"title,omitempty"`
	ButtonText        *string `json:"buttonText,omitempty"`
	DragDropText      *string `json:"dragDropText,omitempty"`
	MaxFileSizeText   *string `json:"maxFileSizeText,omitempty"`
	RemoveFileText    *string `json:"removeFileText,omitempty"`
	PreviewText       *string `json:"previewText,omitempty"`
	ErrorSizeExceeded *string `json:"errorSizeExceeded,omitempty"`
	FilesCountText    *string `json:"filesCountText,omitempty"`
}
