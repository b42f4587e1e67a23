package types

// Overrides carries the explicit per-property arguments a host passes next to
// (or instead of) a FileUploadConfig. Pointer fields so "not passed" is
// distinguishable from a zero value. A set config field always wins over the
// matching override.
type Overrides struct {
	Variant       *string  `json:"variant,omitempty"`
	MaxSizeInMB   *int     `json:"maxSizeInMB,omitempty"`
	AcceptedTypes []string `json:"acceptedTypes,omitempty"`
	Multiple      *bool    `json:"multiple,omitempty"`

	Size          *string       `json:"size,omitempty"`
	Radius        *string       `json:"radius,omitempty"`
	BorderStyle   *string       `json:"borderStyle,omitempty"`
	IconPlacement *string       `json:"iconPlacement,omitempty"`
	IconSize      *string       `json:"iconSize,omitempty"`
	Theme         *string       `json:"theme,omitempty"`
	CustomColors  *CustomColors `json:"customColors,omitempty"`
	Padding       *string       `json:"padding,omitempty"`

	Title             *string `json:"title,omitempty"`
	ButtonText        *string `json:"buttonText,omitempty"`
	DragDropText      *string `json:"dragDropText,omitempty"`
	MaxFileSizeText   *string `json:"maxFileSizeText,omitempty"`
	RemoveFileText    *string `json:"removeFileText,omitempty"`
	PreviewText       *string `json:"previewText,omitempty"`
	ErrorSizeExceeded *string `json:"errorSizeExceeded,omitempty"`
	FilesCountText    *string `json:"filesCountText,omitempty"`
}

// Settings is the resolved, read-only configuration the widget actually
// renders and validates with. It is recomputed whenever the config or any
// override changes and never mutated in place.
type Settings struct {
	Variant       string   `json:"variant"`
	MaxSizeInMB   int      `json:"maxSizeInMB"`
	AcceptedTypes []string `json:"acceptedTypes"`
	Multiple      bool     `json:"multiple"`

	Style StyleSettings `json:"style"`
	Text  TextSettings  `json:"text"`
}

type StyleSettings struct {
	Size          string       `json:"size"`
	Radius        string       `json:"radius"`
	BorderStyle   string       `json:"borderStyle"`
	IconPlacement string       `json:"iconPlacement"`
	IconSize      string       `json:"iconSize"`
	Theme         string       `json:"theme"`
	CustomColors  CustomColors `json:"customColors"`
	Padding       string       `json:"padding"`
}

type TextSettings struct {
	Title             string `json:"title"`
	ButtonText        string `json:"buttonText"`
	DragDropText      string `json:"dragDropText"`
	MaxFileSizeText   string `json:"maxFileSizeText"`
	RemoveFileText    string `json:"removeFileText"`
	PreviewText       string `json:"previewText"`
	ErrorSizeExceeded string `json:"errorSizeExceeded"`
	FilesCountText    string `json:"filesCountText"` // fmt template, one %d verb for the count
}

// MaxSizeBytes returns the byte limit derived from MaxSizeInMB.
func (s Settings) MaxSizeBytes() int64 {
	return int64(s.MaxSizeInMB) * 1024 * 1024
}
