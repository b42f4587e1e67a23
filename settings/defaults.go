package settings

// Built-in defaults, the lowest layer of the resolution order.
// MaxFileSizeText and ErrorSizeExceeded have no fixed default string: their
// fallbacks interpolate the already-resolved max size, see resolve.go.
const (
	DefaultVariant     = "dropzone"
	DefaultMaxSizeInMB = 5
	DefaultMultiple    = false

	DefaultStyleSize     = "md"
	DefaultRadius        = "md"
	DefaultBorderStyle   = "dashed"
	DefaultIconPlacement = "top"
	DefaultIconSize      = "md"
	DefaultTheme         = "system"
	DefaultPadding       = "md"

	DefaultTitle          = "Upload a File"
	DefaultButtonText     = "Choose File"
	DefaultDragDropText   = "Drag and drop a file here, or click to browse"
	DefaultRemoveFileText = "Remove"
	DefaultPreviewText    = "Preview"
	DefaultFilesCountText = "%d file(s) selected"

	// templates for the size-dependent text fields, one %d verb for the MB limit
	defaultMaxFileSizeTemplate = "Maximum file size: %dMB"
	defaultErrorSizeTemplate   = "File size exceeds the %dMB limit"
)

// DefaultAcceptedTypes is empty: every type is accepted unless the host
// narrows it. The list drives the picker filter, not validation.
var DefaultAcceptedTypes = []string{}
