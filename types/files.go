package types

// SelectedFile is the opaque file handle handed to the widget and the
// simulator. Content may be nil when the caller only has metadata.
type SelectedFile struct {
	Name    string `json:"fileName"`
	Size    int64  `json:"size"`
	Type    string `json:"fileType"` // mime type, e.g. "image/png"
	Content []byte `json:"content,omitempty"`
}

// FileItem is one entry in the widget's accepted-file list.
// Identity is the ID. URL is filled in asynchronously once the preview
// decode for an image file completes.
type FileItem struct {
	File *SelectedFile `json:"-"`
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Size string        `json:"size"` // human formatted, e.g. "2.50 MB"
	Type string        `json:"type"`
	URL  string        `json:"url,omitempty"` // data-URI preview for image files
}
