package types

// Notification represents one event on the demo event stream.
type Notification struct {
	Type    string         `json:"type,omitempty"`    // event type, e.g. "upload_progress"
	Title   string         `json:"title,omitempty"`   // short human readable title
	Message string         `json:"message,omitempty"` // event message/content
	Data    map[string]any `json:"data,omitempty"`    // additional event fields
}

// Event types broadcast over the demo websocket.
const (
	NotifyTypeConfigApplied  = "config_applied"
	NotifyTypeFilesChanged   = "files_changed"
	NotifyTypeFileRejected   = "file_rejected"
	NotifyTypePreviewReady   = "preview_ready"
	NotifyTypeUploadStart    = "upload_start"
	NotifyTypeUploadProgress = "upload_progress"
	NotifyTypeUploadEnd      = "upload_end"
)
