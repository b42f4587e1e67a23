package types

import "time"

// UploadOptions controls a single simulated upload call.
// A nil options value means all defaults. Immutable per call.
type UploadOptions struct {
	Delay         time.Duration `json:"delay"`         // total simulated transfer time, default 2s
	FailureChance float64       `json:"failureChance"` // probability in [0,1] of a simulated failure, default 0.1
	OnProgress    func(int)     `json:"-"`             // optional, receives percent 0-100; may be called concurrently for multi-file uploads
}

// UploadResult is the terminal record of one simulated upload.
// Produced exactly once per input file and never mutated afterwards.
type UploadResult struct {
	Success    bool      `json:"success"`
	URL        string    `json:"url,omitempty"`
	Error      string    `json:"error,omitempty"`
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	FileType   string    `json:"fileType"`
	UploadedAt time.Time `json:"uploadedAt"`
}
