// Package widget holds the configurable upload-widget state: effective
// settings, the accepted file list, and the outbound host callbacks. It does
// no rendering; hosts read Settings and Files and draw whatever they like.
package widget

import (
	"context"
	"sync"

	"github.com/moyoez/uploadkit-go/settings"
	"github.com/moyoez/uploadkit-go/simulate"
	"github.com/moyoez/uploadkit-go/tool"
	"github.com/moyoez/uploadkit-go/types"
)

// Widget is one upload-widget instance. Set the On* callbacks before first
// use; they are invoked without the internal lock held.
//
// OnFileSelected fires in single-file mode when a file is accepted.
// OnFilesSelected fires in multi-file mode with the full accepted set; it is
// also the files-changed notification after a removal or reset.
// OnImageDecoded fires with a base64 data URI once a preview decode finishes,
// and with "" when a preview is cleared or a non-image replaces an image.
type Widget struct {
	OnFileSelected  func(item *types.FileItem)
	OnFilesSelected func(items []types.FileItem)
	OnImageDecoded  func(dataURI string)

	mu        sync.Mutex
	cfg       *types.FileUploadConfig
	overrides types.Overrides
	resolved  types.Settings
	items     []types.FileItem

	uploader   *simulate.Uploader
	uploadOpts *types.UploadOptions

	// teardown context for in-flight preview decodes
	ctx    context.Context
	cancel context.CancelFunc
}

// New returns a widget with default settings and the default simulator.
func New() *Widget {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Widget{
		uploader:   simulate.Default,
		uploadOpts: simulate.DefaultUploadOptions(),
		ctx:        ctx,
		cancel:     cancel,
	}
	w.resolved = settings.Resolve(nil, nil)
	return w
}

// SetUploader swaps the simulator instance, mainly for deterministic tests.
func (w *Widget) SetUploader(u *simulate.Uploader) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if u != nil {
		w.uploader = u
	}
}

// SetUploadOptions sets the options handed to the simulator by Upload.
func (w *Widget) SetUploadOptions(opts *types.UploadOptions) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.uploadOpts = opts
}

// UploadOptionsCopy returns a copy of the current upload options, suitable
// for tweaking and handing back to SetUploadOptions.
func (w *Widget) UploadOptionsCopy() types.UploadOptions {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.uploadOpts == nil {
		return *simulate.DefaultUploadOptions()
	}
	return *w.uploadOpts
}

// ApplyConfig installs a declarative configuration and recomputes the
// effective settings. Accepted forms: *types.FileUploadConfig,
// types.FileUploadConfig, a JSON-encoded string, or nil to clear. A malformed
// JSON string is logged and treated as no configuration. The return reports
// whether a configuration is now installed.
func (w *Widget) ApplyConfig(cfg any) bool {
	var parsed *types.FileUploadConfig
	switch v := cfg.(type) {
	case nil:
	case *types.FileUploadConfig:
		parsed = v
	case types.FileUploadConfig:
		parsed = &v
	case string:
		parsed, _ = settings.ParseString(v)
	default:
		tool.DefaultLogger.Warnf("Unsupported widget config type %T, ignoring", cfg)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.cfg = parsed
	w.resolved = settings.Resolve(w.cfg, &w.overrides)
	return parsed != nil
}

// SetOverrides installs the explicit property overrides and recomputes the
// effective settings. Config fields still win over these.
func (w *Widget) SetOverrides(ov types.Overrides) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.overrides = ov
	w.resolved = settings.Resolve(w.cfg, &w.overrides)
}

// Settings returns the current effective settings.
func (w *Widget) Settings() types.Settings {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.resolved
}

// Files returns a snapshot of the accepted file list.
func (w *Widget) Files() []types.FileItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]types.FileItem, len(w.items))
	copy(out, w.items)
	return out
}

// RemoveFile deletes one accepted file by identity. On success it fires
// exactly one files-changed notification carrying the new set.
func (w *Widget) RemoveFile(id string) bool {
	w.mu.Lock()
	found := false
	kept := w.items[:0]
	for _, item := range w.items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	w.items = kept
	var snapshot []types.FileItem
	if found {
		snapshot = make([]types.FileItem, len(w.items))
		copy(snapshot, w.items)
	}
	w.mu.Unlock()

	if !found {
		return false
	}
	if w.OnFilesSelected != nil {
		w.OnFilesSelected(snapshot)
	}
	return true
}

// Reset clears the accepted list and any preview, firing one files-changed
// notification and an empty image-decoded callback.
func (w *Widget) Reset() {
	w.mu.Lock()
	hadItems := len(w.items) > 0
	w.items = nil
	w.mu.Unlock()

	if !hadItems {
		return
	}
	if w.OnFilesSelected != nil {
		w.OnFilesSelected([]types.FileItem{})
	}
	if w.OnImageDecoded != nil {
		w.OnImageDecoded("")
	}
}

// Upload hands the accepted set to the simulator and blocks until every file
// has a terminal result, input order preserved.
func (w *Widget) Upload(ctx context.Context) []types.UploadResult {
	w.mu.Lock()
	opts := w.uploadOpts
	w.mu.Unlock()
	return w.UploadWith(ctx, opts)
}

// UploadWith is Upload with call-scoped options; the widget's stored options
// are left untouched, so concurrent callers keep independent progress
// callbacks.
func (w *Widget) UploadWith(ctx context.Context, opts *types.UploadOptions) []types.UploadResult {
	w.mu.Lock()
	uploader := w.uploader
	files := make([]*types.SelectedFile, len(w.items))
	for i, item := range w.items {
		files[i] = item.File
	}
	w.mu.Unlock()

	return uploader.UploadMultipleFiles(ctx, files, opts)
}

// Close cancels in-flight preview decodes. The widget must not be used after
// Close.
func (w *Widget) Close() {
	w.cancel()
}
