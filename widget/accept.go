package widget

import (
	"strings"

	"github.com/moyoez/uploadkit-go/tool"
	"github.com/moyoez/uploadkit-go/types"
)

// SelectFiles is the picker entry point. The whole candidate batch is
// validated up front: if any file exceeds the size limit the entire batch is
// rejected with the configured errorSizeExceeded text, nothing is queued and
// no callback fires.
func (w *Widget) SelectFiles(files []*types.SelectedFile) error {
	w.mu.Lock()
	limit := w.resolved.MaxSizeBytes()
	for _, file := range files {
		if file != nil && file.Size > limit {
			msg := w.resolved.Text.ErrorSizeExceeded
			name := file.Name
			w.mu.Unlock()
			tool.DefaultLogger.Debugf("Rejected batch: %s over %d bytes", name, limit)
			return &OversizeError{FileName: name, Message: msg}
		}
	}
	return w.acceptLocked(files)
}

// DropFiles is the drag-and-drop entry point. The batch is walked in order
// and the whole drop is aborted atomically at the first oversized file found.
// Same outcome as SelectFiles today, kept as a distinct named policy so hosts
// can choose the entry point that matches their surface.
func (w *Widget) DropFiles(files []*types.SelectedFile) error {
	w.mu.Lock()
	limit := w.resolved.MaxSizeBytes()
	accepted := make([]*types.SelectedFile, 0, len(files))
	for _, file := range files {
		if file == nil {
			continue
		}
		if file.Size > limit {
			msg := w.resolved.Text.ErrorSizeExceeded
			name := file.Name
			w.mu.Unlock()
			tool.DefaultLogger.Debugf("Rejected drop at %s: over %d bytes", name, limit)
			return &OversizeError{FileName: name, Message: msg}
		}
		accepted = append(accepted, file)
	}
	return w.acceptLocked(accepted)
}

// acceptLocked queues the validated files and fires the outbound callbacks.
// The caller holds w.mu; it is released before callbacks run.
func (w *Widget) acceptLocked(files []*types.SelectedFile) error {
	newItems := make([]types.FileItem, 0, len(files))
	for _, file := range files {
		if file == nil {
			continue
		}
		newItems = append(newItems, types.FileItem{
			File: file,
			ID:   tool.NewFileID(),
			Name: file.Name,
			Size: tool.FormatFileSize(file.Size),
			Type: file.Type,
		})
	}
	if len(newItems) == 0 {
		w.mu.Unlock()
		return nil
	}

	multiple := w.resolved.Multiple
	var single types.FileItem
	var snapshot []types.FileItem
	var replacedImage bool
	if multiple {
		w.items = append(w.items, newItems...)
		snapshot = make([]types.FileItem, len(w.items))
		copy(snapshot, w.items)
	} else {
		// single-file mode keeps at most one item, re-selecting replaces it
		replacedImage = len(w.items) == 1 && isImage(w.items[0].Type)
		single = newItems[len(newItems)-1]
		w.items = []types.FileItem{single}
	}
	w.mu.Unlock()

	if multiple {
		if w.OnFilesSelected != nil {
			w.OnFilesSelected(snapshot)
		}
		for _, item := range newItems {
			w.startPreviewDecode(item.ID, item.File)
		}
		return nil
	}

	if w.OnFileSelected != nil {
		w.OnFileSelected(&single)
	}
	if isImage(single.Type) {
		w.startPreviewDecode(single.ID, single.File)
	} else if replacedImage && w.OnImageDecoded != nil {
		// an image was replaced by a non-image, clear the preview
		w.OnImageDecoded("")
	}
	return nil
}

func isImage(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}
