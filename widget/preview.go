package widget

import (
	"encoding/base64"
	"fmt"

	"github.com/moyoez/uploadkit-go/tool"
	"github.com/moyoez/uploadkit-go/types"
)

// startPreviewDecode kicks off the best-effort async preview for an image
// file. Decodes for a batch run concurrently and unbounded; non-image files
// and files without content are skipped. The decode is abandoned once the
// widget's teardown context is cancelled, so no callback reaches a closed
// consumer.
func (w *Widget) startPreviewDecode(id string, file *types.SelectedFile) {
	if file == nil || !isImage(file.Type) {
		return
	}
	if len(file.Content) == 0 {
		tool.DefaultLogger.Debugf("No content for %s, skipping preview decode", file.Name)
		return
	}

	go func() {
		dataURI := fmt.Sprintf("data:%s;base64,%s", file.Type, base64.StdEncoding.EncodeToString(file.Content))

		if w.ctx.Err() != nil {
			return
		}

		w.mu.Lock()
		patched := false
		for i := range w.items {
			if w.items[i].ID == id {
				w.items[i].URL = dataURI
				patched = true
				break
			}
		}
		w.mu.Unlock()

		// the item may have been removed while decoding
		if !patched || w.ctx.Err() != nil {
			return
		}
		if w.OnImageDecoded != nil {
			w.OnImageDecoded(dataURI)
		}
	}()
}
