package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moyoez/uploadkit-go/api/models"
	"github.com/moyoez/uploadkit-go/notify"
	"github.com/moyoez/uploadkit-go/tool"
	"github.com/moyoez/uploadkit-go/types"
	"github.com/moyoez/uploadkit-go/widget"
)

// FilesRequest is the body for the select and drop endpoints. Content is
// base64 in JSON and optional; previews need it, validation does not.
type FilesRequest struct {
	Files []*types.SelectedFile `json:"files"`
}

// ListFiles returns the accepted file list with its count.
func ListFiles(c *gin.Context) {
	w := models.GetWidget()
	if w == nil {
		c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("Widget not initialized"))
		return
	}
	files := w.Files()
	c.JSON(http.StatusOK, tool.FastReturnFiles(files, len(files)))
}

// SelectFiles feeds a batch through the picker path: the whole batch is
// rejected if any file is oversized.
func SelectFiles(c *gin.Context) {
	handleIncomingFiles(c, func(w *widget.Widget, files []*types.SelectedFile) error {
		return w.SelectFiles(files)
	})
}

// DropFiles feeds a batch through the drag-and-drop path: the drop aborts
// atomically at the first oversized file.
func DropFiles(c *gin.Context) {
	handleIncomingFiles(c, func(w *widget.Widget, files []*types.SelectedFile) error {
		return w.DropFiles(files)
	})
}

func handleIncomingFiles(c *gin.Context, accept func(*widget.Widget, []*types.SelectedFile) error) {
	w := models.GetWidget()
	if w == nil {
		c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("Widget not initialized"))
		return
	}

	var req FilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body: "+err.Error()))
		return
	}
	if len(req.Files) == 0 {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("No files provided"))
		return
	}

	if err := accept(w, req.Files); err != nil {
		var oversize *widget.OversizeError
		if errors.As(err, &oversize) {
			notify.SendEvent(types.NotifyTypeFileRejected, oversize.Message, map[string]any{
				"fileName": oversize.FileName,
			})
			c.JSON(http.StatusRequestEntityTooLarge, tool.FastReturnErrorWithData(oversize.Message, map[string]any{
				"fileName": oversize.FileName,
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, tool.FastReturnError(err.Error()))
		return
	}

	files := w.Files()
	notify.SendEvent(types.NotifyTypeFilesChanged, "Files changed", map[string]any{
		"files": files,
		"count": len(files),
	})
	c.JSON(http.StatusOK, tool.FastReturnFiles(files, len(files)))
}

// RemoveFile deletes one accepted file by id.
func RemoveFile(c *gin.Context) {
	w := models.GetWidget()
	if w == nil {
		c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("Widget not initialized"))
		return
	}
	id := c.Param("id")
	if !w.RemoveFile(id) {
		c.JSON(http.StatusNotFound, tool.FastReturnError("No file with id "+id))
		return
	}
	files := w.Files()
	notify.SendEvent(types.NotifyTypeFilesChanged, "File removed", map[string]any{
		"removed": id,
		"files":   files,
		"count":   len(files),
	})
	c.JSON(http.StatusOK, tool.FastReturnFiles(files, len(files)))
}

// ResetFiles clears the accepted list.
func ResetFiles(c *gin.Context) {
	w := models.GetWidget()
	if w == nil {
		c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("Widget not initialized"))
		return
	}
	w.Reset()
	notify.SendEvent(types.NotifyTypeFilesChanged, "Files cleared", map[string]any{
		"files": []types.FileItem{},
		"count": 0,
	})
	c.JSON(http.StatusOK, tool.FastReturnSuccess())
}
