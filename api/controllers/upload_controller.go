package controllers

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/moyoez/uploadkit-go/api/models"
	"github.com/moyoez/uploadkit-go/notify"
	"github.com/moyoez/uploadkit-go/tool"
	"github.com/moyoez/uploadkit-go/types"
)

// progressBroadcastPPS caps how many progress events per second reach the
// websocket clients. The terminal 100 tick always goes through.
const progressBroadcastPPS = 20

// StartUpload kicks off a simulator run over the currently accepted files and
// responds immediately with the run id. Progress and the final results are
// broadcast on the event stream; results are also queryable via GetUploadRun
// until the run cache TTL expires.
func StartUpload(c *gin.Context) {
	w := models.GetWidget()
	if w == nil {
		c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("Widget not initialized"))
		return
	}
	files := w.Files()
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("No files to upload"))
		return
	}

	runID := tool.NewRunID()
	models.CreateUploadRun(runID)
	notify.SendEvent(types.NotifyTypeUploadStart, "Upload started", map[string]any{
		"runId": runID,
		"count": len(files),
	})

	limiter := rate.NewLimiter(rate.Limit(progressBroadcastPPS), progressBroadcastPPS)
	var progressMu sync.Mutex
	opts := w.UploadOptionsCopy()
	opts.OnProgress = func(percent int) {
		// one callback multiplexes every file's progress stream; clients
		// cannot attribute a tick to a file, matching the simulator contract
		progressMu.Lock()
		defer progressMu.Unlock()
		if percent < 100 && !limiter.Allow() {
			return
		}
		notify.SendEvent(types.NotifyTypeUploadProgress, "", map[string]any{
			"runId":   runID,
			"percent": percent,
		})
	}
	go func() {
		// run-scoped options: concurrent runs must not see each other's
		// progress callback, so the widget's stored options stay untouched
		results := w.UploadWith(context.Background(), &opts)
		models.CompleteUploadRun(runID, results)
		notify.SendEvent(types.NotifyTypeUploadEnd, "Upload finished", map[string]any{
			"runId":   runID,
			"results": results,
		})
	}()

	c.JSON(http.StatusAccepted, tool.FastReturnSuccessWithData(gin.H{
		"runId": runID,
	}))
}

// GetUploadRun returns the state of one simulator run.
func GetUploadRun(c *gin.Context) {
	id := c.Param("id")
	run, ok := models.GetUploadRun(id)
	if !ok {
		c.JSON(http.StatusNotFound, tool.FastReturnError("No upload run with id "+id))
		return
	}
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(run))
}
