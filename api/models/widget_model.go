package models

import (
	"sync"
	"time"

	ttlworker "github.com/FloatTech/ttl"

	"github.com/moyoez/uploadkit-go/tool"
	"github.com/moyoez/uploadkit-go/types"
	"github.com/moyoez/uploadkit-go/widget"
)

// Run states for the upload-run cache.
const (
	RunStatusRunning = "running"
	RunStatusDone    = "done"
)

// UploadRun records one simulator run started through the demo API. Finished
// runs stay queryable until the TTL expires.
type UploadRun struct {
	ID         string               `json:"id"`
	Status     string               `json:"status"`
	Results    []types.UploadResult `json:"results,omitempty"`
	StartedAt  time.Time            `json:"startedAt"`
	FinishedAt time.Time            `json:"finishedAt,omitzero"`
}

var (
	runMu      sync.RWMutex
	demoWidget *widget.Widget
	uploadRuns = ttlworker.NewCache[string, UploadRun](tool.DefaultTTL)
)

// SetWidget installs the demo widget instance the controllers operate on.
func SetWidget(w *widget.Widget) {
	runMu.Lock()
	defer runMu.Unlock()
	demoWidget = w
}

// GetWidget returns the demo widget instance, or nil before SetWidget.
func GetWidget() *widget.Widget {
	runMu.RLock()
	defer runMu.RUnlock()
	return demoWidget
}

// CreateUploadRun registers a freshly started run.
func CreateUploadRun(id string) {
	runMu.Lock()
	defer runMu.Unlock()
	uploadRuns.Set(id, UploadRun{
		ID:        id,
		Status:    RunStatusRunning,
		StartedAt: time.Now(),
	})
}

// CompleteUploadRun stores the terminal results for a run.
func CompleteUploadRun(id string, results []types.UploadResult) {
	runMu.Lock()
	defer runMu.Unlock()
	run := uploadRuns.Get(id)
	if run.ID == "" {
		run = UploadRun{ID: id, StartedAt: time.Now()}
	}
	run.Status = RunStatusDone
	run.Results = results
	run.FinishedAt = time.Now()
	uploadRuns.Set(id, run)
}

// GetUploadRun looks up a run by id.
func GetUploadRun(id string) (UploadRun, bool) {
	runMu.RLock()
	defer runMu.RUnlock()
	run := uploadRuns.Get(id)
	return run, run.ID != ""
}
