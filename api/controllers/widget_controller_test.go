package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moyoez/uploadkit-go/api/models"
	"github.com/moyoez/uploadkit-go/types"
	"github.com/moyoez/uploadkit-go/widget"
)

// setupRouter creates a test router with the demo widget endpoints
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	demo := router.Group("/api/demo/v1")
	{
		demo.GET("/settings", GetSettings)
		demo.POST("/config", ApplyConfig)
		demo.DELETE("/config", ClearConfig)
		demo.POST("/overrides", SetOverrides)
		demo.GET("/files", ListFiles)
		demo.POST("/files/select", SelectFiles)
		demo.POST("/files/drop", DropFiles)
		demo.DELETE("/files/:id", RemoveFile)
		demo.DELETE("/files", ResetFiles)
		demo.POST("/upload", StartUpload)
		demo.GET("/upload/:id", GetUploadRun)
	}

	return router
}

// setupTestWidget installs a fresh multi-file widget with a fast simulator
func setupTestWidget() *widget.Widget {
	w := widget.New()
	multiple := true
	maxSize := 1
	w.ApplyConfig(&types.FileUploadConfig{
		FileConstraints: &types.FileConstraints{
			MaxSizeInMB: &maxSize,
			Multiple:    &multiple,
		},
	})
	w.SetUploadOptions(&types.UploadOptions{Delay: 20 * time.Millisecond, FailureChance: 0})
	models.SetWidget(w)
	return w
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "127.0.0.1:12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestGetSettingsDefaults checks the resolved defaults endpoint
func TestGetSettingsDefaults(t *testing.T) {
	router := setupRouter()
	models.SetWidget(widget.New())

	w := doJSON(router, "GET", "/api/demo/v1/settings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code 200, got %d", w.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("Response should contain data")
	}
	text, _ := data["text"].(map[string]any)
	if text["title"] != "Upload a File" {
		t.Errorf("Expected default title, got %v", text["title"])
	}
}

// TestApplyConfigObject applies a config object and checks precedence
func TestApplyConfigObject(t *testing.T) {
	router := setupRouter()
	setupTestWidget()

	w := doJSON(router, "POST", "/api/demo/v1/config", map[string]any{
		"text": map[string]any{"title": "From Object"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(router, "GET", "/api/demo/v1/settings", nil)
	var response map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]any)
	text := data["text"].(map[string]any)
	if text["title"] != "From Object" {
		t.Errorf("Expected config title to win, got %v", text["title"])
	}
}

// TestApplyConfigStringForm sends the JSON-string persisted form
func TestApplyConfigStringForm(t *testing.T) {
	router := setupRouter()
	setupTestWidget()

	encoded, _ := json.Marshal(`{"text":{"title":"From String"}}`)
	req, _ := http.NewRequest("POST", "/api/demo/v1/config", bytes.NewBuffer(encoded))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "127.0.0.1:12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]any)
	if applied, _ := data["applied"].(bool); !applied {
		t.Error("Expected applied=true for a valid string config")
	}
}

// TestApplyConfigMalformedString degrades to defaults instead of erroring
func TestApplyConfigMalformedString(t *testing.T) {
	router := setupRouter()
	models.SetWidget(widget.New())

	encoded, _ := json.Marshal(`{"text": broken`)
	req, _ := http.NewRequest("POST", "/api/demo/v1/config", bytes.NewBuffer(encoded))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "127.0.0.1:12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code 200, got %d", w.Code)
	}
	var response map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]any)
	if applied, _ := data["applied"].(bool); applied {
		t.Error("Expected applied=false for malformed config string")
	}
	settings := data["settings"].(map[string]any)
	text := settings["text"].(map[string]any)
	if text["title"] != "Upload a File" {
		t.Errorf("Malformed config should leave defaults, got %v", text["title"])
	}
}

// TestSelectFilesOversize rejects the whole batch with 413
func TestSelectFilesOversize(t *testing.T) {
	router := setupRouter()
	setupTestWidget() // 1MB limit

	w := doJSON(router, "POST", "/api/demo/v1/files/select", map[string]any{
		"files": []map[string]any{
			{"fileName": "ok.txt", "size": 100, "fileType": "text/plain"},
			{"fileName": "big.bin", "size": 2 * 1024 * 1024, "fileType": "application/octet-stream"},
		},
	})
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("Expected status code 413, got %d: %s", w.Code, w.Body.String())
	}

	// nothing queued
	w = doJSON(router, "GET", "/api/demo/v1/files", nil)
	var response map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]any)
	if count, _ := data["count"].(float64); count != 0 {
		t.Errorf("Expected empty list after rejected batch, got %v", count)
	}
}

// TestSelectThenRemove walks the select -> list -> remove flow
func TestSelectThenRemove(t *testing.T) {
	router := setupRouter()
	setupTestWidget()

	w := doJSON(router, "POST", "/api/demo/v1/files/select", map[string]any{
		"files": []map[string]any{
			{"fileName": "a.txt", "size": 10, "fileType": "text/plain"},
			{"fileName": "b.txt", "size": 20, "fileType": "text/plain"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]any)
	files := data["files"].([]any)
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	first := files[0].(map[string]any)
	id, _ := first["id"].(string)
	if id == "" {
		t.Fatal("File entry should carry an id")
	}

	w = doJSON(router, "DELETE", "/api/demo/v1/files/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code 200, got %d", w.Code)
	}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	data = response["data"].(map[string]any)
	if count, _ := data["count"].(float64); count != 1 {
		t.Errorf("Expected 1 file after removal, got %v", count)
	}
}

// TestRemoveFileNotFound returns 404 for unknown ids
func TestRemoveFileNotFound(t *testing.T) {
	router := setupRouter()
	setupTestWidget()

	w := doJSON(router, "DELETE", "/api/demo/v1/files/unknown-id", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status code 404, got %d", w.Code)
	}
}

// TestStartUploadNoFiles returns 400 when nothing is queued
func TestStartUploadNoFiles(t *testing.T) {
	router := setupRouter()
	setupTestWidget()

	w := doJSON(router, "POST", "/api/demo/v1/upload", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status code 400, got %d", w.Code)
	}
}

// TestUploadRunFlow starts a run and polls until it finishes
func TestUploadRunFlow(t *testing.T) {
	router := setupRouter()
	setupTestWidget()

	w := doJSON(router, "POST", "/api/demo/v1/files/select", map[string]any{
		"files": []map[string]any{
			{"fileName": "a.txt", "size": 10, "fileType": "text/plain"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Select failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(router, "POST", "/api/demo/v1/upload", nil)
	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected status code 202, got %d: %s", w.Code, w.Body.String())
	}
	var response map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]any)
	runID, _ := data["runId"].(string)
	if runID == "" {
		t.Fatal("Response should contain runId")
	}

	deadline := time.Now().Add(3 * time.Second)
	for {
		w = doJSON(router, "GET", "/api/demo/v1/upload/"+runID, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status code 200, got %d", w.Code)
		}
		_ = json.Unmarshal(w.Body.Bytes(), &response)
		run := response["data"].(map[string]any)
		if run["status"] == models.RunStatusDone {
			results := run["results"].([]any)
			if len(results) != 1 {
				t.Fatalf("Expected 1 result, got %d", len(results))
			}
			result := results[0].(map[string]any)
			if success, _ := result["success"].(bool); !success {
				t.Errorf("Expected success with failureChance=0: %v", result)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("Upload run never finished")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// TestConcurrentUploadRuns starts two overlapping runs and checks both finish
// with their own results, without the second run clobbering the first and
// without either run leaking its progress callback into the widget
func TestConcurrentUploadRuns(t *testing.T) {
	router := setupRouter()
	demoWidget := setupTestWidget()

	w := doJSON(router, "POST", "/api/demo/v1/files/select", map[string]any{
		"files": []map[string]any{
			{"fileName": "a.txt", "size": 10, "fileType": "text/plain"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Select failed: %d %s", w.Code, w.Body.String())
	}

	startRun := func() string {
		w := doJSON(router, "POST", "/api/demo/v1/upload", nil)
		if w.Code != http.StatusAccepted {
			t.Fatalf("Expected status code 202, got %d: %s", w.Code, w.Body.String())
		}
		var response map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &response)
		data := response["data"].(map[string]any)
		runID, _ := data["runId"].(string)
		if runID == "" {
			t.Fatal("Response should contain runId")
		}
		return runID
	}

	first := startRun()
	second := startRun()
	if first == second {
		t.Fatalf("Run ids must be distinct, both were %q", first)
	}

	waitDone := func(runID string) {
		deadline := time.Now().Add(3 * time.Second)
		for {
			w := doJSON(router, "GET", "/api/demo/v1/upload/"+runID, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("Expected status code 200, got %d", w.Code)
			}
			var response map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			run := response["data"].(map[string]any)
			if run["status"] == models.RunStatusDone {
				results := run["results"].([]any)
				if len(results) != 1 {
					t.Fatalf("Run %s: expected 1 result, got %d", runID, len(results))
				}
				return
			}
			if time.Now().After(deadline) {
				t.Fatalf("Run %s never finished", runID)
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
	waitDone(first)
	waitDone(second)

	if opts := demoWidget.UploadOptionsCopy(); opts.OnProgress != nil {
		t.Error("Run-scoped progress callback leaked into the widget options")
	}
}

// TestGetUploadRunNotFound returns 404 for unknown run ids
func TestGetUploadRunNotFound(t *testing.T) {
	router := setupRouter()

	w := doJSON(router, "GET", "/api/demo/v1/upload/deadbeef", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status code 404, got %d", w.Code)
	}
}
