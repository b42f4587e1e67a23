package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupGuardedRouter(executed *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", OnlyAllowLocal, func(c *gin.Context) {
		*executed = true
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestOnlyAllowLocalPassesLoopback(t *testing.T) {
	executed := false
	router := setupGuardedRouter(&executed)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.RemoteAddr = "127.0.0.1:50000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !executed {
		t.Fatal("handler did not run for loopback client")
	}
}

func TestOnlyAllowLocalRejectsRemote(t *testing.T) {
	executed := false
	router := setupGuardedRouter(&executed)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.RemoteAddr = "203.0.113.5:4444"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if executed {
		t.Fatal("handler ran for remote client")
	}
	if got, want := rec.Body.String(), `{"error":"Forbidden"}`; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}
