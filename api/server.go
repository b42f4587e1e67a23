package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/moyoez/uploadkit-go/api/controllers"
	"github.com/moyoez/uploadkit-go/api/middlewares"
	"github.com/moyoez/uploadkit-go/api/models"
	"github.com/moyoez/uploadkit-go/api/notifyhub"
	"github.com/moyoez/uploadkit-go/tool"
	"github.com/moyoez/uploadkit-go/widget"
)

// Server hosts the demo widget API.
type Server struct {
	port   int
	hub    *notifyhub.Hub
	engine *gin.Engine
	server *http.Server
	mu     sync.RWMutex
}

// NewServer wires the demo widget into a server on the given port.
func NewServer(port int, w *widget.Widget, hub *notifyhub.Hub) *Server {
	models.SetWidget(w)
	return &Server{
		port: port,
		hub:  hub,
	}
}

func (s *Server) setupRoutes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	demo := engine.Group("/api/demo/v1", middlewares.OnlyAllowLocal)
	{
		demo.GET("/settings", controllers.GetSettings)     // resolved effective settings
		demo.POST("/config", controllers.ApplyConfig)      // config object or JSON string
		demo.DELETE("/config", controllers.ClearConfig)    // back to overrides/defaults
		demo.POST("/overrides", controllers.SetOverrides)  // explicit property overrides
		demo.GET("/files", controllers.ListFiles)          // accepted file list
		demo.POST("/files/select", controllers.SelectFiles) // picker path: whole batch rejected on oversize
		demo.POST("/files/drop", controllers.DropFiles)     // drop path: aborts at first oversized file
		demo.DELETE("/files/:id", controllers.RemoveFile)
		demo.DELETE("/files", controllers.ResetFiles)
		demo.POST("/upload", controllers.StartUpload) // async simulator run, returns runId
		demo.GET("/upload/:id", controllers.GetUploadRun)
		demo.GET("/create-qr-code", controllers.GenerateQRCode) // QR code PNG (same params as api.qrserver.com)
		if s.hub != nil {
			demo.GET("/notify-ws", HandleNotifyWS(s.hub))
		}
	}

	return engine
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	engine := s.setupRoutes()

	s.mu.Lock()
	s.engine = engine
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: engine,
	}
	s.mu.Unlock()

	tool.DefaultLogger.Infof("Starting demo API server on http://127.0.0.1:%d", s.port)
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.RLock()
	srv := s.server
	s.mu.RUnlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
