package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/moyoez/uploadkit-go/api"
	"github.com/moyoez/uploadkit-go/api/controllers"
	"github.com/moyoez/uploadkit-go/api/notifyhub"
	"github.com/moyoez/uploadkit-go/notify"
	"github.com/moyoez/uploadkit-go/settings"
	"github.com/moyoez/uploadkit-go/tool"
	"github.com/moyoez/uploadkit-go/types"
	"github.com/moyoez/uploadkit-go/widget"
)

func main() {
	cfg := tool.SetFlags()
	appCfg, err := tool.LoadConfig(cfg.UseConfigPath)
	if err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
	if cfg.Port > 0 {
		appCfg.Port = cfg.Port
	}
	if cfg.UseDelayMs > 0 {
		appCfg.DelayMs = cfg.UseDelayMs
	}
	if cfg.UseFailureChance >= 0 && cfg.UseFailureChance <= 1 {
		appCfg.FailureChance = cfg.UseFailureChance
	}

	// initialize logger
	tool.InitLogger()
	logMode := appCfg.Log
	if cfg.Log != "" {
		logMode = cfg.Log
	}
	switch strings.ToLower(logMode) {
	case "", "dev":
		tool.DefaultLogger.SetLevel(log.DebugLevel)
	case "prod":
		tool.DefaultLogger.SetLevel(log.InfoLevel)
	case "none":
		tool.DefaultLogger.SetLevel(log.FatalLevel)
	default:
		tool.DefaultLogger.Warnf("Unknown log mode %q, using debug level", logMode)
		tool.DefaultLogger.SetLevel(log.DebugLevel)
	}

	w := widget.New()
	defer w.Close()
	w.SetUploadOptions(&types.UploadOptions{
		Delay:         time.Duration(appCfg.DelayMs) * time.Millisecond,
		FailureChance: appCfg.FailureChance,
	})

	// widget configuration: inline flag wins over the config file string
	widgetConfig := appCfg.WidgetConfig
	if cfg.UseWidgetConfig != "" {
		widgetConfig = cfg.UseWidgetConfig
	}
	if widgetConfig != "" {
		if w.ApplyConfig(widgetConfig) {
			tool.DefaultLogger.Infof("Applied widget configuration from %s",
				map[bool]string{true: "flag", false: "config file"}[cfg.UseWidgetConfig != ""])
		}
	}

	// discrete flag overrides sit below config fields, above defaults
	var ov types.Overrides
	if cfg.UseVariant != "" {
		ov.Variant = &cfg.UseVariant
	}
	if cfg.UseMaxSizeMB > 0 {
		ov.MaxSizeInMB = &cfg.UseMaxSizeMB
	}
	if cfg.UseMultiple {
		multiple := true
		ov.Multiple = &multiple
	}
	w.SetOverrides(ov)

	resolved := w.Settings()
	tool.DefaultLogger.Infof("Widget ready: variant=%s, maxSize=%dMB, multiple=%v (%s)",
		resolved.Variant, resolved.MaxSizeInMB, resolved.Multiple,
		settings.MaxFileSizeText(resolved.MaxSizeInMB))

	hub := notifyhub.New()
	notify.SetHub(hub)

	// previews finish asynchronously, push them to connected demo clients
	w.OnImageDecoded = func(dataURI string) {
		notify.SendEvent(types.NotifyTypePreviewReady, "", map[string]any{
			"preview": dataURI,
		})
	}

	controllers.DemoBaseURL = fmt.Sprintf("http://127.0.0.1:%d/", appCfg.Port)

	server := api.NewServer(appCfg.Port, w, hub)
	if err := server.Start(); err != nil {
		tool.DefaultLogger.Fatalf("Demo server startup failed: %v", err)
	}
}
