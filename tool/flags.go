package tool

import "flag"

// Config holds runtime overrides from CLI flags.
type Config struct {
	Log              string
	Port             int
	UseConfigPath    string
	UseDelayMs       int
	UseFailureChance float64
	UseMaxSizeMB     int
	UseVariant       string
	UseMultiple      bool
	UseWidgetConfig  string // inline JSON FileUploadConfig, wins over config file
}

// SetFlags parses CLI flags and returns the override config.
func SetFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.Log, "log", "", "log mode: dev|prod|none")
	flag.IntVar(&cfg.Port, "port", 0, "override demo server port")
	flag.StringVar(&cfg.UseConfigPath, "useConfigPath", "", "override config file path")
	flag.IntVar(&cfg.UseDelayMs, "useDelay", 0, "override simulated upload delay in milliseconds")
	flag.Float64Var(&cfg.UseFailureChance, "useFailureChance", -1, "override simulated failure chance in [0,1]")
	flag.IntVar(&cfg.UseMaxSizeMB, "useMaxSizeMB", 0, "override max accepted file size in MB")
	flag.StringVar(&cfg.UseVariant, "useVariant", "", "override widget variant (dropzone|button|multi-file|image-preview)")
	flag.BoolVar(&cfg.UseMultiple, "useMultiple", false, "allow multiple files regardless of widget config")
	flag.StringVar(&cfg.UseWidgetConfig, "useWidgetConfig", "", "inline JSON widget configuration (wins over the config file)")
	flag.Parse()
	return cfg
}
