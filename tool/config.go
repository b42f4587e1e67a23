package tool

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/moyoez/uploadkit-go/types"
)

var (
	ConfigPath    = "config.yaml" // be aware that it can be changed, default to ./config.yaml
	CurrentConfig types.AppConfig
)

func defaultConfig() types.AppConfig {
	return types.AppConfig{
		Port:          53320, // demo only, change it if something else squats on it
		Log:           "dev",
		DelayMs:       2000,
		FailureChance: 0.1,
		WidgetConfig:  "", // empty means widget defaults
	}
}

// LoadConfig reads the demo app config from path, creating the file with
// defaults when it does not exist yet.
func LoadConfig(path string) (types.AppConfig, error) {
	if path == "" {
		path = ConfigPath
	}
	ConfigPath = path

	cfg := defaultConfig()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if writeErr := writeDefaultConfig(path, cfg); writeErr != nil {
				return cfg, fmt.Errorf("config file not found, and failed to generate default config: %v", writeErr)
			}
			DefaultLogger.Infof("Created new config file at %s", path)
			CurrentConfig = cfg
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config file path is a directory: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %v", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		DefaultLogger.Warnf("Invalid port %d in config, using default", cfg.Port)
		cfg.Port = defaultConfig().Port
	}
	if cfg.FailureChance < 0 || cfg.FailureChance > 1 {
		DefaultLogger.Warnf("failureChance %v out of [0,1], using default", cfg.FailureChance)
		cfg.FailureChance = defaultConfig().FailureChance
	}
	if cfg.DelayMs < 0 {
		cfg.DelayMs = defaultConfig().DelayMs
	}

	CurrentConfig = cfg
	return cfg, nil
}

func writeDefaultConfig(path string, cfg types.AppConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func GetCurrentConfig() *types.AppConfig {
	return &CurrentConfig
}
