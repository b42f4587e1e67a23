package types

// AppConfig represents the demo application configuration loaded from the
// config file. WidgetConfig is kept as the raw JSON string form so the demo
// exercises the same parse path hosts use when persisting configuration.
type AppConfig struct {
	Port          int     `yaml:"port"`
	Log           string  `yaml:"log"`           // dev|prod|none
	DelayMs       int     `yaml:"delayMs"`       // simulator delay
	FailureChance float64 `yaml:"failureChance"` // simulator failure probability
	WidgetConfig  string  `yaml:"widgetConfig"`  // JSON-encoded FileUploadConfig, optional
}
