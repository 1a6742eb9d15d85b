package config

// GlobalParameters is the persisted global configuration record.
// The on-disk schema is exactly these two top-level YAML keys; external
// tooling depends on the key names staying stable.
type GlobalParameters struct {
	// UserID is a randomly generated identifier, stable for the lifetime of
	// the machine.
	UserID string `yaml:"user_id" mapstructure:"user_id"`

	// AnalyticsOptOut reports whether the user opted out of usage analytics.
	AnalyticsOptOut bool `yaml:"analytics_opt_out" mapstructure:"analytics_opt_out"`
}
