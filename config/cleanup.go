package config

type CleanupConfig struct {
	// Spec is a cron expression for the remote image cleanup worker.
	Spec string `json:"spec" yaml:"spec"`
	// MaxAttempts caps retries per queued deletion before it is dropped.
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`
}

func ProvideCleanupConfig(cfg *Config) *CleanupConfig {
	if cfg.Cleanup == nil {
		return &CleanupConfig{Spec: "@every 10m", MaxAttempts: 5}
	}
	return cfg.Cleanup
}
