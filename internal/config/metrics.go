package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `json:"enabled"`
	Port         string `json:"port"`
	OtlpEndpoint string `json:"otlpEndpoint"`
	ServiceName  string `json:"serviceName"`
	OtlpInsecure bool   `json:"otlpInsecure"`
}

func defaultMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      true,
		Port:         defaultMetricsPort,
		ServiceName:  "draftline",
		OtlpInsecure: true,
	}
}

func (c *MetricsConfig) applyEnv() {
	c.Enabled = boolEnvOrDefault(envMetricsOn, c.Enabled)
	c.Port = envOrDefault(envMetricsPort, c.Port)
	c.OtlpEndpoint = envOrDefault(envOtelEndpoint, c.OtlpEndpoint)
	c.ServiceName = envOrDefault(envOtelService, c.ServiceName)
	c.OtlpInsecure = boolEnvOrDefault(envOtelInsecure, c.OtlpInsecure)
}
