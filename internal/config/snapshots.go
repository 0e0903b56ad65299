package config

// SnapshotConfig controls dated snapshot writes and pruning.
type SnapshotConfig struct {
	Enabled bool   `json:"enabled"`
	Dir     string `json:"dir"`
	// RetentionDays bounds how long dated catalog snapshots are kept.
	// Weekly snapshots are kept for the whole season regardless.
	RetentionDays int `json:"retentionDays"`
}

func defaultSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled:       defaultSnapshotsOn,
		Dir:           defaultSnapshotDir,
		RetentionDays: defaultSnapshotRetention,
	}
}

func (c *SnapshotConfig) applyEnv() {
	c.Enabled = boolEnvOrDefault(envSnapshotsOn, c.Enabled)
	c.Dir = envOrDefault(envSnapshotDir, c.Dir)
	c.RetentionDays = intEnvOrDefault(envSnapshotRetention, c.RetentionDays)
}
