package config

// QualityConfig sets the match-rate bands and fuzzy matching floor used when
// grading a collection run.
type QualityConfig struct {
	// RedBelow is the match-rate percentage under which a run is rejected.
	RedBelow float64 `json:"redBelow"`
	// YellowBelow is the percentage under which a run publishes with a warning.
	YellowBelow float64 `json:"yellowBelow"`
	// FuzzyFloor is the minimum Jaro-Winkler similarity for a name match.
	FuzzyFloor float64 `json:"fuzzyFloor"`
}

func defaultQuality() QualityConfig {
	return QualityConfig{
		RedBelow:    defaultQualityRedBelow,
		YellowBelow: defaultQualityYellowBelow,
		FuzzyFloor:  defaultQualityFuzzyFloor,
	}
}

func (c *QualityConfig) applyEnv() {
	c.RedBelow = floatEnvOrDefault(envQualityRedBelow, c.RedBelow)
	c.YellowBelow = floatEnvOrDefault(envQualityYellowBelow, c.YellowBelow)
	c.FuzzyFloor = floatEnvOrDefault(envQualityFuzzyFloor, c.FuzzyFloor)
}
