package telemetry

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrSource   = "source"
	AttrStage    = "stage"
	AttrArtifact = "artifact"
)

// Stage names recorded by the pipeline.
const (
	StageFetch    = "fetch"
	StageMerge    = "merge"
	StageValidate = "validate"
	StagePersist  = "persist"
)
