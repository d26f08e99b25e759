package types

// CheckResult is the outcome of a single service health check.
type CheckResult struct {
	// Service name: api, database, or ollama.
	// example: ollama
	Service string `json:"service" example:"ollama"`
	// Whether the check passed.
	// example: true
	OK bool `json:"ok" example:"true"`
	// Short human-readable detail (model count, table count, error text).
	// example: 3 models cached
	Detail string `json:"detail,omitempty" example:"3 models cached"`
	// How long the check took, in milliseconds.
	// example: 12
	ElapsedMS int64 `json:"elapsed_ms" example:"12"`
}

// StatusReport is returned by GET /status on the serve endpoint.
type StatusReport struct {
	// Per-service check results, in fixed order: api, database, ollama.
	Checks []CheckResult `json:"checks"`
	// True only when every check passed.
	// example: false
	Healthy bool `json:"healthy" example:"false"`
	// Report time in unix seconds.
	// example: 1700000000
	CheckedAtUnix int64 `json:"checked_at_unix" example:"1700000000"`
}

// SyncResult summarizes one model catalogue sync pass.
type SyncResult struct {
	// Identifiers already present in the engine cache.
	Present []string `json:"present,omitempty"`
	// Identifiers pulled successfully during this pass.
	Pulled []string `json:"pulled,omitempty"`
	// Identifiers whose pull failed; the batch continues past them.
	Failed []string `json:"failed,omitempty"`
}
