package models

// ConfigResponse is the envelope the HTTP surface wraps every configuration
// answer in. On success Data carries the merged mapping (or a single value
// for key lookups); on failure Error carries a human-readable cause.
type ConfigResponse struct {
	// Success reports whether the resolution (or lookup) succeeded.
	Success bool `json:"success"`

	// Data is the resolved configuration mapping, or the single looked-up
	// value. Omitted on failure.
	Data any `json:"data,omitempty"`

	// Error is the failure description. Omitted on success.
	Error string `json:"error,omitempty"`

	// Timestamp is the Unix-millisecond time the response was produced.
	Timestamp int64 `json:"timestamp"`
}
