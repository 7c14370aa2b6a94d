package profile

// DefaultProfileName selects the balanced weight profile
const DefaultProfileName = "default"

// ==================== Error Messages ====================

const (
	// ErrMsgReadProfilesFailed is the error when the profile file cannot be read
	ErrMsgReadProfilesFailed = "failed to read profile file: %w"

	// ErrMsgParseProfilesFailed is the error when the profile YAML is malformed
	ErrMsgParseProfilesFailed = "failed to parse profile file %s: %w"

	// ErrMsgProfileNameRequired is the error for a profile entry without a name
	ErrMsgProfileNameRequired = "profile entry %d has no name"
)

// ==================== Log Messages ====================

const (
	LogMsgProfilesLoaded    = "Scoring profiles loaded"
	LogMsgProfileOverridden = "Built-in scoring profile overridden"
)
