package cli

// Exit codes for the roster binary.
// These codes follow Unix conventions.
const (
	// ExitSuccess indicates the session ended through the Exit menu entry.
	ExitSuccess = 0

	// ExitError indicates the session could not start.
	// Use for: missing or malformed database configuration, a store that
	// cannot be opened, or a terminal that cannot run prompts.
	ExitError = 1
)
