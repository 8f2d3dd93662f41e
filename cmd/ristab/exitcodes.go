package main

// Exit codes used across all commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing repository or config)
	ExitDataError   = 3 // Data error (no rows extracted, malformed input)
)
