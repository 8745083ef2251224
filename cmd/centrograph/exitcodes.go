package main

// Exit codes shared by all subcommands.
const (
	ExitSuccess   = 0 // Success
	ExitError     = 1 // General error (invalid arguments, runtime failure)
	ExitDataError = 2 // Input/data error (bad topology parameters, degenerate run)
	ExitDBError   = 3 // History database error
)
