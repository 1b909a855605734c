// Package cli translates the launcher's process-level inputs into the
// application's internal configuration and handles exit codes. The launcher
// takes no flags of its own: every command-line argument belongs to the
// delegate, so launcher settings arrive through MODLAUNCH_* environment
// variables instead.
package cli
