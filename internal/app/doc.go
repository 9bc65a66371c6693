// Package app is roster's composition root.
//
// Run loads the configuration (config file, then environment, then the
// options passed in from flags), opens the rotating log file, decodes the
// user fixture and either starts the Bubble Tea UI or, when stdout is not a
// terminal, prints the requested page as plain text.
//
// Command-line view settings (filters, gender options, sort, page) become
// grid actions through ViewFlags.Actions, so both output modes start from
// the same reduced state.
//
// Fatal errors (returned from Run):
//   - config file unreadable or invalid
//   - log directory not writable
//   - fixture missing or malformed
//   - invalid view flags
//
// Preference and clipboard failures are logged and never stop the UI.
package app
