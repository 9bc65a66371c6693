// Package logtail reads the tail of roster's log file for the diagnostics
// view.
//
// Read uses a ring buffer so only the last maxLines are kept in memory,
// however large the file is. Parse splits the JSON lines written by the
// logging package into time, level, message and the remaining fields, so
// the UI can colour each part. Lines that are not JSON are passed through.
//
//	entries, err := logtail.ReadEntries(cfg.LogPath(), 200)
package logtail
