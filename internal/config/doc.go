// Package config loads roster's configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/roster/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. Environment variables override whatever the file said
//
// The binary loads a .env file from the working directory before calling
// Load, so the variables below may also come from there.
//
// # Default Values
//
//   - Config file: ~/.config/roster/config.toml
//   - Fixture: the copy embedded in the binary
//   - Page size: 20
//   - Log directory: ~/.local/share/roster/logs
//   - Log level: info
//
// # TOML Format
//
//	fixture = "~/data/usersmock.json"
//	page_size = 20
//	log_dir = "~/.local/share/roster/logs"
//	log_level = "info"
//
// All fields are optional. Tilde expansion is performed for paths.
//
// # Environment
//
//   - ROSTER_FIXTURE: fixture path
//   - ROSTER_PAGE_SIZE: positive integer page size
//   - ROSTER_LOG_LEVEL: debug, info, warn or error
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files
// (except os.ErrNotExist, which triggers defaults), TOML parsing errors and
// an invalid ROSTER_PAGE_SIZE. A missing config file is not an error.
package config
