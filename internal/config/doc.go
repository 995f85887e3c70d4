// Package config loads clipdeck's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/clipdeck/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	api_bind = "127.0.0.1:7488"
//	poll_interval = "1s"
//	toast_duration = "3s"
//	syntax_highlight = true
//	log_file = "~/.local/state/clipdeck/clipdeck.log"
//	log_level = "info"
//
// Every field is optional. Durations use Go duration syntax and must be
// positive. Tilde expansion is performed on log_file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and invalid durations
//
// Missing config files are NOT an error.
package config
