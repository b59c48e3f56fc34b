// Package config provides configuration for the typewriter.
//
// Configuration is resolved from four sources, lowest precedence first:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension (LoadFile)
//  3. TYPEWRITER_* environment variables (ApplyEnv)
//  4. Command-line flags, applied by the caller
//
// Validate reports every problem at once. A Watcher reloads the file when
// it changes so the hot-reloadable settings can be applied while running.
//
// Example file:
//
//	[grid]
//	width = 64
//	height = 16
//
//	[keyboard]
//	layout = "qwertz"
//
//	[display]
//	bell = true
//	ink = "#202020"
//	paper = "#f4ecd8"
package config
