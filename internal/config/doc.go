// Package config provides configuration management for taptempo.
//
// Settings cover the playback backend, the write-confirmation policy
// and the log file. Flags override whatever the config file carries.
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// mpv playback, immediate writes, logging disabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// missing file falls back to defaults
//
// # Saving Settings
//
//	settings.RequireConfirm = true
//	err := settings.Save("/path/to/config.json")
package config
