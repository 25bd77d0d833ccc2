// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config manages JSON configuration loading for the vb6parse
// command line tool. It handles debug flags, parser options, and the
// resource resolver cache size. Configuration is loaded from a
// vb6parse.json file with sensible defaults.
package config
