// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
)

// Error defines a constant error
type Error string

// Error implements the Errors interface
func (e Error) Error() string { return string(e) }

const (
	ErrIsDirectory = Error("is a directory")
	ErrIsNotAFile  = Error("is not a file")
)

// Config allows each user to have their own configuration.
type Config struct {
	DebugFlags DebugFlags_t `json:"DebugFlags"`
	Parser     Parser_t     `json:"Parser"`
	Resources  Resources_t  `json:"Resources"`
}

type DebugFlags_t struct {
	Diagnostics bool `json:"Diagnostics,omitempty"`
	Lexer       bool `json:"Lexer,omitempty"`
	LogFile     bool `json:"LogFile,omitempty"`
	LogTime     bool `json:"LogTime,omitempty"`
	Parser      bool `json:"Parser,omitempty"`
}

type Parser_t struct {
	// StrictMode is loaded from the config file; no command reads it,
	// so diagnostics are handled the same whether it is set or not.
	StrictMode bool `json:"StrictMode,omitempty"`
}

type Resources_t struct {
	// CacheSize is the number of .frx files kept in memory.
	CacheSize int `json:"CacheSize,omitempty"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Resources: Resources_t{CacheSize: 16},
	}
}

// Load reads the configuration file, falling back to the defaults
// when the file is missing or malformed.
func Load(name string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	// create a config with default values for the application
	cfg := Default()
	if sb, err := os.Stat(name); errors.Is(err, os.ErrNotExist) || os.IsNotExist(err) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if sb.Mode().IsDir() {
		return cfg, ErrIsDirectory
	} else if !sb.Mode().IsRegular() {
		return cfg, ErrIsNotAFile
	}

	var tmp Config
	if data, err := os.ReadFile(name); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err = json.Unmarshal(data, &tmp); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		} else {
			log.Printf("[config] %q: loaded %s\n", name, string(data))
		}
	}
	// validate some stuff
	if tmp.Resources.CacheSize <= 0 {
		tmp.Resources.CacheSize = cfg.Resources.CacheSize
	}
	*cfg = tmp
	return cfg, nil
}
