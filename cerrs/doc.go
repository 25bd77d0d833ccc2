// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package cerrs defines constant error types using a custom Error string type.
// It centralizes common error messages used throughout the application for
// I/O-level failures such as missing files, oversized inputs, and invalid
// paths. The Error type supports comparison via errors.Is().
package cerrs
