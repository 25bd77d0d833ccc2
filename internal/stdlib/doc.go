// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package stdlib provides file discovery and filesystem utilities for
// finding VB6 source artifacts (.vbp, .cls, .bas, .frm, .frx). It
// returns file metadata including the artifact kind and SHA1 hash,
// and provides generic existence-checking functions for directories
// and files.
package stdlib
