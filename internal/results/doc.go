// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package results defines the ParseResult container shared by every
// stage of the parsing pipeline. A stage returns its partial result
// plus the diagnostics it collected; failures are additive across
// stages and no stage aborts on the first error.
package results
