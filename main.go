// =============================================================================
// Beer Review Extractor - Main Entry Point
// =============================================================================
//
// USAGE:
//   beerparse process <input-file> <output-dir>  - Extract the three CSV tables
//   beerparse headers <input-file>               - Show the derived headers
//   beerparse version                            - Display the version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Parsing, accumulation and output
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/beer-review-extractor/cmd"
)

func main() {
	cmd.Execute()
}
