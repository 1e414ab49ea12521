// internal/clibase/usage.go
package clibase

import (
	"fmt"

	"chromsplit/internal/version"
)

// Long returns the shared header shown by `chromsplit --help`.
func Long(name string) string {
	return fmt.Sprintf(`%s: split a genome assembly into canonical chromosome files

Writes one <chrom>.fa per record whose header names chr1..chr22, chrX or chrY.
The output header is the input header from its 5th character on
(">chr7 desc" -> ">7 desc"); sequence lines are copied verbatim.

Version: %s`, name, version.Version)
}

// SplitExamples is the quickstart block for the split command.
const SplitExamples = `  # split into the working directory
  chromsplit GRCh38.fa

  # split into a separate directory, keeping the old 'tmp' artefact
  chromsplit split -o chroms --legacy-placeholder GRCh38.fa

  # read from a pipe and only report what would be written
  cat GRCh38.fa | chromsplit --dry-run -

  # inspect the result
  chromsplit summary chroms`
