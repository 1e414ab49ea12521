// Package splitter extracts the canonical chromosomes from a multi-FASTA
// file, one output file per chromosome.
//
// The scan is a two-state machine: a header whose first token is a canonical
// name selects the record and rotates the output to <name>.fa; any other
// header deselects it. Selected headers are written as ">" + line[4:],
// sequence lines verbatim. A chromosome seen twice is overwritten, so the
// last occurrence wins.
package splitter
