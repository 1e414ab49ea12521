// Package chrom holds the canonical nuclear chromosome set.
package chrom

import "strconv"

// canonical is chr1..chr22, chrX, chrY in karyotype order. Built once, never mutated.
var canonical = func() []string {
	names := make([]string, 0, 24)
	for i := 1; i <= 22; i++ {
		names = append(names, "chr"+strconv.Itoa(i))
	}
	return append(names, "chrX", "chrY")
}()

var index = func() map[string]int {
	m := make(map[string]int, len(canonical))
	for i, n := range canonical {
		m[n] = i
	}
	return m
}()

// Names returns a copy of the canonical set in karyotype order.
func Names() []string {
	out := make([]string, len(canonical))
	copy(out, canonical)
	return out
}

// IsCanonical reports whether name is exactly one of the 24 canonical names.
func IsCanonical(name string) bool {
	_, ok := index[name]
	return ok
}

// Index returns the karyotype position of name, or -1.
func Index(name string) int {
	if i, ok := index[name]; ok {
		return i
	}
	return -1
}

// Len is the size of the canonical set.
func Len() int { return len(canonical) }
