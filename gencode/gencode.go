// Package gencode is a read-only registry of NCBI genetic-code tables:
// per-table codon→amino-acid mappings plus start and stop codon sets,
// keyed by the NCBI translation table identifier.
//
// The registry is populated once at package init and never mutated at
// runtime, so it is safe for concurrent use without locking.
package gencode

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTable indicates a translation table id absent from the registry.
var ErrUnknownTable = errors.New("gencode: unknown translation table id")

// Table is one genetic code: an immutable codon→amino-acid mapping with
// its start and stop codon sets. Amino acids are single-letter codes,
// with '*' marking a stop.
type Table struct {
	ID          int
	Name        string
	Description string
	codons      map[string]byte
	starts      map[string]bool
	stops       map[string]bool
}

// Translate returns the amino acid for codon, or ok=false when the
// codon is not in the table (non-ATGC symbols, wrong length).
func (t Table) Translate(codon string) (aa byte, ok bool) {
	aa, ok = t.codons[codon]

	return aa, ok
}

// IsStart reports whether codon is a start codon of this table.
func (t Table) IsStart(codon string) bool { return t.starts[codon] }

// IsStop reports whether codon is a stop codon of this table.
func (t Table) IsStop(codon string) bool { return t.stops[codon] }

// registry holds every known table; populated by init in tables.go.
var registry = make(map[int]Table)

// register adds a table during package init.
func register(id int, name, description, aminoAcids string, starts, stops []string) {
	codons := make(map[string]byte, 64)
	k := 0
	for _, b1 := range baseOrder {
		for _, b2 := range baseOrder {
			for _, b3 := range baseOrder {
				codons[string([]byte{b1, b2, b3})] = aminoAcids[k]
				k++
			}
		}
	}
	t := Table{
		ID:          id,
		Name:        name,
		Description: description,
		codons:      codons,
		starts:      make(map[string]bool, len(starts)),
		stops:       make(map[string]bool, len(stops)),
	}
	for _, c := range starts {
		t.starts[c] = true
	}
	for _, c := range stops {
		t.stops[c] = true
	}
	registry[id] = t
}

// baseOrder is the codon enumeration order of the packed amino-acid
// strings in tables.go (TTT, TTC, TTA, TTG, TCT, ...).
var baseOrder = []byte{'T', 'C', 'A', 'G'}

// Lookup returns the table registered under id.
func Lookup(id int) (Table, error) {
	t, ok := registry[id]
	if !ok {
		return Table{}, fmt.Errorf("%w: %d", ErrUnknownTable, id)
	}

	return t, nil
}

// IDs returns every registered table id in ascending order.
func IDs() []int {
	ids := make([]int, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
