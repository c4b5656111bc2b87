package isa

import (
	"maps"
	"slices"
)

// SymbolTable maps label names to absolute addresses.
//
// A table is filled before any instruction is encoded and only read
// afterwards, so it may be shared by concurrent encoders.
type SymbolTable map[string]uint16

// Lookup returns the address of a label.
func (st SymbolTable) Lookup(name string) (addr uint16, err error) {
	addr, ok := st[name]
	if !ok {
		err = ErrLabelMissing(name)
	}
	return
}

// Names returns the label names in sorted order.
func (st SymbolTable) Names() []string {
	return slices.Sorted(maps.Keys(st))
}
