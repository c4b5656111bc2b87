package isa

import (
	"fmt"
)

// Address is the target of a next-word operand or a relative branch.
//
// The concrete types are RawAddress, SymbolicAddress, RelativeAddress and
// RelativeSymbolicAddress.
type Address interface {
	String() string
	isAddress()
}

// RawAddress is a literal absolute address.
type RawAddress uint16

// SymbolicAddress is an absolute address named by a label.
type SymbolicAddress string

// RelativeAddress is a literal signed displacement.
type RelativeAddress int8

// RelativeSymbolicAddress is a displacement to a label.
type RelativeSymbolicAddress string

func (RawAddress) isAddress()              {}
func (SymbolicAddress) isAddress()         {}
func (RelativeAddress) isAddress()         {}
func (RelativeSymbolicAddress) isAddress() {}

func (addr RawAddress) String() string {
	return fmt.Sprintf("0x%x", uint16(addr))
}

func (addr SymbolicAddress) String() string {
	return "@" + string(addr)
}

func (addr RelativeAddress) String() string {
	return fmt.Sprintf("%d", int8(addr))
}

func (addr RelativeSymbolicAddress) String() string {
	return string(addr)
}

// Resolve returns the absolute value of an address. Symbolic addresses are
// looked up in the symbol table.
func Resolve(addr Address, symbols SymbolTable) (value uint16, err error) {
	switch addr := addr.(type) {
	case RawAddress:
		value = uint16(addr)
	case SymbolicAddress:
		value, err = symbols.Lookup(string(addr))
	case nil:
		err = ErrAddressMissing
	default:
		err = ErrAddressInvalid
	}

	return
}

// ResolveRelative returns the 8-bit displacement field for an address.
//
// Only literal relative displacements resolve. The displacement of a label
// depends on the address of the branch itself, which is not tracked.
func ResolveRelative(addr Address) (field uint8, err error) {
	rel, ok := addr.(RelativeAddress)
	if !ok {
		err = ErrRelativeUnresolved{Address: addr}
		return
	}

	field = uint8(int8(rel))
	return
}
