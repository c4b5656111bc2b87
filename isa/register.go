package isa

import (
	"fmt"
)

const (
	REGISTER_COUNT = 16 // Number of general purpose registers.
)

// Register is a general purpose register index.
type Register uint8

// Valid returns true if the register index fits the 4-bit register field.
func (reg Register) Valid() bool {
	return reg < REGISTER_COUNT
}

func (reg Register) String() string {
	return fmt.Sprintf("R%d", uint8(reg))
}
