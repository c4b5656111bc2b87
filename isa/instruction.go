package isa

import (
	"fmt"
)

// Instruction is a parsed instruction of one of the six formats.
//
// The concrete types are InstructionI through InstructionVI.
type Instruction interface {
	Format() Format   // Instruction format.
	Mnemonic() string // Mnemonic as written in the source.
	String() string   // Assembly language representation.
	isInstruction()
}

// InstructionI is a two operand instruction.
type InstructionI struct {
	Op  string
	Src Operand
	Dst Operand
}

// InstructionII is a shift instruction.
type InstructionII struct {
	Op    string
	Shift uint8
	Dst   Operand
}

// InstructionIII is an immediate instruction.
type InstructionIII struct {
	Op        string
	Dst       Operand
	Immediate uint16 // Raw 16-bit pattern of the immediate.
}

// InstructionIV is a single operand instruction.
type InstructionIV struct {
	Op  string
	Dst Operand
}

// InstructionV is a branch to an operand.
type InstructionV struct {
	Op  string
	Dst Operand
}

// InstructionVI is a jump by a relative displacement.
type InstructionVI struct {
	Op           string
	Displacement Address
}

func (InstructionI) isInstruction()   {}
func (InstructionII) isInstruction()  {}
func (InstructionIII) isInstruction() {}
func (InstructionIV) isInstruction()  {}
func (InstructionV) isInstruction()   {}
func (InstructionVI) isInstruction()  {}

func (InstructionI) Format() Format   { return FORMAT_I }
func (InstructionII) Format() Format  { return FORMAT_II }
func (InstructionIII) Format() Format { return FORMAT_III }
func (InstructionIV) Format() Format  { return FORMAT_IV }
func (InstructionV) Format() Format   { return FORMAT_V }
func (InstructionVI) Format() Format  { return FORMAT_VI }

func (in InstructionI) Mnemonic() string   { return in.Op }
func (in InstructionII) Mnemonic() string  { return in.Op }
func (in InstructionIII) Mnemonic() string { return in.Op }
func (in InstructionIV) Mnemonic() string  { return in.Op }
func (in InstructionV) Mnemonic() string   { return in.Op }
func (in InstructionVI) Mnemonic() string  { return in.Op }

func (in InstructionI) String() string {
	return fmt.Sprintf("%v %v, %v", in.Op, in.Src, in.Dst)
}

func (in InstructionII) String() string {
	return fmt.Sprintf("%v %d, %v", in.Op, in.Shift, in.Dst)
}

func (in InstructionIII) String() string {
	return fmt.Sprintf("%v %v, 0x%x", in.Op, in.Dst, in.Immediate)
}

func (in InstructionIV) String() string {
	if in.Op == MNEMONIC_ROI && in.Dst == Direct(0) {
		return in.Op
	}
	return fmt.Sprintf("%v %v", in.Op, in.Dst)
}

func (in InstructionV) String() string {
	return fmt.Sprintf("%v %v", in.Op, in.Dst)
}

func (in InstructionVI) String() string {
	if in.Displacement == nil {
		return in.Op
	}
	return fmt.Sprintf("%v %v", in.Op, in.Displacement)
}
