package vm

import (
	"errors"
	"fmt"
)

// FaultCode identifies the condition that terminated execution.
type FaultCode int

// Known fault codes.
const (
	MalformedWord        FaultCode = iota // Instruction word cannot be split into digits.
	UnknownOpcode                         // Opcode is not part of the instruction set.
	InvalidAddressMode                    // Address mode digit is not 0 or 1.
	TruncatedInstruction                  // Not enough cells remain to supply all operands.
	OutOfBounds                           // Read or write outside of memory.
	WriteToImmediate                      // Write through an immediate operand.
	CounterOutOfBounds                    // Program counter left memory without a halt.
	PortFailure                           // The I/O port failed an input request.
)

func (c FaultCode) String() string {
	switch c {
	case MalformedWord:
		return "malformed word"
	case UnknownOpcode:
		return "unknown opcode"
	case InvalidAddressMode:
		return "invalid address mode"
	case TruncatedInstruction:
		return "truncated instruction"
	case OutOfBounds:
		return "out of bounds"
	case WriteToImmediate:
		return "write to immediate"
	case CounterOutOfBounds:
		return "program counter out of bounds"
	case PortFailure:
		return "port failure"
	}
	return "unknown fault"
}

// Fault defines a decode or runtime error. Execution never continues
// past a fault; the machine that produced it is dead.
type Fault struct {
	Code FaultCode
	IP   int // Address of the faulting instruction.
	Msg  string
}

// NewFault creates a new, formatted fault for the instruction at the given address.
func NewFault(code FaultCode, ip int, f string, argv ...interface{}) *Fault {
	return &Fault{
		Code: code,
		IP:   ip,
		Msg:  fmt.Sprintf(f, argv...),
	}
}

func (e *Fault) Error() string {
	return fmt.Sprintf("%04d: %s: %s", e.IP, e.Code, e.Msg)
}

// CodeOf returns the fault code carried by err.
// Returns false if err holds no Fault.
func CodeOf(err error) (FaultCode, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f.Code, true
	}
	return 0, false
}
