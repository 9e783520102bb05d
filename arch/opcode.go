// Package arch defines the Intcode instruction set along with
// some related helper functions.
package arch

import "strings"

// Known opcodes.
const (
	ADD = 1 // dest := a + b
	MUL = 2 // dest := a * b
	IN  = 3 // dest := port input
	OUT = 4 // port output := mem[src]
	JNZ = 5 // jump to target if cond != 0
	JEZ = 6 // jump to target if cond == 0
	CLT = 7 // dest := a < b
	CEQ = 8 // dest := a == b

	HALT = 99
)

// Opcode returns the opcode for the given instruction name.
// Returns false if the name is not recognized.
func Opcode(name string) (int, bool) {
	switch strings.ToUpper(name) {
	case "ADD":
		return ADD, true
	case "MUL":
		return MUL, true
	case "IN":
		return IN, true
	case "OUT":
		return OUT, true
	case "JNZ":
		return JNZ, true
	case "JEZ":
		return JEZ, true
	case "CLT":
		return CLT, true
	case "CEQ":
		return CEQ, true
	case "HALT":
		return HALT, true
	}
	return 0, false
}

// Name returns the name for the given opcode.
// Returns false if the opcode is not recognized.
func Name(opcode int) (string, bool) {
	switch opcode {
	case ADD:
		return "ADD", true
	case MUL:
		return "MUL", true
	case IN:
		return "IN", true
	case OUT:
		return "OUT", true
	case JNZ:
		return "JNZ", true
	case JEZ:
		return "JEZ", true
	case CLT:
		return "CLT", true
	case CEQ:
		return "CEQ", true
	case HALT:
		return "HALT", true
	}
	return "", false
}

// Argc returns the number of operands the given instruction requires.
// Returns -1 if the opcode is not recognized.
func Argc(opcode int) int {
	switch opcode {
	case ADD, MUL, CLT, CEQ:
		return 3
	case JNZ, JEZ:
		return 2
	case IN, OUT:
		return 1
	case HALT:
		return 0
	}
	return -1
}

// Length returns the number of memory cells the given instruction
// occupies, including its instruction word. The program counter
// advances by this amount on non-jump paths.
// Returns -1 if the opcode is not recognized.
func Length(opcode int) int {
	argc := Argc(opcode)
	if argc < 0 {
		return -1
	}
	return argc + 1
}
