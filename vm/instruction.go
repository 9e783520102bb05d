package vm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hexaflex/intcode/arch"
)

// wordWidth is the padded width of an instruction word in decimal
// digits: three mode digits followed by a two-digit opcode.
const wordWidth = 5

// Operand defines decoded instruction operand data.
type Operand struct {
	Mode  arch.AddressMode // How Value is to be interpreted.
	Value int              // Literal value in immediate mode, memory address otherwise.
}

// Instruction defines decoded instruction data.
type Instruction struct {
	IP     int        // Instruction address.
	Opcode int        // Instruction opcode.
	Args   [3]Operand // Operand A, B and C. Only the first Argc are meaningful.
	Length int        // Cells occupied, including the instruction word.
}

// Decode decodes the instruction at address ip from the given memory bank.
// The caller guarantees ip itself is in bounds.
func (i *Instruction) Decode(m Memory, ip int) error {
	i.IP = ip

	opcode, modes, err := splitWord(m[ip], ip)
	if err != nil {
		return err
	}

	argc := arch.Argc(opcode)
	if argc < 0 {
		return NewFault(UnknownOpcode, ip, "opcode %d", opcode)
	}

	i.Opcode = opcode
	i.Length = arch.Length(opcode)

	if ip+argc >= len(m) {
		return NewFault(TruncatedInstruction, ip, "need %d operands, %d cells remain", argc, len(m)-ip-1)
	}

	for j := 0; j < argc; j++ {
		i.Args[j] = Operand{Mode: modes[j], Value: m[ip+1+j]}
	}

	// The operand of IN and OUT denotes a memory address directly.
	// It is never resolved through its mode digit.
	if opcode == arch.IN || opcode == arch.OUT {
		i.Args[0].Mode = arch.Position
	}

	return nil
}

func (i *Instruction) String() string {
	name, ok := arch.Name(i.Opcode)
	if !ok {
		name = fmt.Sprintf("%02d", i.Opcode)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%04d %4s", i.IP, name)

	for j := 0; j < arch.Argc(i.Opcode); j++ {
		if j > 0 {
			sb.WriteByte(',')
		}
		if i.Args[j].Mode == arch.Immediate {
			fmt.Fprintf(&sb, " $%d", i.Args[j].Value)
		} else {
			fmt.Fprintf(&sb, " [%d]", i.Args[j].Value)
		}
	}

	return sb.String()
}

// splitWord splits a raw instruction word into an opcode and three
// operand address modes. The word is read as a decimal string,
// left-padded with zeroes to five digits: the low two digits hold the
// opcode and the three digits before it hold the modes for operands
// three, two and one, in that order.
func splitWord(word, ip int) (int, [3]arch.AddressMode, error) {
	var modes [3]arch.AddressMode

	if word < 0 {
		return 0, modes, NewFault(MalformedWord, ip, "negative instruction word %d", word)
	}

	s := strconv.Itoa(word)
	if len(s) < wordWidth {
		s = strings.Repeat("0", wordWidth-len(s)) + s
	}
	if len(s) > wordWidth {
		return 0, modes, NewFault(MalformedWord, ip, "instruction word %d has more than %d digits", word, wordWidth)
	}

	opcode, err := strconv.Atoi(s[wordWidth-2:])
	if err != nil {
		return 0, modes, NewFault(MalformedWord, ip, "instruction word %d: %v", word, err)
	}

	for j := 0; j < 3; j++ {
		// Operand one's mode sits directly left of the opcode.
		mode := arch.AddressMode(s[2-j] - '0')
		if !mode.Valid() {
			return 0, modes, NewFault(InvalidAddressMode, ip, "mode digit %c for operand %d", s[2-j], j+1)
		}
		modes[j] = mode
	}

	return opcode, modes, nil
}
